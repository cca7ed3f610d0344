package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation issue.
type Kind string

const (
	KindNoStart              Kind = "no_start"
	KindNoAccepting          Kind = "no_accepting"
	KindUnreachableAccepting Kind = "unreachable_accepting"
	KindEpsilonCycle         Kind = "epsilon_cycle"
)

// Issue is a single finding on a table.
type Issue struct {
	Kind   Kind
	States []string
	Reason string
}

func (e *Issue) Error() string {
	if len(e.States) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, strings.Join(e.States, " "), e.Reason)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Issues returns the findings carried by err, or nil.
func Issues(err error) []*Issue {
	var aggr *AggregateError
	if !errors.As(err, &aggr) {
		return nil
	}
	out := make([]*Issue, 0, len(aggr.Errors))
	for _, e := range aggr.Errors {
		var issue *Issue
		if errors.As(e, &issue) {
			out = append(out, issue)
		}
	}
	return out
}
