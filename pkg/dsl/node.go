package dsl

import (
	"fmt"

	"github.com/aretw0/transducer/pkg/domain"
)

// StateBuilder provides a fluent API for configuring one state.
type StateBuilder struct {
	id        string
	accepting bool
	builder   *Builder
}

// On adds an arc that reads input, writes output and moves to target.
// Use domain.Epsilon for an empty input or output.
func (s *StateBuilder) On(input, output, target string) *StateBuilder {
	if input == "" {
		s.builder.errs = append(s.builder.errs,
			fmt.Errorf("state %q: empty input symbol (use domain.Epsilon)", s.id))
		return s
	}
	s.builder.State(target)
	s.builder.arcs = append(s.builder.arcs, domain.Transition{
		From:   s.id,
		To:     target,
		Input:  input,
		Output: output,
	})
	return s
}

// Epsilon adds an arc that consumes no input.
func (s *StateBuilder) Epsilon(output, target string) *StateBuilder {
	return s.On(domain.Epsilon, output, target)
}

// Accepting marks the state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.accepting = true
	return s
}

// Start makes this state the start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.start = s.id
	return s
}
