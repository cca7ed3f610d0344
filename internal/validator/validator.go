// Package validator runs static checks on transition tables.
package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// ValidateTable checks that the table can produce results and that the agenda
// search will terminate on it. All findings are returned together as an *AggregateError.
func ValidateTable(table *domain.Table) error {
	var errs []error

	if !table.HasStart() {
		errs = append(errs, &Issue{Kind: KindNoStart, Reason: "table has no rows"})
	}

	accepting := table.Accepting()
	if len(accepting) == 0 {
		errs = append(errs, &Issue{Kind: KindNoAccepting, Reason: "no state is marked accepting, every input yields no result"})
	}

	if table.HasStart() {
		reachable := reach(table)

		var unreachable []string
		for _, s := range accepting {
			if !reachable[s] {
				unreachable = append(unreachable, s)
			}
		}
		if len(unreachable) > 0 {
			errs = append(errs, &Issue{
				Kind:   KindUnreachableAccepting,
				States: unreachable,
				Reason: fmt.Sprintf("not reachable from start state %q", table.Start()),
			})
		}

		for _, cycle := range epsilonCycles(table, reachable) {
			errs = append(errs, cycle)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// reach returns the states reachable from the start state over any arc.
func reach(table *domain.Table) map[string]bool {
	next := successors(table, func(domain.Key) bool { return true })

	seen := map[string]bool{table.Start(): true}
	queue := []string{table.Start()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, target := range next[current] {
			if !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}
	return seen
}

func successors(table *domain.Table, keep func(domain.Key) bool) map[string][]string {
	next := make(map[string][]string)
	for _, k := range table.Keys() {
		if !keep(k) {
			continue
		}
		for _, a := range table.Arcs(k.State, k.Input) {
			next[k.State] = append(next[k.State], a.Target)
		}
	}
	return next
}

// epsilonCycles finds the strongly connected components of the epsilon-arc graph
// (Tarjan) among reachable states, keeping those that actually loop.
func epsilonCycles(table *domain.Table, reachable map[string]bool) []*Issue {
	next := successors(table, func(k domain.Key) bool {
		return k.Input == domain.Epsilon && reachable[k.State]
	})

	var (
		index   = 0
		indices = make(map[string]int)
		low     = make(map[string]int)
		onStack = make(map[string]bool)
		stack   []string
		issues  []*Issue
	)

	var connect func(v string)
	connect = func(v string) {
		indices[v] = index
		low[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range next[v] {
			if _, visited := indices[w]; !visited {
				connect(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], indices[w])
			}
		}

		if low[v] != indices[v] {
			return
		}
		var component []string
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			component = append(component, w)
			if w == v {
				break
			}
		}
		if len(component) > 1 || slices.Contains(next[v], v) {
			issues = append(issues, cycleIssue(table, component))
		}
	}

	states := make([]string, 0, len(next))
	for s := range next {
		states = append(states, s)
	}
	slices.Sort(states)
	for _, s := range states {
		if _, visited := indices[s]; !visited {
			connect(s)
		}
	}

	slices.SortFunc(issues, func(a, b *Issue) int {
		return strings.Compare(a.States[0], b.States[0])
	})
	return issues
}

func cycleIssue(table *domain.Table, component []string) *Issue {
	slices.Sort(component)
	members := make(map[string]bool, len(component))
	for _, s := range component {
		members[s] = true
	}

	productive := false
	for _, s := range component {
		for _, a := range table.Arcs(s, domain.Epsilon) {
			if members[a.Target] && a.Output != "" && a.Output != domain.Epsilon {
				productive = true
			}
		}
	}

	reason := "epsilon cycle, the search never drains its agenda"
	if productive {
		reason = "productive epsilon cycle, every pass emits output and the search never terminates"
	}
	return &Issue{Kind: KindEpsilonCycle, States: component, Reason: reason}
}
