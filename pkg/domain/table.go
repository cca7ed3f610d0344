package domain

import (
	"slices"
	"sort"
)

// Table is the transition relation of a non-deterministic transducer.
//
// Arcs under one Key keep their insertion order, and distinct keys keep the
// order in which they were first seen; the runtime explores arcs in that order.
// A Table is not safe for concurrent mutation, but once filled it may be read
// by any number of goroutines.
type Table struct {
	start     string
	hasStart  bool
	accepting map[string]struct{}
	arcs      map[Key][]Arc
	order     []Key
	inputs    map[string]struct{}
	outputs   map[string]struct{}
}

// NewTable creates an empty table with no start state.
func NewTable() *Table {
	t := &Table{}
	t.init()
	return t
}

func (t *Table) init() {
	if t.arcs != nil {
		return
	}
	t.accepting = make(map[string]struct{})
	t.arcs = make(map[Key][]Arc)
	t.inputs = make(map[string]struct{})
	t.outputs = make(map[string]struct{})
}

// SetStart records the start state. Only the first call has an effect;
// it reports whether the state was recorded.
func (t *Table) SetStart(state string) bool {
	if t.hasStart {
		return false
	}
	t.start = state
	t.hasStart = true
	return true
}

// Start returns the start state ("" when none was set).
func (t *Table) Start() string {
	return t.start
}

// HasStart reports whether a start state was set.
func (t *Table) HasStart() bool {
	return t.hasStart
}

// Accept marks state as accepting.
func (t *Table) Accept(state string) {
	t.init()
	t.accepting[state] = struct{}{}
}

// IsAccepting reports whether state is accepting.
func (t *Table) IsAccepting(state string) bool {
	_, ok := t.accepting[state]
	return ok
}

// Accepting returns the accepting states, sorted.
func (t *Table) Accepting() []string {
	return sortedSet(t.accepting)
}

// Add appends the transition (from, input) -> (to, output).
// Duplicates are kept, mirroring repeated rows in a table file.
func (t *Table) Add(from, to, input, output string) {
	t.add(Key{State: from, Input: input}, Arc{Target: to, Output: output})
}

func (t *Table) add(k Key, a Arc) {
	t.init()
	list, ok := t.arcs[k]
	if !ok {
		t.order = append(t.order, k)
	}
	t.arcs[k] = append(list, a)
	t.inputs[k.Input] = struct{}{}
	t.outputs[a.Output] = struct{}{}
}

// Arcs returns the arcs leaving state on input, in insertion order.
// The returned slice is owned by the table and must not be modified.
func (t *Table) Arcs(state, input string) []Arc {
	return t.arcs[Key{State: state, Input: input}]
}

// HasKey reports whether any arc leaves state on input.
func (t *Table) HasKey(state, input string) bool {
	_, ok := t.arcs[Key{State: state, Input: input}]
	return ok
}

// Keys returns the transition keys in first-seen order.
func (t *Table) Keys() []Key {
	return slices.Clone(t.order)
}

// Transitions expands the table into AT&T ordered transitions.
func (t *Table) Transitions() []Transition {
	out := make([]Transition, 0, t.Len())
	for _, k := range t.order {
		for _, a := range t.arcs[k] {
			out = append(out, Transition{From: k.State, To: a.Target, Input: k.Input, Output: a.Output})
		}
	}
	return out
}

// Len returns the number of arcs.
func (t *Table) Len() int {
	n := 0
	for _, list := range t.arcs {
		n += len(list)
	}
	return n
}

// InputAlphabet returns the distinct input symbols, sorted.
func (t *Table) InputAlphabet() []string {
	return sortedSet(t.inputs)
}

// OutputAlphabet returns the distinct output symbols, sorted.
func (t *Table) OutputAlphabet() []string {
	return sortedSet(t.outputs)
}

// States returns every state mentioned by the table, sorted.
func (t *Table) States() []string {
	seen := make(map[string]struct{})
	if t.hasStart {
		seen[t.start] = struct{}{}
	}
	for s := range t.accepting {
		seen[s] = struct{}{}
	}
	for k, list := range t.arcs {
		seen[k.State] = struct{}{}
		for _, a := range list {
			seen[a.Target] = struct{}{}
		}
	}
	return sortedSet(seen)
}

// Invert returns a new table in which every transition
// (source, in) -> (target, out) becomes (source, out) -> (target, in).
//
// An inverted arc is skipped when an identical arc already sits under its key.
// The start state and the accepting states are carried over unchanged; the
// receiver is left intact.
func (t *Table) Invert() *Table {
	inv := NewTable()
	inv.start = t.start
	inv.hasStart = t.hasStart
	for s := range t.accepting {
		inv.accepting[s] = struct{}{}
	}
	for _, k := range t.order {
		for _, a := range t.arcs[k] {
			ik := Key{State: k.State, Input: a.Output}
			ia := Arc{Target: a.Target, Output: k.Input}
			if slices.Contains(inv.arcs[ik], ia) {
				continue
			}
			inv.add(ik, ia)
		}
	}
	return inv
}

// Summary is an introspection snapshot of a Table.
type Summary struct {
	Start          string   `json:"start"`
	States         int      `json:"states"`
	Accepting      []string `json:"accepting"`
	Keys           int      `json:"keys"`
	Transitions    int      `json:"transitions"`
	EpsilonArcs    int      `json:"epsilon_arcs"`
	InputAlphabet  []string `json:"input_alphabet"`
	OutputAlphabet []string `json:"output_alphabet"`
}

// Summary describes the table.
func (t *Table) Summary() Summary {
	return Summary{
		Start:          t.start,
		States:         len(t.States()),
		Accepting:      t.Accepting(),
		Keys:           len(t.order),
		Transitions:    t.Len(),
		EpsilonArcs:    t.epsilonArcs(),
		InputAlphabet:  t.InputAlphabet(),
		OutputAlphabet: t.OutputAlphabet(),
	}
}

func (t *Table) epsilonArcs() int {
	n := 0
	for k, list := range t.arcs {
		if k.Input == Epsilon {
			n += len(list)
		}
	}
	return n
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
