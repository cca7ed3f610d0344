package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
)

// Builder manages the table construction.
type Builder struct {
	states map[string]*StateBuilder
	arcs   []domain.Transition
	start  string
	errs   []error
}

// New creates a new table builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// State returns the builder for a state, creating it on first use.
// The first state created is the default start state.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	if id == "" {
		b.errs = append(b.errs, errors.New("state missing ID"))
	}
	if b.start == "" {
		b.start = id
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	return sb
}

// Build compiles the recorded states and arcs into a table.
func (b *Builder) Build() (*domain.Table, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid table definition: %w", errors.Join(b.errs...))
	}
	if len(b.states) == 0 {
		return nil, errors.New("invalid table definition: no states")
	}

	table := domain.NewTable()
	table.SetStart(b.start)
	for _, t := range b.arcs {
		table.Add(t.From, t.To, t.Input, t.Output)
	}
	for id, sb := range b.states {
		if sb.accepting {
			table.Accept(id)
		}
	}
	return table, nil
}

// String renders the built table in AT&T form.
func (b *Builder) String() (string, error) {
	table, err := b.Build()
	if err != nil {
		return "", err
	}
	return att.String(table), nil
}
