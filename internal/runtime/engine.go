package runtime

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// Engine walks a transition table against a symbol sequence.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	budget int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStepBudget bounds the number of agenda entries a single transduction may expand.
// Zero (the default) means unbounded.
func WithStepBudget(steps int) EngineOption {
	return func(e *Engine) {
		if steps > 0 {
			e.budget = steps
		}
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// path is one agenda entry: a partial path through the table.
type path struct {
	consumed int
	state    string
	output   string
}

// Transduce returns every output reachable at an accepting state once all
// symbols are consumed.
//
// The agenda is a stack, so results come out depth first with the most recently
// pushed path expanded first. Duplicate outputs are kept. Epsilon arcs are taken
// without consuming input and the epsilon marker is stripped from results.
//
// A table with an epsilon cycle on the explored path never drains the agenda;
// with a step budget set, Transduce gives up with a *domain.NonTerminatingError
// and returns the results found so far.
func (e *Engine) Transduce(table *domain.Table, symbols []string) ([]string, error) {
	var results []string
	agenda := []path{{consumed: 0, state: table.Start(), output: ""}}

	steps := 0
	for len(agenda) > 0 {
		if e.budget > 0 && steps >= e.budget {
			e.logger.Warn("transduction step budget exhausted", "steps", steps, "pending", len(agenda))
			return results, &domain.NonTerminatingError{Steps: steps}
		}
		steps++

		current := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]

		for _, arc := range table.Arcs(current.state, domain.Epsilon) {
			agenda = append(agenda, path{
				consumed: current.consumed,
				state:    arc.Target,
				output:   current.output + arc.Output,
			})
		}

		if current.consumed < len(symbols) {
			for _, arc := range table.Arcs(current.state, symbols[current.consumed]) {
				agenda = append(agenda, path{
					consumed: current.consumed + 1,
					state:    arc.Target,
					output:   current.output + arc.Output,
				})
			}
		} else if table.IsAccepting(current.state) {
			results = append(results, strings.ReplaceAll(current.output, domain.Epsilon, ""))
		}
	}

	e.logger.Debug("transduction finished", "symbols", len(symbols), "steps", steps, "results", len(results))
	return results, nil
}

// Run tokenizes input and transduces it.
func (e *Engine) Run(table *domain.Table, input string) ([]string, error) {
	symbols, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return e.Transduce(table, symbols)
}
