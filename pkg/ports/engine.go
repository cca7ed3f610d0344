package ports

import (
	"context"

	"github.com/aretw0/transducer/pkg/domain"
)

// Transducer defines the engine surface used by adapters (e.g., HTTP, MCP).
type Transducer interface {
	// Name is the label of the loaded table.
	Name() string

	// Transduce maps input through the table in the given direction.
	Transduce(ctx context.Context, dir domain.Direction, input string) ([]string, error)

	// Describe returns an introspection snapshot of the generation table.
	Describe() domain.Summary
}
