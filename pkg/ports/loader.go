package ports

import (
	"context"

	"github.com/aretw0/transducer/pkg/domain"
)

// TableLoader defines how the engine retrieves transducer tables.
// This allows the storage layer (local files, object storage, memory) to be decoupled.
type TableLoader interface {
	// Load parses the named table.
	// It returns domain.ErrTableNotFound (possibly wrapped) when no such table exists,
	// and a *domain.FormatError when the table is malformed.
	Load(ctx context.Context, name string) (*domain.Table, error)

	// List returns the names of all tables available to Load, sorted.
	List(ctx context.Context) ([]string, error)
}
