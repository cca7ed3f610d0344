package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
)

// Loader implements ports.TableLoader using an in-memory map of AT&T sources.
type Loader struct {
	tables map[string]string
}

// NewLoader creates a new Loader with the provided raw data (AT&T text per table name).
func NewLoader(data map[string]string) *Loader {
	tables := make(map[string]string, len(data))
	for k, v := range data {
		tables[k] = v
	}
	return &Loader{
		tables: tables,
	}
}

// NewFromTables creates a new Loader from domain objects.
// This handles serialization automatically, improving DX for tests.
func NewFromTables(tables map[string]*domain.Table) (*Loader, error) {
	data := make(map[string]string, len(tables))
	for name, t := range tables {
		if name == "" {
			return nil, fmt.Errorf("table missing name")
		}
		var sb strings.Builder
		if err := att.Write(&sb, t); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		data[name] = sb.String()
	}
	return &Loader{tables: data}, nil
}

// Load parses the named table.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Table, error) {
	source, ok := l.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTableNotFound, name)
	}
	table, err := att.ParseString(source)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", name, err)
	}
	return table, nil
}

// List returns all available table names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.tables))
	for k := range l.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
