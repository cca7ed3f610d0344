package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/ports"
)

// TableLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.TableLoader.
// setupData maps table names to the AT&T source the loader was seeded with.
func TableLoaderContractTest(t *testing.T, loader ports.TableLoader, setupData map[string]string) {
	t.Helper()
	ctx := context.Background()

	// 1. Test Load (Success)
	t.Run("Load_Success", func(t *testing.T) {
		for name, source := range setupData {
			want, err := att.ParseString(source)
			if err != nil {
				t.Fatalf("bad fixture %s: %v", name, err)
			}
			got, err := loader.Load(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error loading table %s: %v", name, err)
			}
			if got.Start() != want.Start() {
				t.Errorf("start mismatch for %s. got %q, want %q", name, got.Start(), want.Start())
			}
			if got.Len() != want.Len() {
				t.Errorf("arc count mismatch for %s. got %d, want %d", name, got.Len(), want.Len())
			}
		}
	})

	// 2. Test Load (NotFound)
	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-table")
		if !errors.Is(err, domain.ErrTableNotFound) {
			t.Errorf("expected ErrTableNotFound for non-existent table, got %v", err)
		}
	})

	// 3. Test List
	t.Run("List", func(t *testing.T) {
		names, err := loader.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing tables: %v", err)
		}

		if len(names) != len(setupData) {
			t.Errorf("expected %d tables, got %d", len(setupData), len(names))
		}

		lookup := make(map[string]bool)
		for _, name := range names {
			lookup[name] = true
		}
		for name := range setupData {
			if !lookup[name] {
				t.Errorf("table %s missing from list", name)
			}
		}
	})
}
