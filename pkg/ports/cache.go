package ports

import (
	"context"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
)

// CacheKey identifies one transduction result.
// Fingerprint pins the key to the table contents, so two tables sharing a name never share results.
type CacheKey struct {
	Table       string
	Fingerprint string
	Direction   domain.Direction
	Input       string
}

// String renders the key as table:fingerprint:direction:input, leaving out an empty fingerprint.
func (k CacheKey) String() string {
	parts := []string{k.Table}
	if k.Fingerprint != "" {
		parts = append(parts, k.Fingerprint)
	}
	return strings.Join(append(parts, string(k.Direction), k.Input), ":")
}

// ResultCache defines the interface for memoizing transduction results.
// An empty result is a valid cached value and must be reported as a hit.
type ResultCache interface {
	// Get returns the cached outputs and whether the key was present.
	Get(ctx context.Context, key CacheKey) ([]string, bool, error)

	// Set stores the outputs for key.
	Set(ctx context.Context, key CacheKey, outputs []string) error
}
