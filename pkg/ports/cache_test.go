package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/transducer/pkg/ports"
)

// MockCache is a map-backed ResultCache used to check the contract suite itself.
type MockCache struct {
	mu   sync.Mutex
	data map[ports.CacheKey][]string
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[ports.CacheKey][]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key ports.CacheKey) ([]string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MockCache) Set(ctx context.Context, key ports.CacheKey, outputs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]string(nil), outputs...)
	return nil
}

func TestMockCache_Contract(t *testing.T) {
	ports.RunResultCacheContract(t, NewMockCache())
}

func TestCacheKey_String(t *testing.T) {
	key := ports.CacheKey{Table: "nouns", Direction: "analyze", Input: "cats"}
	if got := key.String(); got != "nouns:analyze:cats" {
		t.Errorf("CacheKey.String() = %q, want %q", got, "nouns:analyze:cats")
	}

	key.Fingerprint = "3f2a"
	if got := key.String(); got != "nouns:3f2a:analyze:cats" {
		t.Errorf("CacheKey.String() = %q, want %q", got, "nouns:3f2a:analyze:cats")
	}
}
