package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	table := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		key := CacheKey{Table: table, Direction: domain.DirectionGenerate, Input: "cat<N><PL>"}

		err := cache.Set(ctx, key, []string{"cats", "cattes"})
		require.NoError(t, err, "Set should not return error")

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.True(t, ok)
		assert.Equal(t, []string{"cats", "cattes"}, got)
	})

	t.Run("Miss", func(t *testing.T) {
		got, ok, err := cache.Get(ctx, CacheKey{Table: table, Direction: domain.DirectionAnalyze, Input: "missing"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Empty Result Is A Hit", func(t *testing.T) {
		key := CacheKey{Table: table, Direction: domain.DirectionAnalyze, Input: "xyz"}
		require.NoError(t, cache.Set(ctx, key, nil))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("Direction Separates Keys", func(t *testing.T) {
		gen := CacheKey{Table: table, Direction: domain.DirectionGenerate, Input: "same"}
		ana := CacheKey{Table: table, Direction: domain.DirectionAnalyze, Input: "same"}
		require.NoError(t, cache.Set(ctx, gen, []string{"g"}))
		require.NoError(t, cache.Set(ctx, ana, []string{"a"}))

		got, _, err := cache.Get(ctx, gen)
		require.NoError(t, err)
		assert.Equal(t, []string{"g"}, got)

		got, _, err = cache.Get(ctx, ana)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("Fingerprint Separates Keys", func(t *testing.T) {
		old := CacheKey{Table: table, Fingerprint: "aaaa", Direction: domain.DirectionGenerate, Input: "edit"}
		edited := CacheKey{Table: table, Fingerprint: "bbbb", Direction: domain.DirectionGenerate, Input: "edit"}
		require.NoError(t, cache.Set(ctx, old, []string{"before"}))

		got, ok, err := cache.Get(ctx, edited)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := CacheKey{Table: table, Direction: domain.DirectionGenerate, Input: "over"}
		require.NoError(t, cache.Set(ctx, key, []string{"old"}))
		require.NoError(t, cache.Set(ctx, key, []string{"new"}))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"new"}, got)
	})
}
