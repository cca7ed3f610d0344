package transducer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/pkg/adapters/memory"
	"github.com/aretw0/transducer/pkg/adapters/redis"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nouns = `0	1	c	c
1	2	a	a
2	3	t	t
3	4	<N>	@0@
4	5	<PL>	s
4	5	<SG>	@0@
5
`

func newMemoryEngine(t *testing.T, opts ...transducer.Option) *transducer.Engine {
	t.Helper()
	opts = append([]transducer.Option{
		transducer.WithLoader(memory.NewLoader(map[string]string{"nouns": nouns})),
	}, opts...)
	eng, err := transducer.New(context.Background(), "nouns", opts...)
	require.NoError(t, err)
	return eng
}

func TestFacade_FileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nouns.att")
	require.NoError(t, os.WriteFile(path, []byte(nouns), 0644))

	ctx := context.Background()
	eng, err := transducer.New(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "nouns", eng.Name())

	got, err := eng.Generate(ctx, "cat<N><PL>")
	require.NoError(t, err)
	assert.Equal(t, []string{"cats"}, got)

	got, err = eng.Analyze(ctx, "cats")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat<N><PL>"}, got)
}

func TestFacade_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := transducer.New(ctx, "")
	assert.Error(t, err)

	_, err = transducer.New(ctx, filepath.Join(t.TempDir(), "missing.att"))
	assert.ErrorIs(t, err, domain.ErrTableNotFound)

	bad := filepath.Join(t.TempDir(), "bad.att")
	require.NoError(t, os.WriteFile(bad, []byte("0 1 a\n"), 0644))
	_, err = transducer.New(ctx, bad)
	var fe *domain.FormatError
	assert.True(t, errors.As(err, &fe))

	eng := newMemoryEngine(t)
	_, err = eng.Generate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = eng.Generate(cancelled, "cat<N><SG>")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFacade_DirectionsAreIndependent(t *testing.T) {
	eng := newMemoryEngine(t)
	ctx := context.Background()

	// Analyze repeatedly must not flip the table back.
	for i := 0; i < 3; i++ {
		got, err := eng.Analyze(ctx, "cat")
		require.NoError(t, err)
		assert.Equal(t, []string{"cat<N><SG>"}, got)
	}

	got, err := eng.Transduce(ctx, domain.DirectionGenerate, "cat<N><SG>")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, got)

	assert.NotSame(t, eng.Table(domain.DirectionGenerate), eng.Table(domain.DirectionAnalyze))
	assert.Equal(t, 6, eng.Describe().Transitions)
	assert.Equal(t, "0", eng.Describe().Start)
}

func TestFacade_CacheAndMetrics(t *testing.T) {
	cache := memory.NewCache()
	metrics := observability.NewMetrics()
	eng := newMemoryEngine(t, transducer.WithCache(cache), transducer.WithMetrics(metrics))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := eng.Analyze(ctx, "cats")
		require.NoError(t, err)
		assert.Equal(t, []string{"cat<N><PL>"}, got)
	}
	got, err := eng.Analyze(ctx, "dogs")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, 2, cache.Len())
	expected := `
# HELP transducer_cache_lookups_total Result cache lookups by result
# TYPE transducer_cache_lookups_total counter
transducer_cache_lookups_total{result="hit"} 1
transducer_cache_lookups_total{result="miss"} 2
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "transducer_cache_lookups_total"))
}

func TestFacade_SharedCacheSeparatesSameNamedTables(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := redis.NewFromClient(client)

	write := func(body string) string {
		path := filepath.Join(t.TempDir(), "lex.att")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}
	ctx := context.Background()

	ea, err := transducer.New(ctx, write("0\t1\ta\tb\n1\n"), transducer.WithCache(cache))
	require.NoError(t, err)
	eb, err := transducer.New(ctx, write("0\t1\ta\tz\n1\n"), transducer.WithCache(cache))
	require.NoError(t, err)
	require.Equal(t, ea.Name(), eb.Name())

	got, err := ea.Generate(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)

	got, err = eb.Generate(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, got)

	// same contents, new engine: served from the cache
	ec, err := transducer.New(ctx, write("0\t1\ta\tz\n1\n"), transducer.WithCache(cache))
	require.NoError(t, err)
	got, err = ec.Generate(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, got)
	assert.Len(t, mr.Keys(), 2)
}

func TestFacade_StepBudget(t *testing.T) {
	loop := "S0 S0 @0@ x\nS0 S1 a @0@\nS1\n"
	cache := memory.NewCache()
	eng, err := transducer.New(context.Background(), "loop",
		transducer.WithLoader(memory.NewLoader(map[string]string{"loop": loop})),
		transducer.WithStepBudget(20),
		transducer.WithCache(cache),
	)
	require.NoError(t, err)

	got, err := eng.Generate(context.Background(), "a")
	var nt *domain.NonTerminatingError
	require.True(t, errors.As(err, &nt))
	assert.Contains(t, got, "")
	assert.Contains(t, got, "x")
	// partial results are never cached
	assert.Equal(t, 0, cache.Len())
}

func TestRunner_Text(t *testing.T) {
	eng := newMemoryEngine(t)
	var out bytes.Buffer

	r := transducer.NewRunner(domain.DirectionAnalyze)
	r.Input = strings.NewReader("cats\n  cat \ndog\n")
	r.Output = &out

	require.NoError(t, r.Run(context.Background(), eng))
	assert.Equal(t, "[\"cat<N><PL>\"]\n[\"cat<N><SG>\"]\n[]\n", out.String())
}

func TestRunner_JSON(t *testing.T) {
	eng := newMemoryEngine(t)
	var out bytes.Buffer

	r := transducer.NewRunner(domain.DirectionGenerate)
	r.Format = transducer.FormatJSON
	r.Input = strings.NewReader("cat<N><PL>\n")
	r.Output = &out

	require.NoError(t, r.Run(context.Background(), eng))
	assert.JSONEq(t, `{"line":1,"input":"cat<N><PL>","outputs":["cats"]}`, out.String())
}

func TestRunner_HaltsOnFirstError(t *testing.T) {
	eng := newMemoryEngine(t)
	var out bytes.Buffer

	r := transducer.NewRunner(domain.DirectionAnalyze)
	r.Input = strings.NewReader("cats\n\ncat\n")
	r.Output = &out

	err := r.Run(context.Background(), eng)
	var lineErr *transducer.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Equal(t, "[\"cat<N><PL>\"]\n", out.String())
}

func TestRunner_RequiresIO(t *testing.T) {
	eng := newMemoryEngine(t)
	r := transducer.NewRunner(domain.DirectionAnalyze)
	assert.Error(t, r.Run(context.Background(), eng))

	r.Input = strings.NewReader("")
	assert.Error(t, r.Run(context.Background(), eng))
}
