package transducer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/transducer/internal/logging"
	"github.com/aretw0/transducer/internal/runtime"
	"github.com/aretw0/transducer/pkg/adapters/afs"
	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/observability"
	"github.com/aretw0/transducer/pkg/ports"
)

// Version is the release of the transducer module.
const Version = "0.4.0"

// Engine is the high-level entry point for the library.
// It owns a loaded table in both directions and wraps the internal runtime.
type Engine struct {
	name     string
	digest   string
	loader   ports.TableLoader
	table    *domain.Table
	inverted *domain.Table
	runtime  *runtime.Engine
	cache    ports.ResultCache
	metrics  *observability.Metrics
	logger   *slog.Logger
	budget   int
}

var _ ports.Transducer = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom TableLoader; the source passed to New is then the table name.
func WithLoader(l ports.TableLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCache memoizes results in c.
func WithCache(c ports.ResultCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithMetrics records every transduction in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithStepBudget bounds each transduction. See runtime.WithStepBudget.
func WithStepBudget(steps int) Option {
	return func(e *Engine) {
		e.budget = steps
	}
}

// New loads a table and prepares it for both directions.
//
// By default source is a path to an AT&T file, read through an afs loader rooted
// at its directory. When WithLoader is given, source is the name handed to the loader.
func New(ctx context.Context, source string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if source == "" {
		return nil, fmt.Errorf("table source is required")
	}

	ref, name := source, source
	if eng.loader == nil {
		absPath, err := filepath.Abs(source)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		ext := filepath.Ext(absPath)
		eng.loader = afs.New(filepath.Dir(absPath), afs.WithExtension(ext))
		ref = filepath.Base(absPath)
		name = strings.TrimSuffix(ref, ext)
	}
	eng.name = name

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.logger = eng.logger.With("table", eng.name)

	table, err := eng.loader.Load(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load table %q: %w", ref, err)
	}
	eng.table = table
	eng.inverted = table.Invert()
	eng.digest = fingerprint(table)

	eng.runtime = runtime.NewEngine(
		runtime.WithLogger(eng.logger),
		runtime.WithStepBudget(eng.budget),
	)

	eng.logger.Debug("table loaded", "transitions", table.Len(), "start", table.Start())
	return eng, nil
}

// Name is the label of the loaded table.
func (e *Engine) Name() string {
	return e.name
}

// Table returns the table in the requested direction.
func (e *Engine) Table(dir domain.Direction) *domain.Table {
	if dir == domain.DirectionAnalyze {
		return e.inverted
	}
	return e.table
}

// Describe returns an introspection snapshot of the generation table.
func (e *Engine) Describe() domain.Summary {
	return e.table.Summary()
}

// Generate maps an analysis (e.g. "cat<N><PL>") to its surface forms.
func (e *Engine) Generate(ctx context.Context, input string) ([]string, error) {
	return e.Transduce(ctx, domain.DirectionGenerate, input)
}

// Analyze maps a surface form (e.g. "cats") to its analyses.
func (e *Engine) Analyze(ctx context.Context, input string) ([]string, error) {
	return e.Transduce(ctx, domain.DirectionAnalyze, input)
}

// Transduce maps input through the table in the given direction.
// Cache failures are logged and never fail the call.
func (e *Engine) Transduce(ctx context.Context, dir domain.Direction, input string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := ports.CacheKey{Table: e.name, Fingerprint: e.digest, Direction: dir, Input: input}
	if e.cache != nil {
		outputs, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Warn("result cache lookup failed", "err", err)
		}
		e.metrics.ObserveCache(ok)
		if ok {
			return outputs, nil
		}
	}

	start := time.Now()
	outputs, err := e.runtime.Run(e.Table(dir), input)
	e.metrics.ObserveTransduction(e.name, dir, len(outputs), err, time.Since(start))
	if err != nil {
		var nt *domain.NonTerminatingError
		if errors.As(err, &nt) {
			return outputs, err
		}
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, outputs); err != nil {
			e.logger.Warn("result cache store failed", "err", err)
		}
	}
	return outputs, nil
}

// fingerprint is a short digest of the table's canonical AT&T rendering.
func fingerprint(table *domain.Table) string {
	sum := sha256.Sum256([]byte(att.String(table)))
	return hex.EncodeToString(sum[:8])
}
