package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/internal/config"
	"github.com/aretw0/transducer/pkg/adapters/memory"
	"github.com/aretw0/transducer/pkg/adapters/redis"
	"github.com/aretw0/transducer/pkg/observability"
	"github.com/aretw0/transducer/pkg/ports"
)

// Stack is an engine together with the resources the CLI created for it.
type Stack struct {
	Engine  *transducer.Engine
	Metrics *observability.Metrics
	closers []func() error
}

// Close releases the cache connections, if any.
func (s *Stack) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewStack initializes an engine for source with the cache and metrics cfg asks for.
func NewStack(ctx context.Context, cfg config.Config, source string, logger *slog.Logger) (*Stack, error) {
	stack := &Stack{Metrics: observability.NewMetrics()}

	opts := []transducer.Option{
		transducer.WithLogger(logger),
		transducer.WithMetrics(stack.Metrics),
		transducer.WithStepBudget(cfg.StepBudget),
	}

	cache, closer, err := newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		stack.closers = append(stack.closers, closer)
	}
	if cache != nil {
		opts = append(opts, transducer.WithCache(cache))
		logger.Debug("result cache enabled", "backend", cfg.Cache.Backend)
	}

	engine, err := transducer.New(ctx, source, opts...)
	if err != nil {
		_ = stack.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	stack.Engine = engine
	return stack, nil
}

func newCache(ctx context.Context, cfg config.Config) (ports.ResultCache, func() error, error) {
	switch cfg.Cache.Backend {
	case config.CacheNone, "":
		return nil, nil, nil
	case config.CacheMemory:
		return memory.NewCache(), nil, nil
	case config.CacheRedis:
		opts := []redis.Option{redis.WithTTL(cfg.Cache.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, nil, fmt.Errorf("redis cache unavailable at %s: %w", cfg.Redis.Addr, err)
		}
		return cache, cache.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
}
