// Package config loads the transducer configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. TRANSDUCER_HTTP_ADDR.
const EnvPrefix = "TRANSDUCER_"

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "transducer.yaml"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	Table      string      `yaml:"table" mapstructure:"table"`
	LogLevel   string      `yaml:"log_level" mapstructure:"log_level"`
	StepBudget int         `yaml:"step_budget" mapstructure:"step_budget"`
	HTTP       HTTPConfig  `yaml:"http" mapstructure:"http"`
	Cache      CacheConfig `yaml:"cache" mapstructure:"cache"`
	Redis      RedisConfig `yaml:"redis" mapstructure:"redis"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend" mapstructure:"backend"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	Prefix   string `yaml:"prefix" mapstructure:"prefix"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel: "info",
		HTTP:     HTTPConfig{Addr: ":8080"},
		Cache:    CacheConfig{Backend: CacheNone},
		Redis:    RedisConfig{Addr: "localhost:6379", Prefix: "transducer:result:"},
	}
}

// Load reads path (if it exists), applies environment overrides and validates the result.
// A missing file is not an error when path is the default file name.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultFile:
		// Treat as "nothing configured"
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Decode(raw, os.Environ())
}

// Decode merges raw settings with KEY=VALUE environment entries and decodes them over the defaults.
func Decode(raw map[string]any, environ []string) (Config, error) {
	if raw == nil {
		raw = map[string]any{}
	}
	applyEnv(raw, environ)

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("invalid configuration: unknown cache backend %q", c.Cache.Backend)
	}
	if c.StepBudget < 0 {
		return fmt.Errorf("invalid configuration: step_budget must not be negative")
	}
	return nil
}

// envKeys lists the settings the environment may override: top-level scalars map to nil,
// sections to their field names.
var envKeys = map[string][]string{
	"table":       nil,
	"log_level":   nil,
	"step_budget": nil,
	"http":        {"addr"},
	"cache":       {"backend", "ttl"},
	"redis":       {"addr", "password", "db", "prefix"},
}

// applyEnv maps TRANSDUCER_A_B=v onto raw["a"]["b"] = v.
// Keys nest on the first underscore only when the head names a section.
// Variables that name no known setting are skipped; they often belong to wrappers sharing the prefix.
func applyEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

		if fields, known := envKeys[name]; known && fields == nil {
			raw[name] = value
			continue
		}
		head, tail, nested := strings.Cut(name, "_")
		if !nested || !slices.Contains(envKeys[head], tail) {
			continue
		}
		section, ok := raw[head].(map[string]any)
		if !ok {
			section = map[string]any{}
			raw[head] = section
		}
		section[tail] = value
	}
}
