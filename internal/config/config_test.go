package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transducer.yaml")
	content := []byte(`
table: tables/nouns.att
log_level: debug
step_budget: 5000
http:
  addr: ":9090"
cache:
  backend: redis
  ttl: 10m
redis:
  addr: "redis:6379"
  db: 2
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tables/nouns.att", cfg.Table)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.StepBudget)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	// untouched defaults survive
	assert.Equal(t, "transducer:result:", cfg.Redis.Prefix)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestDecode_Defaults(t *testing.T) {
	cfg, err := Decode(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_EnvOverrides(t *testing.T) {
	raw := map[string]any{
		"log_level": "info",
		"http":      map[string]any{"addr": ":1"},
	}
	env := []string{
		"TRANSDUCER_LOG_LEVEL=warn",
		"TRANSDUCER_STEP_BUDGET=42",
		"TRANSDUCER_HTTP_ADDR=:2",
		"TRANSDUCER_CACHE_TTL=30s",
		"TRANSDUCER_CACHE_BACKEND=memory",
		"TRANSDUCER_REDIS_DB=3",
		"TRANSDUCER_HOME=/opt/transducer",
		"TRANSDUCER_REDIS_CLUSTER=on",
		"PATH=/usr/bin",
	}

	cfg, err := Decode(raw, env)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 42, cfg.StepBudget)
	assert.Equal(t, ":2", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.NotContains(t, raw, "home")
}

func TestEnvKeys_MatchConfigFields(t *testing.T) {
	// every documented key must decode, or the override would be rejected
	raw := map[string]any{}
	for head, fields := range envKeys {
		if fields == nil {
			continue
		}
		section := map[string]any{}
		for _, f := range fields {
			section[f] = ""
		}
		raw[head] = section
	}
	_, err := Decode(raw, nil)
	require.NotContains(t, errString(err), "invalid keys")
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"unknown backend", map[string]any{"cache": map[string]any{"backend": "memcached"}}},
		{"negative budget", map[string]any{"step_budget": -1}},
		{"unknown key", map[string]any{"tabel": "typo.att"}},
		{"bad duration", map[string]any{"cache": map[string]any{"ttl": "soon"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw, nil)
			assert.Error(t, err)
		})
	}
}
