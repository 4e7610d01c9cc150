package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func parsedFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Storage: Storage{DSN: "a.db"}},
		&StructuredConfig{Storage: Storage{DSN: "b.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "b.db", cfg.Storage.DSN)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{LogLevel: "loud"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON / withDefaults ──────────────────────────────────────────────────

func TestWithJSON_RanksBelowFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"dsn": "from-json.db"},
		"server":  map[string]any{"http_address": "127.0.0.1:9000", "request_timeout": "5s"},
	})

	cfg, err := newConfigBuilder().
		withFlags(parsedFlags(t, "--config", path, "--dsn", "from-flags.db")).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-flags.db", cfg.Storage.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
}

func TestWithJSON_MissingFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags(parsedFlags(t, "--config", "/does/not/exist.json")).
		withJSON().
		build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}

// ── views ────────────────────────────────────────────────────────────────────

func TestGetClientConfig_EnvOverriddenByFlags(t *testing.T) {
	t.Setenv("STORAGE_DSN", "env.db")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := GetClientConfig(parsedFlags(t, "-d", "flag.db"))
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.Storage.DSN)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.False(t, cfg.Remote())
}

func TestGetClientConfig_Remote(t *testing.T) {
	cfg, err := GetClientConfig(parsedFlags(t, "--server", "localhost:8080", "--request-timeout", "1m"))
	require.NoError(t, err)

	assert.True(t, cfg.Remote())
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestGetServerConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8181")
	t.Setenv("APP_VERSION", "1.2.3")

	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8181", cfg.Server.HTTPAddress)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, DefaultDSN, cfg.Storage.DSN)
}

func TestClientConfigValidate(t *testing.T) {
	assert.ErrorIs(t, (&ClientConfig{}).validate(), ErrInvalidStorageConfigs)
	assert.ErrorIs(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "x:1"}}).validate(), ErrInvalidAdapterConfigs)
	assert.NoError(t, (&ClientConfig{Storage: Storage{DSN: "memory"}}).validate())
}

func TestServerConfigValidate(t *testing.T) {
	assert.ErrorIs(t, (&ServerConfig{}).validate(), ErrInvalidStorageConfigs)
	assert.ErrorIs(t, (&ServerConfig{Storage: Storage{DSN: "memory"}}).validate(), ErrInvalidServerConfigs)
	assert.NoError(t, (&ServerConfig{
		Storage: Storage{DSN: "memory"},
		Server:  Server{HTTPAddress: "localhost:1", RequestTimeout: time.Second},
	}).validate())
}
