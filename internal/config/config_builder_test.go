package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

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

// TestBuild_EmptyBuilder verifies that building with no sources still yields
// the defaults, then fails validation because no DSN is configured.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/courses"}}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:7000", RequestTimeout: 10 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/courses", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	// defaults fill what no source set
	assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
}

// TestBuild_FirstNonZeroFieldWins verifies mergo's merge semantics: a field
// already populated by an earlier source is not overwritten by a later one.
func TestBuild_FirstNonZeroFieldWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://first/courses"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://second/courses"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://first/courses", cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON config referenced by an
// earlier source is loaded and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite3", "dsn": "courses.db"},
		},
		"server": map[string]any{"request_timeout": "45s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "courses.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

// TestWithJSON_MissingFile verifies that a bad path is collected into the
// builder error instead of panicking.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestWithJSON_NoPathConfigured verifies that withJSON is a no-op when no
// source mentions a JSON file.
func TestWithJSON_NoPathConfigured(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid postgres config",
			cfg: StructuredConfig{
				App:     App{BcryptCost: 10},
				Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/courses"}},
			},
		},
		{
			name: "valid sqlite config",
			cfg: StructuredConfig{
				App:     App{BcryptCost: 10},
				Storage: Storage{DB: DB{Driver: "sqlite3", DSN: "courses.db"}},
			},
		},
		{
			name: "empty DSN",
			cfg: StructuredConfig{
				App:     App{BcryptCost: 10},
				Storage: Storage{DB: DB{Driver: "pgx"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown driver",
			cfg: StructuredConfig{
				App:     App{BcryptCost: 10},
				Storage: Storage{DB: DB{Driver: "oracle", DSN: "x"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "bcrypt cost out of range",
			cfg: StructuredConfig{
				App:     App{BcryptCost: 99},
				Storage: Storage{DB: DB{Driver: "pgx", DSN: "x"}},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
