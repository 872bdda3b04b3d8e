package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := NewConfig()

	assert.Equal(t, int32(8189), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, DefaultDatabaseDriver, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Database.DSN)
	assert.False(t, cfg.Database.SQLLog)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Library.CaseSensitiveSearch)
	assert.Equal(t, DeletePolicyRestrict, cfg.Library.AuthorDeletePolicy)
	assert.Equal(t, 2*time.Second, cfg.Global.ShutdownTimeout())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=localhost dbname=library")
	t.Setenv("SEARCH_CASE_SENSITIVE", "true")
	t.Setenv("AUTHOR_DELETE_POLICY", "cascade")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=library", cfg.Database.DSN)
	assert.True(t, cfg.Library.CaseSensitiveSearch)
	assert.Equal(t, DeletePolicyCascade, cfg.Library.AuthorDeletePolicy)
}

func TestNewConfig_DotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("LOG_FORMAT=json\nLOG_LEVEL=debug\n"), 0o600))
	require.NoError(t, os.WriteFile(".env.local", []byte("LOG_LEVEL=warn\n"), 0o600))

	// Registered so the values loaded from the files are reverted afterwards.
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_FORMAT")
	os.Unsetenv("LOG_LEVEL")

	cfg := NewConfig()

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
