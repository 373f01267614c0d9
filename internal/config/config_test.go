package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "https://zenquotes.io/api/random", cfg.QuoteEndpoint)
	assert.Equal(t, "ischedule", cfg.KeyringService)

	// The file should now exist with the defaults serialized.
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `db_path = "/tmp/tasks.db"
log_path = "/tmp/ischedule.log"
quote_endpoint = "http://localhost:9999/api/random"
keyring_service = "ischedule-test"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tasks.db", cfg.DBPath)
	assert.Equal(t, "/tmp/ischedule.log", cfg.LogPath)
	assert.Equal(t, "http://localhost:9999/api/random", cfg.QuoteEndpoint)
	assert.Equal(t, "ischedule-test", cfg.KeyringService)
}

func TestLoadOrCreateRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}
