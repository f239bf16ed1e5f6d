package constants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesEnv(t *testing.T) {
	t.Setenv("TRIADEX_ADDR", ":9999")
	t.Setenv("TRIADEX_TABLE", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "triadex-voicings", cfg.Table)
	assert.Equal(t, 60, cfg.BPM)
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Setenv("INDEX_PATH", "/tmp/from-env")
	path := filepath.Join(t.TempDir(), "triadex.toml")
	contents := `
listen_addr = ":7000"
allow_open = true
bpm = 90
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0666))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, "/tmp/from-env", cfg.IndexDir)
	assert.True(t, cfg.AllowOpen)
	assert.False(t, cfg.Stretch)
	assert.Equal(t, 90, cfg.BPM)
}

func TestLoadReportsBadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
