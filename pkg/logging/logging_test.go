package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("bogus"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
}

func TestNewWritesToFallbackAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New(Config{Level: "info", Fallback: &buf})
	require.NoError(t, err)
	defer closeFn()

	log.Debug().Msg("hidden")
	log.Info().Str("record", "inventory").Msg("saved")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"record":"inventory"`)
}

func TestNewWithoutDestinationIsNop(t *testing.T) {
	log, _, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoplist.log")
	log, closeFn, err := New(Config{Level: "warn", File: path})
	require.NoError(t, err)
	log.Warn().Msg("corrupt record")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "corrupt record")
}
