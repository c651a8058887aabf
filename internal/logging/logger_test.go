package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelWarn, Format: FormatJSON}, &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("kind", "network").Msg("fetch failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"kind":"network"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelDebug, Format: FormatConsole}, &buf)
	require.NoError(t, err)

	l.Debug().Msg("loading suggestions")
	assert.Contains(t, buf.String(), "loading suggestions")
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studybuddy.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.FileExists(t, path)
}
