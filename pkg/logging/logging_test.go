package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "> first\n", out.String())

	_, err = pw.Write([]byte("ond\nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, "> first\n> second\n> third\n", out.String())
}

func TestNewLogger_Text(t *testing.T) {
	t.Setenv("BYTEKIT_JSON_LOG", "")

	var out bytes.Buffer
	logger := NewLogger("bytekit-test", "debug", &out)
	logger.Debug("candidate", "key", 88)
	logger.Trace("hidden")

	line := out.String()
	assert.True(t, strings.HasPrefix(line, Prefix), "got %q", line)
	assert.Contains(t, line, "bytekit-test: candidate: key=88")
	assert.NotContains(t, line, "hidden")
}

func TestNewLogger_JSONLevel(t *testing.T) {
	t.Setenv("BYTEKIT_JSON_LOG", "")

	var out bytes.Buffer
	logger := NewLogger("bytekit-test", "json:warn", &out)
	logger.Info("dropped")
	logger.Warn("kept", "line", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "kept", entry["@message"])
	assert.Equal(t, float64(3), entry["line"])
	assert.True(t, logger.IsWarn())
	assert.False(t, logger.IsInfo())
}

func TestNewLogger_JSONEnv(t *testing.T) {
	t.Setenv("BYTEKIT_JSON_LOG", "1")

	var out bytes.Buffer
	NewLogger("bytekit-test", "info", &out).Info("hello")
	assert.False(t, strings.HasPrefix(out.String(), Prefix))
	assert.True(t, json.Valid(bytes.TrimSpace(out.Bytes())))
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("BYTEKIT_LOG_LEVEL", "")
	assert.Equal(t, "warn", GetLogLevel())

	t.Setenv("BYTEKIT_LOG_LEVEL", "trace")
	assert.Equal(t, "trace", GetLogLevel())
	assert.Equal(t, hclog.Trace, hclog.LevelFromString(GetLogLevel()))
}

func TestOutput_LogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bytekit.log")
	t.Setenv("BYTEKIT_LOG_PATH", path)

	out, release := Output()
	_, err := out.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, release())

	// Released files reject further writes.
	_, err = out.Write([]byte("second\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))
}

func TestOutput_Stderr(t *testing.T) {
	t.Setenv("BYTEKIT_LOG_PATH", "")

	out, release := Output()
	assert.Equal(t, os.Stderr, out)
	assert.NoError(t, release())
}
