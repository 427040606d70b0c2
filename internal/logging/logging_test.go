package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/config"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, config.LogConfig{Level: "info", Format: "text"}, false)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestNew_JSONVerbose(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, config.LogConfig{Level: "warn", Format: "json"}, true)
	require.NoError(t, err)

	l.Debug("dispatch", "intent", "addTodo")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "addTodo", rec["intent"])
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}

func TestOpen_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tada.log")
	l, closeFn, err := Open(config.LogConfig{Level: "info", Format: "text", File: p}, false, &bytes.Buffer{})
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}

func TestOpen_Fallback(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := Open(config.LogConfig{Level: "info", Format: "text"}, false, &buf)
	require.NoError(t, err)

	l.Info("to fallback")
	assert.NoError(t, closeFn())
	assert.Contains(t, buf.String(), "to fallback")
}
