package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasklane.log")

	l, closer, err := New("debug", path)
	require.NoError(t, err)

	l.Info().Str("task_id", "t1").Msg("task created")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"task_id":"t1"`)
	assert.Contains(t, string(data), "task created")
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklane.log")

	l, closer, err := New("warn", path)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Warn().Msg("visible")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "visible")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, closer, err := New("info", "")
	require.NoError(t, err)
	defer closer()

	l.Info().Msg("nowhere")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", "logs", "tasklane.log"), DefaultPath("/data"))
}
