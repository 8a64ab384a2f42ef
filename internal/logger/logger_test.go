package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The logger is process-global state, so the before/after-init behavior is
// exercised in one sequential test.
func TestLoggerLifecycle(t *testing.T) {
	t.Chdir(t.TempDir())

	// Before init: console levels must not panic, Debug stays silent.
	Info("console only %d", 1)
	Warn("console only")
	Debug("dropped")

	require.NoError(t, InitLogger())
	Debug("fetch failed for %s: %v", "0xabc", "connection refused")
	Info("analyzed %d contract(s)", 2)
	InfoFileOnly("file only line")
	Close()

	entries, err := os.ReadDir("logs")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join("logs", entries[0].Name()))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[DEBUG] fetch failed for 0xabc: connection refused")
	assert.Contains(t, content, "[INFO] analyzed 2 contract(s)")
	assert.Contains(t, content, "[INFO] file only line")
	assert.NotContains(t, content, "dropped")
	assert.NotContains(t, content, "console only")
}
