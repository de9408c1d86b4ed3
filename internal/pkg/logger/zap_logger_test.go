package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	l := NewIsolatedLogger(path)

	l.Info("CHAT", "turn completed", map[string]interface{}{"session_id": "abc"})
	l.Debug("CHAT", "below file level", nil)
	require.NoError(t, l.Sync())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}

	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "turn completed", lines[0]["message"])
	assert.Equal(t, "CHAT", lines[0]["module"])
	details, ok := lines[0]["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", details["session_id"])
}

func TestNopLoggerAcceptsNilDetails(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Error("CHAT", "nothing", nil)
		l.Warn("CHAT", "nothing", map[string]interface{}{"error": "x"})
	})
}
