package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "log.txt")
	l := NewAt(path)
	l.Log("hello")
	l.Logf("segments=%d", 12)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "] hello"))
	assert.True(t, strings.HasPrefix(lines[1], "["))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "segments=12\n")
}

func TestMemoryOnly(t *testing.T) {
	l := NewAt("")
	l.Log("kept")
	lines := l.Lines()
	require.Len(t, lines, 1)
	lines[0] = "mutated"
	assert.True(t, strings.HasSuffix(l.Lines()[0], "kept"))
}
