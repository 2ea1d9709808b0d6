package supervisor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	tests := []struct {
		name     string
		content  string
		n        int
		expected []string
	}{
		{"empty", "", 10, nil},
		{"fewer lines than asked", "a\nb\n", 10, []string{"a", "b"}},
		{"last n", "a\nb\nc\nd\n", 2, []string{"c", "d"}},
		{"no trailing newline", "a\nb\nc", 2, []string{"b", "c"}},
		{"crlf", "a\r\nb\r\n", 5, []string{"a", "b"}},
		{"blank lines kept", "a\n\nb\n", 3, []string{"a", "", "b"}},
		{"trailing blank lines kept", "a\nb\n\n\n", 2, []string{"", ""}},
		{"trailing blank lines counted", "a\nb\n\n\n", 4, []string{"a", "b", "", ""}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := tailFile(write(fmt.Sprintf("f%d.log", i), tt.content), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestTailFile_Missing(t *testing.T) {
	lines, err := tailFile(filepath.Join(t.TempDir(), "absent.log"), 10)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestTailFile_SpansChunks(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20000; i++ {
		fmt.Fprintf(&b, "line %05d %s\n", i, strings.Repeat("x", 20))
	}
	path := filepath.Join(t.TempDir(), "big.log")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))

	lines, err := tailFile(path, 5000)
	require.NoError(t, err)
	require.Len(t, lines, 5000)
	assert.True(t, strings.HasPrefix(lines[0], "line 15000 "))
	assert.True(t, strings.HasPrefix(lines[4999], "line 19999 "))
}
