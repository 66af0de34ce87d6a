package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	patterns := Load(t.TempDir(), nil)
	assert.Empty(t, patterns)
}

func TestLoadReadsPatterns(t *testing.T) {
	dir := t.TempDir()
	content := "# generated artifacts\n*.min.js\n\ndocs/*\n  vendor.css  \n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	patterns := Load(dir, nil)
	assert.Equal(t, []string{"*.min.js", "docs/*", "vendor.css"}, patterns)
}

func TestParseLines(t *testing.T) {
	t.Run("comments and blanks are dropped", func(t *testing.T) {
		patterns := ParseLines([]string{"# comment", "", "   ", "*.sql"}, nil)
		assert.Equal(t, []string{"*.sql"}, patterns)
	})

	t.Run("escaped hash is a literal pattern", func(t *testing.T) {
		patterns := ParseLines([]string{`\#notes.md`}, nil)
		assert.Equal(t, []string{"#notes.md"}, patterns)
	})

	t.Run("malformed globs are skipped", func(t *testing.T) {
		patterns := ParseLines([]string{"good.*", "bad[", "*.ok"}, nil)
		assert.Equal(t, []string{"good.*", "*.ok"}, patterns)
	})
}
