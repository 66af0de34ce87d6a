package prompt

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgenie/pkg/scan"
)

func TestFilesContent(t *testing.T) {
	files := []scan.FileRecord{
		{Path: "a.py", Content: "print('hi')"},
		{Path: "src/b.ts", Content: "const b = 2\n"},
	}

	got := FilesContent(files)
	want := "File: a.py\n```\nprint('hi')\n```\n" +
		"File: src/b.ts\n```\nconst b = 2\n\n```\n"
	assert.Equal(t, want, got)
}

func TestFilesContentEmpty(t *testing.T) {
	assert.Equal(t, "", FilesContent(nil))
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	template := "Repo: {repo_path}\n\nFiles:\n{files_content}\nEnd of {repo_path}."
	files := []scan.FileRecord{{Path: "main.ts", Content: "let x"}}

	got := Render(template, "/work/demo", files)

	assert.NotContains(t, got, "{repo_path}")
	assert.NotContains(t, got, "{files_content}")
	assert.Contains(t, got, "Repo: /work/demo\n")
	assert.Contains(t, got, "End of /work/demo.")
	assert.Contains(t, got, "File: main.ts\n```\nlet x\n```\n")
}

func TestRenderDoesNotRescanFileContent(t *testing.T) {
	// Placeholder syntax inside file content survives literally.
	template := "{files_content}"
	files := []scan.FileRecord{{Path: "a.md", Content: "uses {repo_path} and {files_content}"}}

	got := Render(template, "/repo", files)
	assert.Contains(t, got, "uses {repo_path} and {files_content}")
}

func TestLoadTemplateAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmpl.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello {repo_path}"), 0o644))

	got, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "hello {repo_path}", got)
}

func TestLoadTemplateRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmpl.txt"), []byte("body"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(dir))

	got, err := LoadTemplate("tmpl.txt")
	require.NoError(t, err)
	assert.Equal(t, "body", got)
}

func TestLoadTemplateMissing(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.txt")
}
