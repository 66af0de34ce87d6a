// File: pkg/prompt/prompt.go

// Package prompt turns a scanned repository into the single text prompt sent
// to the generation service.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docgenie/pkg/scan"
)

// Template placeholders. Substitution is literal; file content that happens
// to contain the placeholder syntax is not escaped.
const (
	placeholderRepoPath     = "{repo_path}"
	placeholderFilesContent = "{files_content}"
)

// LoadTemplate reads the prompt template at path. Relative paths are tried
// against the working directory first and then against the executable's
// directory, so the bundled default template resolves no matter where the
// tool is invoked from.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(resolvePath(path))
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}
	return string(data), nil
}

func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	candidate := filepath.Join(filepath.Dir(exe), path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	// Neither location has it; report the path as given.
	return path
}

// Render substitutes the repository path and the concatenated file contents
// into the template.
func Render(template, repoPath string, files []scan.FileRecord) string {
	rendered := strings.ReplaceAll(template, placeholderRepoPath, repoPath)
	return strings.ReplaceAll(rendered, placeholderFilesContent, FilesContent(files))
}

// FilesContent formats the included files as fenced blocks, one per file, in
// the order the walker produced them.
func FilesContent(files []scan.FileRecord) string {
	var b strings.Builder
	for _, f := range files {
		b.WriteString("File: ")
		b.WriteString(f.Path)
		b.WriteString("\n```\n")
		b.WriteString(f.Content)
		b.WriteString("\n```\n")
	}
	return b.String()
}
