// File: pkg/docgen/tree.go
package docgen

import (
	"fmt"
	"sort"
	"strings"

	"docgenie/pkg/scan"
)

// treeNode is one directory or file in the rendered tree.
type treeNode struct {
	name     string
	children map[string]*treeNode
	isDir    bool
}

// renderFileTree renders the included files as an indented tree rooted at
// the scanned directory. It works from the walk records, so pruned and
// ignored entries never appear.
func renderFileTree(root string, files []scan.FileRecord) string {
	top := &treeNode{children: map[string]*treeNode{}, isDir: true}
	for _, f := range files {
		insertPath(top, strings.Split(f.Path, "/"))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s/\n", strings.TrimSuffix(root, "/")))
	renderChildren(&b, top, "")
	return b.String()
}

func insertPath(node *treeNode, parts []string) {
	if len(parts) == 0 {
		return
	}
	name := parts[0]
	child, ok := node.children[name]
	if !ok {
		child = &treeNode{name: name, children: map[string]*treeNode{}}
		node.children[name] = child
	}
	if len(parts) > 1 {
		child.isDir = true
		insertPath(child, parts[1:])
	}
}

// renderChildren emits one level of the tree: directories first, then files,
// alphabetically within each group.
func renderChildren(b *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir {
			b.WriteString(fmt.Sprintf("%s%s%s/\n", prefix, connector, entry.name))
			renderChildren(b, entry, prefix+extension)
		} else {
			b.WriteString(fmt.Sprintf("%s%s%s\n", prefix, connector, entry.name))
		}
	}
}
