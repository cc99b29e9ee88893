package output

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// VisualFileTree renders directories and files below a root as an ASCII tree.
// Nodes are addressed by slash-agnostic paths relative to the root; each node carries its own label.
type VisualFileTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

func NewVisualFileTree(rootLabel string) VisualFileTree {
	return VisualFileTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t VisualFileTree) dir(relDir string) gotree.Tree {
	relDir = filepath.Clean(relDir)
	if relDir == "." {
		return t.tree
	}
	if dir, known := t.dirs[relDir]; known {
		return dir
	}
	//implicitly created parents are labeled with their plain name
	return t.AddDirectory(relDir, filepath.Base(relDir))
}

// AddDirectory creates the node for relDir (parents are created on demand) and labels it.
func (t VisualFileTree) AddDirectory(relDir string, label string) gotree.Tree {
	relDir = filepath.Clean(relDir)
	dir := t.dir(filepath.Dir(relDir)).Add(label)
	t.dirs[relDir] = dir
	return dir
}

// AddFile attaches a leaf labeled label to the directory relDir.
func (t VisualFileTree) AddFile(relDir string, label string) {
	t.dir(relDir).Add(label)
}

func (t VisualFileTree) Render() string {
	return t.tree.Print()
}
