package bookorder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/bookorder/internal/naming"
	"github.com/n2code/bookorder/internal/order"
	out "github.com/n2code/bookorder/internal/output"
)

func (b *bookorder) PrintTree(root string) error {
	canonical, err := canonicalDirectory(root)
	if err != nil {
		return newCommandError("tree unavailable", err)
	}

	tree := out.NewVisualFileTree(b.printer.Colorize(out.Highlight, b.displayablePath(canonical)) + b.orderMarker(canonical))
	var walk func(dir string, rel string)
	walk = func(dir string, rel string) {
		children, err := os.ReadDir(dir)
		if err != nil {
			tree.AddFile(rel, b.printer.Colorize(out.Failure, "[unreadable] "+err.Error()))
			return
		}
		for _, child := range children { //already sorted by name
			name := child.Name()
			if isHidden(name) {
				continue
			}
			path := filepath.Join(dir, name)
			label := b.entryLabel(name)
			if child.IsDir() {
				childRel := filepath.Join(rel, name)
				tree.AddDirectory(childRel, label+b.orderMarker(path))
				walk(path, childRel)
			} else {
				tree.AddFile(rel, label)
			}
		}
	}
	walk(canonical, ".")

	b.Print(out.Required, "%s", tree.Render())
	return nil
}

func (b *bookorder) PrintOrderStatus(root string) error {
	canonical, err := canonicalDirectory(root)
	if err != nil {
		return newCommandError("status unavailable", err)
	}

	checked, broken := 0, 0
	walkErr := filepath.WalkDir(canonical, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			b.Print(out.Error, "cannot read %s: %s\n", b.displayablePath(path), err)
			if entry != nil && entry.IsDir() && path != canonical {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if path != canonical && isHidden(entry.Name()) {
			return fs.SkipDir
		}
		checked++
		if _, err := order.ScanValid(path); err != nil {
			broken++
			b.Print(out.Required, "%s %s: %s\n", b.printer.Colorize(out.Warning, b.describeOrderProblem(err)), b.displayablePath(path), err)
		} else {
			b.Print(out.Verbose, "[ok] %s\n", b.displayablePath(path))
		}
		return nil
	})
	if walkErr != nil {
		return newCommandError("status incomplete", walkErr)
	}
	if broken > 0 {
		return newCommandError(counted(broken, "directory", "directories"), ErrBrokenOrder)
	}
	b.Print(out.Normal, "All %s numbered contiguously.\n", counted(checked, "directory is", "directories are"))
	return nil
}

func (b *bookorder) entryLabel(name string) string {
	if naming.IsIndexFile(name) || naming.Decode(name).Numbered {
		return name
	}
	return b.printer.Colorize(out.Dim, name)
}

// orderMarker flags a directory whose numbered entries do not form a contiguous sequence.
func (b *bookorder) orderMarker(dir string) string {
	if _, err := order.ScanValid(dir); err != nil {
		return " " + b.printer.Colorize(out.Warning, b.describeOrderProblem(err))
	}
	return ""
}

func (b *bookorder) describeOrderProblem(err error) string {
	var gap *order.GapError
	if errors.As(err, &gap) {
		if gap.Actual < gap.Expected {
			return "[duplicate]"
		}
		return "[gap]"
	}
	return "[unreadable]"
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, dot)
}
