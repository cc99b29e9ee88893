package outline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/n2code/bookorder/internal/naming"
)

var (
	ErrIgnored         = errors.New("on ignore list")
	ErrUnnumbered      = errors.New("no numeric prefix")
	ErrNotEligible     = errors.New("directory content not eligible")
	ErrUnreadableEntry = errors.New("entry not readable")
)

// Options controls which parts of the tree end up in the summary.
type Options struct {
	Ignore                                []string //absolute paths, matching entries are skipped with their subtree
	IncludeUnnumberedDirectories          bool
	IncludeDirectoryContentWithoutSection bool
	Link                                  func(absolutePath string) string //formats link targets, identity if nil
	Skipped                               func(path string, reason error) //notified for every entry left out, may be nil
}

type projector struct {
	ignore map[string]bool
	opts   Options
}

// Project walks root depth-first and returns its summary. Only a failure to read root itself is fatal,
// unreadable entries further down are reported through Options.Skipped and left out.
func Project(root string, opts Options) (Document, error) {
	p := projector{ignore: make(map[string]bool), opts: opts}
	for _, path := range opts.Ignore {
		p.ignore[filepath.Clean(path)] = true
	}
	if p.ignore[filepath.Clean(root)] {
		p.skip(root, ErrIgnored)
		return nil, nil
	}
	doc, err := p.directory(filepath.Clean(root), 0)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", root, err)
	}
	return doc, nil
}

// directory returns the fragment for dir at the given nesting depth. It does not check the ignore list itself.
func (p *projector) directory(dir string, depth int) (Document, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	name := naming.Decode(filepath.Base(dir))
	considered := name.Numbered || p.opts.IncludeUnnumberedDirectories
	indexPath := filepath.Join(dir, naming.IndexFileName)
	hasIndex := isRegularFile(indexPath)
	isSection := considered && hasIndex
	contentEligible := considered && (hasIndex || p.opts.IncludeDirectoryContentWithoutSection)

	var doc Document
	childDepth := depth
	if isSection {
		doc = append(doc, Line{Depth: depth, Title: naming.DirectoryTitle(filepath.Base(dir)), Target: p.link(indexPath)})
		childDepth++
	}

	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		if p.ignore[path] {
			p.skip(path, ErrIgnored)
			continue
		}
		isDir, err := resolvesToDir(path, child)
		if err != nil {
			p.skip(path, fmt.Errorf("%w: %s", ErrUnreadableEntry, err))
			continue
		}
		if isDir {
			fragment, err := p.directory(path, childDepth)
			if err != nil {
				p.skip(path, fmt.Errorf("%w: %s", ErrUnreadableEntry, err))
				continue
			}
			doc = append(doc, fragment...)
			continue
		}
		if line, ok := p.file(path, childDepth, contentEligible); ok {
			doc = append(doc, line)
		}
	}
	return doc, nil
}

func (p *projector) file(path string, depth int, contentEligible bool) (Line, bool) {
	fileName := filepath.Base(path)
	if naming.IsIndexFile(fileName) || !naming.IsDocument(fileName) {
		return Line{}, false
	}
	if !contentEligible {
		p.skip(path, ErrNotEligible)
		return Line{}, false
	}
	name := naming.Decode(fileName)
	if !name.Numbered {
		p.skip(path, ErrUnnumbered)
		return Line{}, false
	}
	return Line{Depth: depth, Title: naming.FileTitle(name.Base), Target: p.link(path)}, true
}

func (p *projector) link(path string) string {
	if p.opts.Link == nil {
		return path
	}
	return p.opts.Link(path)
}

func (p *projector) skip(path string, reason error) {
	if p.opts.Skipped != nil {
		p.opts.Skipped(path, reason)
	}
}

func isRegularFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}

// resolvesToDir follows symbolic links, like a plain stat would.
func resolvesToDir(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return stat.IsDir(), nil
}
