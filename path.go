package bookorder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/bookorder/internal"
	"github.com/n2code/bookorder/internal/order"
)

const dot string = "."
const dirSeparator = string(filepath.Separator)
const dotDirSeparator = dot + dirSeparator
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

func (b *bookorder) displayablePath(absolutePath string) string {
	return pleasantPath(filepath.Clean(absolutePath), mustGetwd(), true)
}

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	internal.AssertNoError(err, "paths should both be absolute")
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// Paths inside the working directory are emitted relative to it, with leading "./" to stress relativity (opt-out possible).
// Everything else is reflected unchanged.
func pleasantPath(absolute string, wd string, omitDotSlash bool) string {
	if absolute == wd {
		return dot
	}
	if !isChildOf(absolute, wd) {
		return absolute
	}
	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	if omitDotSlash {
		return relative
	}
	return dotDirSeparator + relative
}

// canonicalDirectory resolves path to an absolute, symlink-free path of an existing directory.
func canonicalDirectory(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(mustAbsFilepath(path))
	if err != nil {
		return "", &order.PathError{Path: path, Problem: "directory does not exist"}
	}
	stat, err := os.Stat(resolved)
	if err != nil || !stat.IsDir() {
		return "", &order.PathError{Path: path, Problem: "not a directory"}
	}
	return resolved, nil
}

// canonicalEntry resolves the parent directory of path but keeps its last element,
// a symlinked entry is thereby treated as the link itself and not its target.
func canonicalEntry(path string) string {
	abs := mustAbsFilepath(path)
	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs //left for the existence checks of the caller
	}
	return filepath.Join(parent, filepath.Base(abs))
}

// canonicalOrAbsolute resolves symlinks where possible. Paths that do not exist are only made absolute.
func canonicalOrAbsolute(path string) string {
	abs := mustAbsFilepath(path)
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// ignoreForms lists every path under which the projector may meet path. A symlinked directory
// is walked under the link's own name, so the link form is kept next to the resolved target.
func ignoreForms(path string) []string {
	link, resolved := canonicalEntry(path), canonicalOrAbsolute(path)
	if link == resolved {
		return []string{link}
	}
	return []string{link, resolved}
}

// linkFormatter produces outline link targets, either absolute or relative to the outline's directory.
func linkFormatter(outputDir string, relative bool) func(string) string {
	if !relative {
		return filepath.ToSlash
	}
	return func(target string) string {
		rel, err := filepath.Rel(outputDir, target)
		if err != nil {
			return filepath.ToSlash(target)
		}
		return filepath.ToSlash(rel)
	}
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}

// mustAbsFilepath calls filepath.Abs and asserts that it is successful
func mustAbsFilepath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}
