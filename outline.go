package bookorder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/bookorder/internal/outline"
	out "github.com/n2code/bookorder/internal/output"
)

func (b *bookorder) GenerateOutline(request OutlineRequest) error {
	outputDir, doc, err := b.project(request)
	if err != nil {
		return err
	}
	target := filepath.Join(outputDir, outline.FileName)
	if err := outline.WriteFile(target, doc); err != nil {
		return newCommandError("writing outline failed", err)
	}
	b.Print(out.Normal, "Wrote %s with %s.\n", b.displayablePath(target), counted(len(doc), "entry", "entries"))
	return nil
}

func (b *bookorder) DiffOutline(request OutlineRequest) (changed bool, err error) {
	outputDir, doc, err := b.project(request)
	if err != nil {
		return false, err
	}
	target := filepath.Join(outputDir, outline.FileName)
	current, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, newCommandError("reading outline failed", err)
	}
	changed, report := outline.Diff(string(current), doc.Render())
	if !changed {
		b.Print(out.Normal, "%s is up to date.\n", b.displayablePath(target))
		return false, nil
	}
	b.Print(out.Normal, "%s differs from the book:\n", b.displayablePath(target))
	b.Print(out.Required, "%s", b.colorizeDiff(report))
	return true, nil
}

func (b *bookorder) colorizeDiff(report string) string {
	if !b.printer.UsesEscapes() {
		return report
	}
	var colored strings.Builder
	for _, line := range strings.SplitAfter(report, "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			colored.WriteString(b.printer.Colorize(out.Failure, line))
		case strings.HasPrefix(line, "+"):
			colored.WriteString(b.printer.Colorize(out.Success, line))
		default:
			colored.WriteString(line)
		}
	}
	return colored.String()
}

func (b *bookorder) CheckOutline(outputDir string) error {
	dir, err := canonicalDirectory(outputDir)
	if err != nil {
		return newCommandError("output directory unusable", err)
	}
	source := filepath.Join(dir, outline.FileName)
	content, err := os.ReadFile(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newCommandError(b.displayablePath(source), ErrNoOutline)
		}
		return newCommandError("reading outline failed", err)
	}

	doc := outline.Parse(content)
	broken := 0
	for _, line := range doc {
		target := filepath.FromSlash(line.Target)
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		if _, err := os.Stat(target); err != nil {
			broken++
			b.Print(out.Required, "%s %s -> %s\n", b.printer.Colorize(out.Failure, "[broken]"), line.Title, line.Target)
		} else {
			b.Print(out.Verbose, "[ok] %s -> %s\n", line.Title, line.Target)
		}
	}
	if broken > 0 {
		return newCommandError(fmt.Sprintf("%s of %d", counted(broken, "link", "links"), len(doc)), ErrBrokenLinks)
	}
	b.Print(out.Normal, "All %s in %s resolve.\n", counted(len(doc), "link", "links"), b.displayablePath(source))
	return nil
}

// project builds the outline of all source directories in order, the output directory is returned in canonical form.
func (b *bookorder) project(request OutlineRequest) (outputDir string, doc outline.Document, err error) {
	if len(request.SourceDirs) == 0 {
		return "", nil, newCommandError("no source directory given", nil)
	}
	outputDir, err = canonicalDirectory(request.OutputDir)
	if err != nil {
		return "", nil, newCommandError("output directory unusable", err)
	}

	ignore := make([]string, 0, len(request.Ignore))
	for _, path := range request.Ignore {
		ignore = append(ignore, ignoreForms(path)...)
	}
	opts := outline.Options{
		Ignore:                                ignore,
		IncludeUnnumberedDirectories:          request.IncludeUnnumberedDirectories,
		IncludeDirectoryContentWithoutSection: request.IncludeDirectoryContentWithoutSection,
		Link:                                  linkFormatter(outputDir, request.RelativeLinks),
		Skipped:                               b.reportSkipped,
	}

	for _, sourceDir := range request.SourceDirs {
		root, err := canonicalDirectory(sourceDir)
		if err != nil {
			return "", nil, newCommandError("source directory unusable", err)
		}
		b.Print(out.Verbose, "Scanning %s...\n", b.displayablePath(root))
		fragment, err := outline.Project(root, opts)
		if err != nil {
			return "", nil, newCommandError("outline generation failed", err)
		}
		doc = append(doc, fragment...)
	}
	return outputDir, doc, nil
}

func (b *bookorder) reportSkipped(path string, reason error) {
	switch {
	case errors.Is(reason, outline.ErrUnreadableEntry):
		b.Print(out.Error, "skipping %s: %s\n", b.displayablePath(path), reason)
	case errors.Is(reason, outline.ErrIgnored):
		b.Print(out.Verbose, "ignoring %s\n", b.displayablePath(path))
	default:
		b.Print(out.Verbose, "leaving out %s (%s)\n", b.displayablePath(path), reason)
	}
}
