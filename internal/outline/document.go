// Package outline projects a numbered directory tree onto a nested link list (the summary document)
// and reads such documents back.
package outline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the name of the summary document written to the output directory.
const FileName = "SUMMARY.md"

const indentUnit = "\t"

// Line is a single nested link entry of the summary.
type Line struct {
	Depth  int
	Title  string
	Target string
}

func (l Line) String() string {
	return fmt.Sprintf("%s- [%s](%s)", strings.Repeat(indentUnit, l.Depth), l.Title, l.Target)
}

type Document []Line

// Render produces the summary text, one line per entry, each terminated by a newline.
func (d Document) Render() string {
	var text strings.Builder
	for _, line := range d {
		text.WriteString(line.String())
		text.WriteByte('\n')
	}
	return text.String()
}

// WriteFile replaces the document at path atomically: a temporary sibling is written first and renamed over it.
func WriteFile(path string, d Document) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.WriteString(d.Render()); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
