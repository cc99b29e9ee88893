package outline

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two renderings line by line. The report prefixes removed lines with "-",
// added lines with "+" and unchanged lines with a space.
func Diff(current string, updated string) (changed bool, report string) {
	dmp := diffmatchpatch.New()
	currentChars, updatedChars, lines := dmp.DiffLinesToChars(current, updated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(currentChars, updatedChars, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		marker := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
			changed = true
		case diffmatchpatch.DiffInsert:
			marker = "+"
			changed = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(marker)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return changed, out.String()
}
