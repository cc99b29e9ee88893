package output

import (
	"reflect"
	"strings"
)

func Indent(spaces int, multilineText string) string {
	indent := strings.Repeat(" ", spaces)
	lines := strings.Split(multilineText, "\n")
	var indented strings.Builder
	for i, line := range lines {
		if line != "" {
			indented.WriteString(indent)
			indented.WriteString(line)
		}
		if i < len(lines)-1 {
			indented.WriteRune('\n')
		}
	}
	return indented.String()
}

// Plural picks the word form matching the count, which is either an int or anything with a length.
func Plural(countable interface{}, singular string, plural string) string {
	switch c := countable.(type) {
	case int:
		if c != 1 {
			return plural
		}
	default:
		if reflect.ValueOf(c).Len() != 1 {
			return plural
		}
	}
	return singular
}
