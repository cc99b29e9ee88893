package output

import (
	"strings"
	"testing"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		countable interface{}
		want      string
	}{
		{0, "renames"},
		{1, "rename"},
		{2, "renames"},
		{[]string{"a"}, "rename"},
		{[]string{}, "renames"},
	}
	for _, tt := range tests {
		if got := Plural(tt.countable, "rename", "renames"); got != tt.want {
			t.Errorf("Plural(%v) = %s, want %s", tt.countable, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	if got := Indent(2, "a\n\nb\n"); got != "  a\n\n  b\n" {
		t.Errorf("Indent = %q", got)
	}
}

func TestVisualFileTree(t *testing.T) {
	tree := NewVisualFileTree("book")
	tree.AddDirectory("01_intro", "01_intro")
	tree.AddFile("01_intro", "01_a.md")
	tree.AddFile("02_more/deep", "01_b.md")

	got := tree.Render()
	for _, fragment := range []string{"book\n", "── 01_intro\n", "│   └── 01_a.md", "── 02_more\n", "    └── deep\n", "        └── 01_b.md"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("tree rendering lacks %q:\n%s", fragment, got)
		}
	}
}
