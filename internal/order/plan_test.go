package order

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func relocate(t *testing.T, source, destination string, index int) error {
	t.Helper()
	plan, err := PlanRelocation(Relocation{Source: source, Destination: destination, Index: index, Width: 2})
	if err != nil {
		return err
	}
	return plan.Apply(nil)
}

func TestRelocateInsertShiftsKeepingOwnNames(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "dst/01_a.md", "dst/02_b.md", "dst/03_c.md", "src/new.md")

	if err := relocate(t, filepath.Join(root, "src", "new.md"), filepath.Join(root, "dst"), 2); err != nil {
		t.Fatal(err)
	}

	want := []string{"01_a.md", "02_new.md", "03_b.md", "04_c.md"}
	if diff := cmp.Diff(want, listDir(t, filepath.Join(root, "dst"))); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
	content, err := os.ReadFile(filepath.Join(root, "dst", "03_b.md"))
	if err != nil || string(content) != "dst/02_b.md" {
		t.Errorf("shifted entry lost its content: %q %v", content, err)
	}
}

func TestRelocateReencodesDestinationAtRequestedWidth(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "dst/01_a.md", "dst/02_b.md", "dst/03_c.md", "src/new.md")

	plan, err := PlanRelocation(Relocation{Source: filepath.Join(root, "src", "new.md"), Destination: filepath.Join(root, "dst"), Index: 3, Width: 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := plan.Apply(nil); err != nil {
		t.Fatal(err)
	}

	want := []string{"001_a.md", "002_b.md", "003_new.md", "004_c.md"}
	if diff := cmp.Diff(want, listDir(t, filepath.Join(root, "dst"))); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocateAppend(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "dst/01_a.md", "dst/02_b.md", "src/07_tail.md")

	if err := relocate(t, filepath.Join(root, "src", "07_tail.md"), filepath.Join(root, "dst"), 3); err != nil {
		t.Fatal(err)
	}

	want := []string{"01_a.md", "02_b.md", "03_tail.md"}
	if diff := cmp.Diff(want, listDir(t, filepath.Join(root, "dst"))); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocateClosesSourceGap(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "src/01_a.md", "src/02_b.md", "src/03_c/", "src/README.md", "dst/")

	if err := relocate(t, filepath.Join(root, "src", "02_b.md"), filepath.Join(root, "dst"), 1); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"01_a.md", "02_c", "README.md"}, listDir(t, filepath.Join(root, "src"))); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"01_b.md"}, listDir(t, filepath.Join(root, "dst"))); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocateDirectory(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "book/01_intro/README.md", "book/02_usage/01_x.md", "book/03_end/", "book/02_usage/02_y.md")

	if err := relocate(t, filepath.Join(root, "book", "03_end"), filepath.Join(root, "book", "02_usage"), 1); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"01_intro", "02_usage"}, listDir(t, filepath.Join(root, "book"))); diff != "" {
		t.Errorf("book mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"01_end", "02_x.md", "03_y.md"}, listDir(t, filepath.Join(root, "book", "02_usage"))); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocateSourceGapIsHealed(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "src/02_a.md", "src/05_b.md", "src/09_c.md", "dst/")

	if err := relocate(t, filepath.Join(root, "src", "05_b.md"), filepath.Join(root, "dst"), 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"01_a.md", "02_c.md"}, listDir(t, filepath.Join(root, "src"))); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocateOutOfShiftedParent(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "book/01_intro/", "book/02_usage/01_x.md", "book/02_usage/02_y.md")

	if err := relocate(t, filepath.Join(root, "book", "02_usage", "01_x.md"), filepath.Join(root, "book"), 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"01_x.md", "02_intro", "03_usage"}, listDir(t, filepath.Join(root, "book"))); diff != "" {
		t.Errorf("book mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"01_y.md"}, listDir(t, filepath.Join(root, "book", "03_usage"))); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocateWithinSameDirectory(t *testing.T) {
	tests := []struct {
		name   string
		source string
		index  int
		want   []string
	}{
		{"last to first", "03_c.md", 1, []string{"01_c.md", "02_a.md", "03_b.md"}},
		{"first to last", "01_a.md", 3, []string{"01_b.md", "02_c.md", "03_a.md"}},
		{"middle to first", "02_b.md", 1, []string{"01_b.md", "02_a.md", "03_c.md"}},
		{"same slot", "02_b.md", 2, []string{"01_a.md", "02_b.md", "03_c.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			makeTree(t, root, "01_a.md", "02_b.md", "03_c.md")
			if err := relocate(t, filepath.Join(root, tt.source), root, tt.index); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, listDir(t, root)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRelocateSameDirectoryRejectsIndexBeyondCount(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "01_a.md", "02_b.md")

	err := relocate(t, filepath.Join(root, "01_a.md"), root, 3)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Max != 2 {
		t.Fatalf("expected range error with max 2, got %v", err)
	}
}

func TestRelocateNameCollisionsAreSequenced(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "dst/01_x.md", "dst/02_x.md", "src/x.md")

	if err := relocate(t, filepath.Join(root, "src", "x.md"), filepath.Join(root, "dst"), 1); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"01_x.md", "02_x.md", "03_x.md"}, listDir(t, filepath.Join(root, "dst"))); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for name, origin := range map[string]string{"01_x.md": "src/x.md", "02_x.md": "dst/01_x.md", "03_x.md": "dst/02_x.md"} {
		content, _ := os.ReadFile(filepath.Join(root, "dst", name))
		if string(content) != origin {
			t.Errorf("%s holds %q, want content of %s", name, content, origin)
		}
	}
}

func TestRelocatePreconditions(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "dst/01_a.md", "dst/02_b.md", "gap/01_a.md", "gap/03_c.md", "dup/01_a.md", "dup/01_b.md", "src/new.md", "src/README.md", "tree/01_sub/")
	src := filepath.Join(root, "src", "new.md")

	tests := []struct {
		name        string
		source      string
		destination string
		index       int
		check       func(error) bool
	}{
		{"missing source", filepath.Join(root, "nope.md"), filepath.Join(root, "dst"), 1, isPathError},
		{"missing destination", src, filepath.Join(root, "nope"), 1, isPathError},
		{"destination is file", src, filepath.Join(root, "dst", "01_a.md"), 1, isPathError},
		{"index zero", src, filepath.Join(root, "dst"), 0, isRangeError},
		{"index too large", src, filepath.Join(root, "dst"), 4, isRangeError},
		{"gap in destination", src, filepath.Join(root, "gap"), 1, isGapError},
		{"duplicate in source", filepath.Join(root, "dup", "01_a.md"), filepath.Join(root, "dst"), 1, isGapError},
		{"index file", filepath.Join(root, "src", "README.md"), filepath.Join(root, "dst"), 1, isPathError},
		{"into own subtree", filepath.Join(root, "tree"), filepath.Join(root, "tree", "01_sub"), 1, isPathError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanRelocation(Relocation{Source: tt.source, Destination: tt.destination, Index: tt.index, Width: 2})
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	//nothing may have been touched
	if diff := cmp.Diff([]string{"01_a.md", "02_b.md"}, listDir(t, filepath.Join(root, "dst"))); diff != "" {
		t.Errorf("destination modified (-want +got):\n%s", diff)
	}
}

func TestGapErrorReportsExpectedAndActual(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "dst/01_a.md", "dst/03_b.md", "new.md")

	_, err := PlanRelocation(Relocation{Source: filepath.Join(root, "new.md"), Destination: filepath.Join(root, "dst"), Index: 1, Width: 2})
	var gap *GapError
	if !errors.As(err, &gap) {
		t.Fatalf("expected gap error, got %v", err)
	}
	if gap.Expected != 2 || gap.Actual != 3 || gap.Path != filepath.Join(root, "dst", "03_b.md") {
		t.Errorf("unexpected gap details: %+v", gap)
	}
}

func TestPlanCloseGap(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "1_a.md", "04_b/", "9_c.md", "README.md", "loose.md")

	plan, err := PlanCloseGap(root, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := plan.Apply(nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"001_a.md", "002_b", "003_c.md", "README.md", "loose.md"}, listDir(t, root)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanCloseGapRejectsDuplicates(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "01_a.md", "01_b.md")

	if _, err := PlanCloseGap(root, 2); !isGapError(err) {
		t.Errorf("expected gap error for duplicate prefixes, got %v", err)
	}
}

func TestSequenceBreaksCycles(t *testing.T) {
	swap := []Step{{From: "/d/a", To: "/d/b"}, {From: "/d/b", To: "/d/a"}}
	plan := sequence(swap)
	want := []Step{
		{From: "/d/a", To: "/d/.a.bookorder-tmp"},
		{From: "/d/b", To: "/d/a"},
		{From: "/d/.a.bookorder-tmp", To: "/d/b"},
	}
	if diff := cmp.Diff(want, plan.Steps); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceOrdersChains(t *testing.T) {
	chain := []Step{{From: "/d/1", To: "/d/2"}, {From: "/d/2", To: "/d/3"}}
	plan := sequence(chain)
	want := []Step{{From: "/d/2", To: "/d/3"}, {From: "/d/1", To: "/d/2"}}
	if diff := cmp.Diff(want, plan.Steps); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func isPathError(err error) bool {
	var e *PathError
	return errors.As(err, &e)
}

func isRangeError(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}

func isGapError(err error) bool {
	var e *GapError
	return errors.As(err, &e)
}
