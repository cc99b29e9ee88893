package order

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/bookorder/internal/naming"
)

// Step renames one path. Both paths are absolute.
type Step struct {
	From string
	To   string
}

// Plan is the complete, collision-free sequence of renames of one operation.
type Plan struct {
	Steps []Step
}

func (p Plan) Empty() bool {
	return len(p.Steps) == 0
}

// Relocation describes moving Source to position Index (1-based) among the numbered entries of Destination.
type Relocation struct {
	Source      string
	Destination string
	Index       int
	Width       int
}

// PlanRelocation checks all preconditions and computes every rename of the relocation before anything is touched:
// the shift of destination entries at or after Index, the move itself, and the renumbering of the
// directory the source is taken from.
func PlanRelocation(r Relocation) (Plan, error) {
	source := filepath.Clean(r.Source)
	destination := filepath.Clean(r.Destination)

	sourceStat, err := os.Stat(source)
	if err != nil {
		return Plan{}, &PathError{Path: source, Problem: "source does not exist"}
	}
	destStat, err := os.Stat(destination)
	if err != nil {
		return Plan{}, &PathError{Path: destination, Problem: "destination does not exist"}
	}
	if !destStat.IsDir() {
		return Plan{}, &PathError{Path: destination, Problem: "destination is not a directory"}
	}
	if r.Index < 1 {
		return Plan{}, &RangeError{Index: r.Index}
	}

	var moved Entry
	switch {
	case sourceStat.Mode().IsRegular():
		moved = NewEntry(source, File)
	case sourceStat.IsDir():
		moved = NewEntry(source, Directory)
	default:
		return Plan{}, &PathError{Path: source, Problem: "source is neither a file nor a directory"}
	}
	if naming.IsIndexFile(moved.FileName()) {
		return Plan{}, &PathError{Path: source, Problem: "the index file is exempt from numbering"}
	}
	if moved.Kind == Directory && isWithin(destination, source) {
		return Plan{}, &PathError{Path: destination, Problem: "destination lies inside the source"}
	}

	destSet, err := ScanValid(destination)
	if err != nil {
		return Plan{}, err
	}
	sameDir := moved.Dir() == destination
	if sameDir {
		destSet, _ = destSet.Without(source)
	}
	if max := len(destSet) + 1; r.Index > max {
		return Plan{}, &RangeError{Index: r.Index, Max: max}
	}

	var sourceSet SiblingSet
	if !sameDir {
		//the source directory is renumbered from scratch afterwards, so only ambiguous order blocks the move
		if sourceSet, err = Scan(moved.Dir()); err != nil {
			return Plan{}, err
		}
		if err := checkDistinct(sourceSet.Sorted()); err != nil {
			return Plan{}, err
		}
		sourceSet, _ = sourceSet.Without(source)
	}

	steps := insertionSteps(destSet, moved, destination, r.Index, r.Width)
	steps = append(steps, closeGapSteps(sourceSet, r.Width)...)
	plan := sequence(steps)
	if err := checkTargetsFree(plan); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// PlanCloseGap renumbers the numbered entries of dir to a fresh 1..M sequence in their current order.
// Gaps are closed, duplicate prefixes are rejected because their order is ambiguous.
func PlanCloseGap(dir string, width int) (Plan, error) {
	set, err := Scan(dir)
	if err != nil {
		return Plan{}, err
	}
	sorted := set.Sorted()
	if err := checkDistinct(sorted); err != nil {
		return Plan{}, err
	}
	plan := sequence(closeGapSteps(sorted, width))
	if err := checkTargetsFree(plan); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// insertionSteps assigns the moved entry position index in the sorted destination set.
// Entries from index on move up by one and keep their own base name. Every entry is re-encoded at width
// so the directory never mixes prefix widths.
func insertionSteps(dest SiblingSet, moved Entry, destination string, index int, width int) []Step {
	var shifts []Step
	var move Step
	placed := false
	place := func(position int) {
		move = Step{From: moved.Path, To: filepath.Join(destination, naming.Encode(position, moved.Name.Base, width))}
		placed = true
	}

	position := 1
	for _, entry := range dest {
		if position == index {
			place(position)
			position++
		}
		if newName := naming.Encode(position, entry.Name.Base, width); newName != entry.FileName() {
			shifts = append(shifts, Step{From: entry.Path, To: filepath.Join(destination, newName)})
		}
		position++
	}
	if !placed {
		place(position)
	}

	//highest first so every shift targets an already vacated slot
	steps := make([]Step, 0, len(shifts)+1)
	for i := len(shifts) - 1; i >= 0; i-- {
		steps = append(steps, shifts[i])
	}
	if move.From != move.To {
		steps = append(steps, move)
	}
	return steps
}

// closeGapSteps re-encodes all entries of the (sorted) set as 1..M. Entries already carrying their new name are left alone.
func closeGapSteps(sorted SiblingSet, width int) (steps []Step) {
	for i, entry := range sorted.Sorted() {
		newName := naming.Encode(i+1, entry.Name.Base, width)
		if newName != entry.FileName() {
			steps = append(steps, Step{From: entry.Path, To: filepath.Join(entry.Dir(), newName)})
		}
	}
	return
}

// sequence orders steps so that no rename targets a path still occupied by a pending rename.
// Cycles (e.g. two entries swapping names) are broken by parking one entry under a temporary name.
func sequence(steps []Step) Plan {
	pending := make([]Step, len(steps))
	copy(pending, steps)
	var ordered []Step

	for len(pending) > 0 {
		occupied := make(map[string]bool, len(pending))
		for _, s := range pending {
			occupied[s.From] = true
		}
		next := -1
		for i, s := range pending {
			if !occupied[s.To] {
				next = i
				break
			}
		}
		if next < 0 {
			park := temporaryName(pending[0].From)
			ordered = append(ordered, Step{From: pending[0].From, To: park})
			pending[0].From = park
			continue
		}
		ordered = append(ordered, pending[next])
		pending = append(pending[:next], pending[next+1:]...)
	}
	rebase(ordered)
	return Plan{Steps: ordered}
}

// rebase rewrites paths of later steps that lie below a directory renamed by an earlier step.
func rebase(steps []Step) {
	for i := range steps {
		for j := i + 1; j < len(steps); j++ {
			steps[j].From = rebasePath(steps[j].From, steps[i].From, steps[i].To)
			steps[j].To = rebasePath(steps[j].To, steps[i].From, steps[i].To)
		}
	}
}

func rebasePath(path string, oldDir string, newDir string) string {
	if strings.HasPrefix(path, oldDir+string(filepath.Separator)) {
		return newDir + path[len(oldDir):]
	}
	return path
}

func temporaryName(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".bookorder-tmp")
}

// checkTargetsFree rejects plans that would overwrite a path no step vacates beforehand.
func checkTargetsFree(plan Plan) error {
	vacated := make(map[string]bool)
	for _, s := range plan.Steps {
		if !vacated[s.To] {
			if _, err := os.Lstat(s.To); err == nil {
				return &PathError{Path: s.To, Problem: "rename target already exists"}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
		vacated[s.From] = true
		delete(vacated, s.To)
	}
	return nil
}

func isWithin(path string, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
