package bookorder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/n2code/bookorder/internal/naming"
	"github.com/n2code/bookorder/internal/order"
	out "github.com/n2code/bookorder/internal/output"
)

func (b *bookorder) Relocate(request RelocateRequest) error {
	source := canonicalEntry(request.Source)
	destination := canonicalOrAbsolute(request.Destination)
	if err := checkKind(source, request.Kind); err != nil {
		return newCommandError(b.displayablePath(source), err)
	}

	plan, err := order.PlanRelocation(order.Relocation{
		Source:      source,
		Destination: destination,
		Index:       request.Index,
		Width:       widthOrDefault(request.Width),
	})
	if err != nil {
		return newCommandError("relocation refused", err)
	}

	question := fmt.Sprintf("Move %s to position %d in %s?", b.displayablePath(source), request.Index, b.displayablePath(destination))
	if err := b.applyPlan(plan, question); err != nil {
		return err
	}

	if request.UpdateOutline != nil {
		if err := b.GenerateOutline(*request.UpdateOutline); err != nil {
			return newCommandError("entries were moved but the outline could not be updated", err)
		}
	}
	return nil
}

func (b *bookorder) Renumber(dir string, width int) error {
	canonical, err := canonicalDirectory(dir)
	if err != nil {
		return newCommandError("renumbering refused", err)
	}
	plan, err := order.PlanCloseGap(canonical, widthOrDefault(width))
	if err != nil {
		return newCommandError("renumbering refused", err)
	}
	return b.applyPlan(plan, fmt.Sprintf("Renumber %s?", b.displayablePath(canonical)))
}

func (b *bookorder) applyPlan(plan order.Plan, question string) error {
	if plan.Empty() {
		b.Print(out.Normal, "Nothing to rename.\n")
		return nil
	}

	listing := out.Verbose
	if b.confirm != nil {
		listing = out.Normal //the user should see what is approved
	}
	b.Print(listing, "Planned %s:\n%s", out.Plural(len(plan.Steps), "rename", "renames"), out.Indent(2, b.describeSteps(plan.Steps)))
	if !b.approve(question) {
		return newCommandError("no changes made", ErrCancelled)
	}

	err := plan.Apply(func(step order.Step) {
		b.Print(out.Verbose, "renamed %s\n", b.describeStep(step))
	})
	if err != nil {
		var moveErr *order.MoveError
		if errors.As(err, &moveErr) && len(moveErr.Applied) > 0 {
			b.Print(out.Error, "%d of %d renames were applied before the failure and remain in place:\n%s",
				len(moveErr.Applied), len(plan.Steps), out.Indent(2, b.describeSteps(moveErr.Applied)))
		}
		return newCommandError("renaming aborted", err)
	}
	b.Print(out.Normal, "Applied %s.\n", counted(len(plan.Steps), "rename", "renames"))
	return nil
}

func (b *bookorder) describeStep(step order.Step) string {
	return fmt.Sprintf("%s -> %s", b.displayablePath(step.From), b.displayablePath(step.To))
}

func (b *bookorder) describeSteps(steps []order.Step) string {
	var lines strings.Builder
	for _, step := range steps {
		lines.WriteString(b.describeStep(step))
		lines.WriteByte('\n')
	}
	return lines.String()
}

// checkKind enforces the expected source kind. Missing sources pass, the planner reports them.
func checkKind(source string, expected EntryKind) error {
	stat, err := os.Stat(source)
	if err != nil {
		return nil
	}
	switch {
	case expected == FileKind && stat.IsDir():
		return fmt.Errorf("%w: expected a file but found a directory", ErrKindMismatch)
	case expected == DirectoryKind && !stat.IsDir():
		return fmt.Errorf("%w: expected a directory but found a file", ErrKindMismatch)
	}
	return nil
}

func widthOrDefault(width int) int {
	if width < 1 {
		return naming.DefaultWidth
	}
	return width
}
