package order

import (
	"fmt"
	"strings"
)

// PathError reports a path that does not exist or is not of the expected kind.
type PathError struct {
	Path    string
	Problem string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Problem)
}

// GapError reports the first numbered entry of a directory that breaks the 1..N sequence.
type GapError struct {
	Expected int
	Actual   int
	Path     string //offending entry
}

func (e *GapError) Error() string {
	if e.Actual < e.Expected {
		return fmt.Sprintf("duplicate prefix %d at %s (expected %d)", e.Actual, e.Path, e.Expected)
	}
	return fmt.Sprintf("numbering gap at %s: expected prefix %d but found %d", e.Path, e.Expected, e.Actual)
}

// RangeError reports a target index outside [1, Max].
type RangeError struct {
	Index int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Index < 1 {
		return fmt.Sprintf("index %d out of range: must be at least 1", e.Index)
	}
	return fmt.Sprintf("index %d out of range: must be between 1 and %d", e.Index, e.Max)
}

// MoveError reports a rename that failed while a plan was applied.
// The steps in Applied were executed before the failure and are not reverted.
type MoveError struct {
	Failed  Step
	Applied []Step
	Err     error
}

func (e *MoveError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "renaming %s to %s failed: %s", e.Failed.From, e.Failed.To, e.Err)
	if len(e.Applied) > 0 {
		fmt.Fprintf(&msg, " (%d of the planned renames were already applied and remain in place)", len(e.Applied))
	}
	return msg.String()
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
