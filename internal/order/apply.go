package order

import (
	"errors"
	"io/fs"
	"os"
)

// renamePath is replaceable for tests that need a rename to fail midway.
var renamePath = os.Rename

// Apply executes the steps in order. The observer, if any, is called after each successful rename.
// On failure the returned *MoveError lists the steps already applied; they are not reverted.
func (p Plan) Apply(observe func(Step)) error {
	applied := make([]Step, 0, len(p.Steps))
	fail := func(step Step, err error) error {
		return &MoveError{Failed: step, Applied: applied, Err: err}
	}
	for _, step := range p.Steps {
		//os.Rename replaces existing files silently on most platforms
		if _, err := os.Lstat(step.To); err == nil {
			return fail(step, fs.ErrExist)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fail(step, err)
		}
		if err := renamePath(step.From, step.To); err != nil {
			return fail(step, err)
		}
		applied = append(applied, step)
		if observe != nil {
			observe(step)
		}
	}
	return nil
}
