package filemodel

import "errors"

// Stable results of the editing operations, undo and redo. A nil error means
// success.
var (
	// ErrReadOnly is returned by mutating calls on a model opened read-only.
	ErrReadOnly = errors.New("ErrorReadOnly: model is read-only")

	// ErrBlockDevice is returned by Add and Remove on a block device; block
	// devices cannot grow or shrink, only Modify is permitted.
	ErrBlockDevice = errors.New("ErrorBlockDevice: cannot resize a block device")

	// ErrInvalidOperation is returned when an offset or range falls outside
	// the current length.
	ErrInvalidOperation = errors.New("InvalidOperation: offset out of range")

	// ErrChangeBiggerMaxMemoryUsed is returned when a single operation is
	// larger than the absolute memory cap.
	ErrChangeBiggerMaxMemoryUsed = errors.New(
		"ChangeBiggerMaxMemoryUsed: change exceeds the memory cap")

	// ErrNoMemory completes the result-code set for allocation failure. No
	// operation of this package returns it: Go allocations do not fail
	// recoverably.
	ErrNoMemory = errors.New("NoMemory: allocation failed")

	// ErrNeedSave is returned when the accumulated writable blocks would
	// exceed the memory cap. Save the model and retry.
	ErrNeedSave = errors.New("ErrorNeedSave: memory cap reached, save and retry")

	// ErrUndoDisabled is returned by Undo and Redo when the model was
	// created without undo support.
	ErrUndoDisabled = errors.New("ErrorUndoDisabled: undo is disabled")

	// ErrNoMoreChanges is returned by Undo and Redo when the journal cursor
	// cannot move any further.
	ErrNoMoreChanges = errors.New("NoMoreChanges: no more changes")
)

// Direction selects where Find scans.
type Direction int

const (
	// Forward finds the first match at or after the given offset.
	Forward Direction = iota

	// Backward finds the last match starting at or before the given offset.
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}
