package Trees

import "fmt"

// RangeError is the panic value when a position is outside the valid range
// of an operation.
type RangeError struct {
	Op       string
	Pos, Len uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: position %d out of range [0, %d)", e.Op, e.Pos, e.Len)
}

// HandleError is the panic value when a handle is outside the arena or in
// the wrong state for an operation.
type HandleError struct {
	Op     string
	Handle uint64
	Reason string
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("%s: handle %d %s", e.Op, e.Handle, e.Reason)
}
