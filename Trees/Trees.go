package Trees

import "golang.org/x/exp/constraints"

// Sequence is an ordered list of handles addressed by position. Handles are
// stable integer identities in [0, Cap()) chosen by the caller; positions are
// 0-based in-order ranks among the handles currently linked.
// Methods with preconditions panic with *RangeError or *HandleError when they
// are violated. Such a panic is a bug in the caller, not a runtime condition
// to be handled, but the value can be inspected with errors.As after recover.
// Unless noted otherwise methods are iterative.
type Sequence[S constraints.Unsigned] interface {
	//InsertAt links the unlinked handle h at position pos, shifting the
	//handles at positions >= pos up by one.
	//0<=pos<=Size().
	InsertAt(h, pos S)
	//RemoveAt unlinks the handle at pos and returns it, shifting the handles
	//at positions > pos down by one. The handle can be inserted again later.
	//0<=pos<Size().
	RemoveAt(pos S) S
	//PositionOf the linked handle h.
	PositionOf(h S) S
	//NodeAt returns the handle at pos.
	//0<=pos<Size().
	NodeAt(pos S) S
	//Has reports whether h is linked.
	Has(h S) bool
	//Size is the number of linked handles.
	Size() S
	//Cap is the number of handles, linked or not.
	Cap() S
	//InOrder calls f on the linked handles in position order until f
	//returns false. st is a reusable traversal buffer and may be nil.
	//The sequence must not be modified during the traversal.
	InOrder(f func(S) bool, st []S) []S
	//Corrupt returns whether the structure violates its invariants. This is
	//a full verification meant for tests.
	Corrupt() bool
}
