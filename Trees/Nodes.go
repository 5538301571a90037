package Trees

import "golang.org/x/exp/constraints"

// A node record in the arena of a Tree.
// The zero value is the nil loopback: height 0 and no links. Slot 0 of the
// arena always holds it, so reading an absent child yields height 0.
type info[S constraints.Unsigned] struct {
	p, l, r S // parent, left and right child; 0 is nil.
	rel     S // number of nodes in the left subtree, or absent when the node isn't linked.
	h       uint8
}

// absent marks info.rel of a node that isn't linked into the tree.
func absent[S constraints.Unsigned]() S {
	return ^S(0)
}

// slot of handle h in the arena. Handles start at 0, slots at 1.
func slot[S constraints.Unsigned](h S) S {
	return h + 1
}

// handle stored in slot i.
func handle[S constraints.Unsigned](i S) S {
	return i - 1
}
