package Trees

import (
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree ordered by position instead of by value. Every node
// stores the size of its left subtree, which makes all positional operations
// O(log n). Nodes live in an arena of fixed capacity and are identified by
// caller-chosen handles; a handle keeps its slot whether it's linked or not.
// S is the type used for handles, positions and links, it must be able to
// hold capacity+1.
// The worst case height of the tree is less than 1.44*log2(n+2).
// Tree isn't safe for concurrent use. Every mutation may rewrite the
// relative positions of arbitrary ancestors, so concurrent callers have to
// serialize all calls, reads included, behind one lock.
type Tree[S constraints.Unsigned] struct {
	base[S]
}

var _ Sequence[uint] = (*Tree[uint])(nil)

// New returns an empty Tree with handles [0, capacity), all unlinked.
func New[S constraints.Unsigned](capacity S) *Tree[S] {
	if capacity == ^S(0) {
		panic(&HandleError{"New", uint64(capacity), "doesn't leave room for the nil slot"})
	}
	ifs := make([]info[S], capacity+1)
	for i := 1; i < len(ifs); i++ {
		ifs[i].rel = absent[S]()
	}
	return &Tree[S]{base[S]{ifs: ifs}}
}

// Identity returns a Tree of capacity n where handle i is linked at position i
// for every i. It's equivalent to calling InsertAt(i, i) for i in [0, n) but
// builds a perfectly split tree directly.
// Time: O(n)
func Identity[S constraints.Unsigned](n S) *Tree[S] {
	t := New(n)
	t.root, t.sz = buildIfs(t.ifs, n), n
	return t
}

func (u *Tree[S]) checkHandle(op string, h S) {
	if h >= u.Cap() {
		panic(&HandleError{op, uint64(h), "is outside the arena"})
	}
}

// Has [Sequence.Has]
// Time: O(1)
func (u *Tree[S]) Has(h S) bool {
	return h < u.Cap() && u.ifs[slot(h)].rel != absent[S]()
}

// insert n into the subtree rooted at curI, whose parent is parI, at position
// pos relative to the subtree. Returns the new root of the subtree.
func (u *Tree[S]) insert(curI, parI, n, pos S) S {
	if curI == 0 {
		nd := &u.ifs[n]
		nd.p, nd.rel, nd.h = parI, 0, 1
		return n
	}
	if cur := &u.ifs[curI]; pos <= cur.rel {
		cur.l = u.insert(cur.l, curI, n, pos)
		cur.rel++
	} else {
		cur.r = u.insert(cur.r, curI, n, pos-cur.rel-1)
	}
	return u.balance(curI)
}

// InsertAt [Sequence.InsertAt]. Recursive.
// Time: O(log n)
func (u *Tree[S]) InsertAt(h, pos S) {
	u.checkHandle("InsertAt", h)
	if u.Has(h) {
		panic(&HandleError{"InsertAt", uint64(h), "is already linked"})
	}
	if pos > u.sz {
		panic(&RangeError{"InsertAt", uint64(pos), uint64(u.sz) + 1})
	}
	u.root = u.insert(u.root, 0, slot(h), pos)
	u.sz++
}

// remove the node at position pos relative to the subtree rooted at curI.
// Returns the new root of the subtree and the slot of the removed node.
func (u *Tree[S]) remove(curI, pos S) (S, S) {
	cur := &u.ifs[curI]
	if pos == cur.rel {
		var rep S
		switch {
		case cur.l == 0:
			rep = cur.r
		case cur.r == 0:
			rep = cur.l
		default:
			// splice in the successor, which is position 0 of the right subtree.
			nr, si := u.remove(cur.r, 0)
			s := &u.ifs[si]
			s.p, s.l, s.r, s.rel = cur.p, cur.l, nr, cur.rel
			u.ifs[s.l].p = si
			if nr != 0 {
				u.ifs[nr].p = si
			}
			rep = u.balance(si)
		}
		if rep != 0 {
			u.ifs[rep].p = cur.p
		}
		*cur = info[S]{rel: absent[S]()}
		return rep, curI
	}
	var rmI S
	if pos < cur.rel {
		cur.l, rmI = u.remove(cur.l, pos)
		cur.rel--
	} else {
		cur.r, rmI = u.remove(cur.r, pos-cur.rel-1)
	}
	return u.balance(curI), rmI
}

// RemoveAt [Sequence.RemoveAt]. Recursive.
// Time: O(log n)
func (u *Tree[S]) RemoveAt(pos S) S {
	if pos >= u.sz {
		panic(&RangeError{"RemoveAt", uint64(pos), uint64(u.sz)})
	}
	root, rmI := u.remove(u.root, pos)
	u.root = root
	u.sz--
	return handle(rmI)
}

// PositionOf [Sequence.PositionOf]
// Time: O(log n); Space: O(1)
func (u *Tree[S]) PositionOf(h S) S {
	u.checkHandle("PositionOf", h)
	if !u.Has(h) {
		panic(&HandleError{"PositionOf", uint64(h), "isn't linked"})
	}
	curI := slot(h)
	pos := u.ifs[curI].rel
	for parI := u.ifs[curI].p; parI != 0; curI, parI = parI, u.ifs[parI].p {
		if par := &u.ifs[parI]; par.r == curI {
			pos += par.rel + 1
		}
	}
	return pos
}

// NodeAt [Sequence.NodeAt]
// Time: O(log n); Space: O(1)
func (u *Tree[S]) NodeAt(pos S) S {
	if pos >= u.sz {
		panic(&RangeError{"NodeAt", uint64(pos), uint64(u.sz)})
	}
	curI := u.root
	for {
		if cur := &u.ifs[curI]; pos < cur.rel {
			curI = cur.l
		} else if pos > cur.rel {
			pos -= cur.rel + 1
			curI = cur.r
		} else {
			return handle(curI)
		}
	}
}
