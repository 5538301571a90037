package Trees

import (
	"github.com/g-m-twostay/go-ostree/Queues"
	"golang.org/x/exp/constraints"
	"math/bits"
)

type base[S constraints.Unsigned] struct {
	root, sz S         // sz is the number of linked nodes.
	ifs      []info[S] // ifs[0] is the nil loopback. len(ifs)=capacity+1 and never changes.
}

func (u *base[S]) fixHeight(i S) {
	n := &u.ifs[i]
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
}

// balanceFactor of i, height(right)-height(left).
func (u *base[S]) balanceFactor(i S) int {
	n := &u.ifs[i]
	return int(u.ifs[n.r].h) - int(u.ifs[n.l].h)
}

// rotateLeft promotes the right child of ni and returns it. The promoted node
// gains ni and ni's left subtree on its left.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(ni S) S {
	n := &u.ifs[ni]
	rci := n.r
	rc := &u.ifs[rci]

	if n.r = rc.l; n.r != 0 {
		u.ifs[n.r].p = ni
	}
	rc.l, rc.p, n.p = ni, n.p, rci
	rc.rel += n.rel + 1
	u.fixHeight(ni)
	u.fixHeight(rci)
	return rci
}

// rotateRight promotes the left child of ni and returns it. ni loses the
// promoted node and its left subtree from its left.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(ni S) S {
	n := &u.ifs[ni]
	lci := n.l
	lc := &u.ifs[lci]

	if n.l = lc.r; n.l != 0 {
		u.ifs[n.l].p = ni
	}
	lc.r, lc.p, n.p = ni, n.p, lci
	n.rel -= lc.rel + 1
	u.fixHeight(ni)
	u.fixHeight(lci)
	return lci
}

// balance restores the AVL property at i, assuming both subtrees of i are
// balanced and differ in height by at most 2. Returns the root of the subtree.
func (u *base[S]) balance(i S) S {
	n := &u.ifs[i]
	switch bf := u.balanceFactor(i); {
	case bf <= -2:
		if u.balanceFactor(n.l) > 0 {
			n.l = u.rotateLeft(n.l)
		}
		return u.rotateRight(i)
	case bf >= 2:
		if u.balanceFactor(n.r) < 0 {
			n.r = u.rotateRight(n.r)
		}
		return u.rotateLeft(i)
	default:
		u.fixHeight(i)
		return i
	}
}

// Size returns the number of linked handles.
func (u *base[S]) Size() S {
	return u.sz
}

// Cap returns the number of handles the arena holds, linked or not.
func (u *base[S]) Cap() S {
	return S(len(u.ifs) - 1)
}

// Height of the tree; 0 when empty.
func (u *base[S]) Height() uint8 {
	return u.ifs[u.root].h
}

// InOrder calls f on every linked handle in position order until f returns false.
// st is used as the traversal stack and returned for reuse; it may be nil.
func (u *base[S]) InOrder(f func(S) bool, st []S) []S {
	st = st[:0]
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(handle(curI)) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Corrupt reports whether any structural invariant is broken: parent links,
// stored heights, AVL balance, relative positions, the linked count, or the
// reset state of unlinked slots. It recomputes everything from the links.
// Time: O(capacity); Space: O(capacity)
func (u *base[S]) Corrupt() bool {
	if u.ifs[0] != (info[S]{}) {
		return true
	}
	if u.root == 0 {
		return u.sz != 0 || u.unlinkedCorrupt(nil)
	}
	if u.ifs[u.root].p != 0 {
		return true
	}
	seen := make([]bool, len(u.ifs))
	order := make([]S, 0, u.sz)
	q := Queues.MakeArrayQueue[S](uint(u.sz) | 1)
	q.Push(u.root)
	seen[u.root] = true
	for !q.Empty() {
		curI, _ := q.Pop()
		order = append(order, curI)
		for _, c := range [2]S{u.ifs[curI].l, u.ifs[curI].r} {
			if c == 0 {
				continue
			}
			if seen[c] || u.ifs[c].p != curI {
				return true
			}
			seen[c] = true
			q.Push(c)
		}
	}
	if S(len(order)) != u.sz {
		return true
	}
	sizes := make([]S, len(u.ifs))
	for i := len(order) - 1; i > -1; i-- {
		curI := order[i]
		n := u.ifs[curI]
		if n.rel != sizes[n.l] {
			return true
		}
		if n.h != max(u.ifs[n.l].h, u.ifs[n.r].h)+1 {
			return true
		}
		if bf := u.balanceFactor(curI); bf < -1 || bf > 1 {
			return true
		}
		sizes[curI] = sizes[n.l] + sizes[n.r] + 1
	}
	return u.unlinkedCorrupt(seen)
}

// unlinkedCorrupt checks that every slot not in seen is in the reset state.
func (u *base[S]) unlinkedCorrupt(seen []bool) bool {
	for i := 1; i < len(u.ifs); i++ {
		if seen != nil && seen[i] {
			continue
		}
		if u.ifs[i] != (info[S]{rel: absent[S]()}) {
			return true
		}
	}
	return false
}

// mid is equivalent to (a+b)/2 for a<=b but doesn't overflow.
func mid[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

// buildIfs links slots [1, n] of ifs into a perfectly split tree whose
// in-order sequence is 1..n, and returns its root. Each subtree of size m
// has height bits.Len(m), so the result is AVL balanced.
// Time: O(n); Space: O(log n)
func buildIfs[S constraints.Unsigned](ifs []info[S], n S) (root S) {
	if n == 0 {
		return 0
	}
	st := make([][4]S, 0, bits.Len64(uint64(n))+1) //[left,right,mid,parent]
	root = mid(1, n)
	st = append(st, [4]S{1, n, root, 0})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		cur := &ifs[top[2]]
		cur.p, cur.rel, cur.h = top[3], top[2]-top[0], uint8(bits.Len64(uint64(top[1]-top[0]+1)))
		cur.l, cur.r = 0, 0
		if top[0] < top[2] {
			cur.l = mid(top[0], top[2]-1)
			st = append(st, [4]S{top[0], top[2] - 1, cur.l, top[2]})
		}
		if top[2] < top[1] {
			cur.r = mid(top[2]+1, top[1])
			st = append(st, [4]S{top[2] + 1, top[1], cur.r, top[2]})
		}
	}
	return
}
