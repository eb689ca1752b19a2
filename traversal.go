package multiset

// find walks from the root toward value. It returns the node holding an
// equal value, or nilRef together with the parent and side of the empty slot
// where value would be linked.
func (m *Multiset[T]) find(value T) (n, parent ref, s side) {
	n = m.root
	for n != nilRef {
		cur := &m.nodes[n]
		switch {
		case m.less(value, cur.value):
			parent, s, n = n, leftSide, cur.left
		case m.less(cur.value, value):
			parent, s, n = n, rightSide, cur.right
		default:
			return n, cur.parent, m.sideOf(n)
		}
	}
	return nilRef, parent, s
}

// minChild returns the leftmost node of the subtree rooted at r.
func (m *Multiset[T]) minChild(r ref) ref {
	if r == nilRef {
		panic(ErrEmpty)
	}
	for m.nodes[r].left != nilRef {
		r = m.nodes[r].left
	}
	return r
}

// maxChild returns the rightmost node of the subtree rooted at r.
func (m *Multiset[T]) maxChild(r ref) ref {
	if r == nilRef {
		panic(ErrEmpty)
	}
	for m.nodes[r].right != nilRef {
		r = m.nodes[r].right
	}
	return r
}

func (m *Multiset[T]) colorOf(r ref) color {
	if r == nilRef {
		return black
	}
	return m.nodes[r].color
}

func (m *Multiset[T]) isRed(r ref) bool {
	return m.colorOf(r) == red
}

func (m *Multiset[T]) child(r ref, s side) ref {
	if s == leftSide {
		return m.nodes[r].left
	}
	return m.nodes[r].right
}

func (m *Multiset[T]) setChild(r ref, s side, c ref) {
	if s == leftSide {
		m.nodes[r].left = c
	} else {
		m.nodes[r].right = c
	}
	if c != nilRef {
		m.nodes[c].parent = r
	}
}

// sideOf reports which child slot of its parent r occupies. The root reports
// leftSide; callers check for the root first.
func (m *Multiset[T]) sideOf(r ref) side {
	p := m.nodes[r].parent
	if p != nilRef && m.nodes[p].right == r {
		return rightSide
	}
	return leftSide
}
