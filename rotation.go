package multiset

// replaceChild puts c where old hangs below parent, or at the root when
// parent is absent. c's parent link is updated; old's is left as is.
func (m *Multiset[T]) replaceChild(parent, old, c ref) {
	switch {
	case parent == nilRef:
		m.root = c
		if c != nilRef {
			m.nodes[c].parent = nilRef
		}
	case m.nodes[parent].left == old:
		m.setChild(parent, leftSide, c)
	default:
		m.setChild(parent, rightSide, c)
	}
}

// rotate moves x one level down toward s. The child of x on the opposite side
// takes x's place, and that child's inner subtree moves under x.
//
//	rotate(x, leftSide):       x            y
//	                          / \          / \
//	                         a   y   =>   x   c
//	                            / \      / \
//	                           b   c    a   b
func (m *Multiset[T]) rotate(x ref, s side) {
	o := s.opposite()
	y := m.child(x, o)
	if y == nilRef {
		panic("multiset: rotation without a promotable child")
	}

	m.setChild(x, o, m.child(y, s))
	m.replaceChild(m.nodes[x].parent, x, y)
	m.setChild(y, s, x)

	if s == leftSide {
		m.metrics.rotationsLeft++
	} else {
		m.metrics.rotationsRight++
	}
	if rotateHook != nil {
		rotateHook(x, s)
	}
}

// rotateLeft promotes the right child of x into x's position.
func (m *Multiset[T]) rotateLeft(x ref) {
	m.rotate(x, leftSide)
}

// rotateRight promotes the left child of x into x's position.
func (m *Multiset[T]) rotateRight(x ref) {
	m.rotate(x, rightSide)
}
