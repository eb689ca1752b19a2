package multiset

import "math"

// acquireNode hands out a slot for a fresh red node, reusing released slots
// before growing the arena. Pointers into m.nodes are invalid after a call.
func (m *Multiset[T]) acquireNode(value T, count uint, parent ref) ref {
	var r ref
	if n := len(m.free); n > 0 {
		r = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		if uint64(len(m.nodes)) > math.MaxUint32 {
			panic("multiset: node arena exhausted")
		}
		r = ref(len(m.nodes))
		m.nodes = append(m.nodes, node[T]{})
	}

	m.nodes[r] = node[T]{
		value:  value,
		count:  count,
		color:  red,
		parent: parent,
	}
	m.live++
	m.metrics.nodesAllocated++
	return r
}

// releaseNode returns a slot to the freelist. The value is zeroed so the
// arena does not pin memory the caller has let go of.
func (m *Multiset[T]) releaseNode(r ref) {
	if r == nilRef {
		panic("multiset: release of the absent slot")
	}
	m.nodes[r] = node[T]{}
	m.free = append(m.free, r)
	m.live--
	m.metrics.nodesReleased++
}

// releaseSubtree frees r and everything below it in post-order. Recursion
// depth is bounded by the tree height.
func (m *Multiset[T]) releaseSubtree(r ref) int {
	if r == nilRef {
		return 0
	}
	n := m.releaseSubtree(m.nodes[r].left)
	n += m.releaseSubtree(m.nodes[r].right)
	m.releaseNode(r)
	return n + 1
}

// newArena allocates the slot array with room for capacity nodes plus the
// reserved absent slot.
func newArena[T any](capacity int) []node[T] {
	if capacity < 0 {
		capacity = 0
	}
	nodes := make([]node[T], 1, capacity+1)
	nodes[nilRef].color = black
	return nodes
}
