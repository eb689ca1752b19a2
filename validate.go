package multiset

import "github.com/pkg/errors"

type validation[T any] struct {
	m     *Multiset[T]
	prev  ref
	sum   uint
	nodes int
}

// Validate walks the whole tree and reports the first broken invariant:
// ordering, root color, red-red adjacency, black height, parent links,
// multiplicities and the size/node bookkeeping. It is O(n) and meant for
// tests and diagnostics.
func (m *Multiset[T]) Validate() error {
	if m.root != nilRef {
		if m.nodes[m.root].parent != nilRef {
			return errors.Wrapf(ErrParentLink, "root %d has parent %d", m.root, m.nodes[m.root].parent)
		}
		if m.nodes[m.root].color != black {
			return errors.Wrapf(ErrRootColor, "root %d", m.root)
		}
	}

	v := &validation[T]{m: m}
	if _, err := v.walk(m.root); err != nil {
		return err
	}

	if v.sum != m.size {
		return errors.Wrapf(ErrSizeMismatch, "size %d, counts sum to %d", m.size, v.sum)
	}
	if v.nodes != m.live {
		return errors.Wrapf(ErrSizeMismatch, "%d live nodes recorded, %d reachable", m.live, v.nodes)
	}
	if slots := len(m.nodes) - 1; m.live+len(m.free) != slots {
		return errors.Wrapf(ErrSizeMismatch, "%d live + %d free != %d slots", m.live, len(m.free), slots)
	}
	return nil
}

// walk visits r in order and returns its black height, nil leaves excluded.
func (v *validation[T]) walk(r ref) (int, error) {
	if r == nilRef {
		return 0, nil
	}
	m := v.m
	n := &m.nodes[r]

	if n.count == 0 {
		return 0, errors.Wrapf(ErrZeroCount, "node %d", r)
	}
	if n.color == red && m.isRed(n.parent) {
		return 0, errors.Wrapf(ErrRedRed, "node %d under %d", r, n.parent)
	}
	for _, c := range [...]ref{n.left, n.right} {
		if c != nilRef && m.nodes[c].parent != r {
			return 0, errors.Wrapf(ErrParentLink, "child %d of %d points at %d", c, r, m.nodes[c].parent)
		}
	}

	lh, err := v.walk(n.left)
	if err != nil {
		return 0, err
	}

	if v.prev != nilRef && !m.less(m.nodes[v.prev].value, n.value) {
		return 0, errors.Wrapf(ErrOrder, "node %d does not follow %d", r, v.prev)
	}
	v.prev = r
	v.sum += n.count
	v.nodes++

	rh, err := v.walk(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Wrapf(ErrBlackHeight, "node %d: left %d, right %d", r, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (m *Multiset[T]) Height() int {
	return m.height(m.root)
}

func (m *Multiset[T]) height(r ref) int {
	if r == nilRef {
		return 0
	}
	return 1 + max(m.height(m.nodes[r].left), m.height(m.nodes[r].right))
}
