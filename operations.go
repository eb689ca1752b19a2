package multiset

import "github.com/sirupsen/logrus"

// mutatorImpl groups the mutating algorithms.
type mutatorImpl[T any] struct {
	m *Multiset[T]
}

// insert adds n copies of value, linking a new red node when value is not
// yet present.
func (u *mutatorImpl[T]) insert(value T, n uint) {
	m := u.m
	// Every count is bounded by size, so guarding size covers both.
	if m.size > ^uint(0)-n {
		panic(ErrCountOverflow)
	}
	found, parent, s := m.find(value)
	if found != nilRef {
		m.nodes[found].count += n
		m.size += n
		return
	}

	x := m.acquireNode(value, n, parent)
	if parent == nilRef {
		m.root = x
	} else {
		m.setChild(parent, s, x)
	}
	m.size += n

	if m.log.IsLevelEnabled(logrus.DebugLevel) {
		m.log.WithFields(logrus.Fields{
			"op": "insert", "slot": x, "parent": parent, "count": n,
		}).Debug("linked node")
	}

	u.insertFixup(x)
}

// insertFixup restores the red-black properties after x was linked red.
func (u *mutatorImpl[T]) insertFixup(x ref) {
	m := u.m
	for {
		p := m.nodes[x].parent
		if p == nilRef {
			m.nodes[x].color = black
			m.metrics.observe(insertRoot)
			return
		}
		if m.nodes[p].color == black {
			m.metrics.observe(insertParentBlack)
			return
		}

		// A red parent is never the root, so the grandparent exists.
		g := m.nodes[p].parent
		ps := m.sideOf(p)
		uncle := m.child(g, ps.opposite())

		if m.isRed(uncle) {
			m.nodes[p].color = black
			m.nodes[uncle].color = black
			m.nodes[g].color = red
			m.metrics.observe(insertUncleRed)
			x = g
			continue
		}

		xs := m.sideOf(x)
		top := p
		switch {
		case ps == leftSide && xs == leftSide:
			m.metrics.observe(insertOuterLeft)
			m.rotateRight(g)
		case ps == rightSide && xs == rightSide:
			m.metrics.observe(insertOuterRight)
			m.rotateLeft(g)
		case ps == leftSide && xs == rightSide:
			m.metrics.observe(insertInnerLeft)
			m.rotateLeft(p)
			m.rotateRight(g)
			top = x
		default:
			m.metrics.observe(insertInnerRight)
			m.rotateRight(p)
			m.rotateLeft(g)
			top = x
		}
		m.nodes[top].color = black
		m.nodes[g].color = red
		return
	}
}

// erase removes up to n copies of value and returns how many were removed.
func (u *mutatorImpl[T]) erase(value T, n uint) uint {
	m := u.m
	target, _, _ := m.find(value)
	if target == nilRef {
		return 0
	}

	if c := m.nodes[target].count; c > n {
		m.nodes[target].count = c - n
		m.size -= n
		return n
	}

	removed := m.nodes[target].count
	m.size -= removed
	u.removeNode(target)

	if m.log.IsLevelEnabled(logrus.DebugLevel) {
		m.log.WithFields(logrus.Fields{
			"op": "erase", "count": removed, "nodes": m.live,
		}).Debug("removed node")
	}
	return removed
}

// removeNode physically unlinks the node holding target's value.
func (u *mutatorImpl[T]) removeNode(target ref) {
	m := u.m
	spliced := target
	if m.nodes[target].left != nilRef && m.nodes[target].right != nilRef {
		// The successor has no left child; move its payload up and splice it
		// out instead.
		succ := m.minChild(m.nodes[target].right)
		m.nodes[target].value = m.nodes[succ].value
		m.nodes[target].count = m.nodes[succ].count
		spliced = succ
	}
	u.splice(spliced)
}

// splice unlinks r, which has at most one child, and rebalances.
func (u *mutatorImpl[T]) splice(r ref) {
	m := u.m
	c := m.nodes[r].left
	if c == nilRef {
		c = m.nodes[r].right
	}
	parent := m.nodes[r].parent
	wasBlack := m.nodes[r].color == black

	m.replaceChild(parent, r, c)
	m.releaseNode(r)

	switch {
	case !wasBlack:
		// A red node carries no black height; nothing to repair.
	case c != nilRef:
		// A black node with one child: that child must be red and absorbs
		// the lost black.
		m.nodes[c].color = black
		m.metrics.observe(eraseRedChild)
	default:
		u.eraseFixup(nilRef, parent)
	}
}

// eraseFixup resolves a double-black deficiency at x, a black or absent child
// of parent. A red node never carries the deficiency: splice recolors a red
// replacement child directly and the red-parent case ends the loop.
func (u *mutatorImpl[T]) eraseFixup(x, parent ref) {
	m := u.m
	for {
		if parent == nilRef {
			// x is the root; the deficiency is shared by every path.
			if x != nilRef {
				m.nodes[x].color = black
			}
			m.metrics.observe(eraseReachRoot)
			return
		}
		// Sidedness comes from the parent's links because x may be absent.
		xs := leftSide
		if m.nodes[parent].left != x {
			xs = rightSide
		}
		far := xs.opposite()
		sib := m.child(parent, far)

		if m.isRed(sib) {
			m.nodes[sib].color = black
			m.nodes[parent].color = red
			m.rotate(parent, xs)
			m.metrics.observe(eraseSiblingRed)
			sib = m.child(parent, far)
		}

		// The deficient side had black height >= 1 before the removal, so a
		// black sibling exists here.
		nearNephew := m.child(sib, xs)
		farNephew := m.child(sib, far)

		if m.isRed(farNephew) || m.isRed(nearNephew) {
			if !m.isRed(farNephew) {
				m.nodes[nearNephew].color = black
				m.nodes[sib].color = red
				m.rotate(sib, far)
				m.metrics.observe(eraseNearNephewRed)
				sib = m.child(parent, far)
				farNephew = m.child(sib, far)
			} else {
				m.metrics.observe(eraseFarNephewRed)
			}
			m.nodes[sib].color = m.nodes[parent].color
			m.nodes[parent].color = black
			m.nodes[farNephew].color = black
			m.rotate(parent, xs)
			return
		}

		m.nodes[sib].color = red
		if m.nodes[parent].color == red {
			m.nodes[parent].color = black
			m.metrics.observe(eraseParentRed)
			return
		}
		m.metrics.observe(erasePropagate)
		x = parent
		parent = m.nodes[x].parent
	}
}
