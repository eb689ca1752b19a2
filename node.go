package multiset

// ref addresses a node slot in the arena. The zero ref is the absent link;
// slot 0 is never handed out.
type ref uint32

const nilRef ref = 0

type color bool

const (
	red   color = false
	black color = true
)

// node holds one distinct value and its multiplicity.
type node[T any] struct {
	value  T
	count  uint // multiplicity, >= 1 while linked
	color  color
	parent ref
	left   ref
	right  ref
}

// side names the child slot of a parent.
type side uint8

const (
	leftSide side = iota
	rightSide
)

func (s side) opposite() side {
	return s ^ 1
}
