package multiset

import (
	"cmp"

	"github.com/sirupsen/logrus"
)

// Less reports whether a orders strictly before b. It must be a strict weak
// order; two values are equal when neither is less than the other.
type Less[T any] func(a, b T) bool

// Multiset is a counted multiset ordered by a Less function and backed by a
// red-black tree. Equal values share one node and a multiplicity.
//
// A Multiset is not safe for concurrent use. Callers sharing one must
// serialize every operation, reads included.
type Multiset[T any] struct {
	less Less[T]
	root ref
	size uint
	live int

	// nodes is the slot arena; nodes[nilRef] is reserved.
	nodes []node[T]
	free  []ref

	log     *logrus.Logger
	metrics Metrics
}

// New returns an empty Multiset ordered by less.
func New[T any](less Less[T], opts ...Option) *Multiset[T] {
	if less == nil {
		panic("multiset: nil Less")
	}
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	return &Multiset[T]{
		less:    less,
		nodes:   newArena[T](cfg.Capacity),
		log:     cfg.Logger,
		metrics: newMetrics(cfg.CountCases),
	}
}

// NewOrdered returns an empty Multiset using the natural order of T.
func NewOrdered[T cmp.Ordered](opts ...Option) *Multiset[T] {
	return New[T](cmp.Less[T], opts...)
}

// Comparer is implemented by types that order themselves, such as
// time.Time. Compare returns a negative number when the receiver orders
// first, zero when equal and a positive number otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// NewCompared returns an empty Multiset ordered by T's Compare method.
func NewCompared[T Comparer[T]](opts ...Option) *Multiset[T] {
	return New[T](func(a, b T) bool { return a.Compare(b) < 0 }, opts...)
}

// Insert adds one copy of value.
func (m *Multiset[T]) Insert(value T) {
	m.InsertN(value, 1)
}

// InsertN adds n copies of value. Inserting zero copies does nothing.
// InsertN panics with ErrCountOverflow, leaving the multiset unchanged, when
// the total number of copies would no longer fit in a uint.
func (m *Multiset[T]) InsertN(value T, n uint) {
	if n == 0 {
		return
	}
	u := mutatorImpl[T]{m: m}
	u.insert(value, n)
}

// Erase removes one copy of value and reports how many copies were removed.
func (m *Multiset[T]) Erase(value T) uint {
	return m.EraseN(value, 1)
}

// EraseN removes up to n copies of value. The node holding value is
// dropped once its count reaches zero. It returns the number of copies
// actually removed, which is zero when value is absent.
func (m *Multiset[T]) EraseN(value T, n uint) uint {
	if n == 0 {
		return 0
	}
	u := mutatorImpl[T]{m: m}
	return u.erase(value, n)
}

// EraseAll removes every copy of value and returns how many there were.
func (m *Multiset[T]) EraseAll(value T) uint {
	u := mutatorImpl[T]{m: m}
	return u.erase(value, ^uint(0))
}

// Contains reports whether at least one copy of value is present.
func (m *Multiset[T]) Contains(value T) bool {
	n, _, _ := m.find(value)
	return n != nilRef
}

// Count returns the multiplicity of value, zero if absent.
func (m *Multiset[T]) Count(value T) uint {
	n, _, _ := m.find(value)
	if n == nilRef {
		return 0
	}
	return m.nodes[n].count
}

// Min returns the smallest value, or ErrEmpty.
func (m *Multiset[T]) Min() (T, error) {
	if m.root == nilRef {
		var zero T
		return zero, ErrEmpty
	}
	return m.nodes[m.minChild(m.root)].value, nil
}

// Max returns the largest value, or ErrEmpty.
func (m *Multiset[T]) Max() (T, error) {
	if m.root == nilRef {
		var zero T
		return zero, ErrEmpty
	}
	return m.nodes[m.maxChild(m.root)].value, nil
}

// MustMin is like Min but panics with ErrEmpty on an empty multiset.
func (m *Multiset[T]) MustMin() T {
	return m.nodes[m.minChild(m.root)].value
}

// MustMax is like Max but panics with ErrEmpty on an empty multiset.
func (m *Multiset[T]) MustMax() T {
	return m.nodes[m.maxChild(m.root)].value
}

// Size returns the total number of copies held.
func (m *Multiset[T]) Size() uint {
	return m.size
}

// Len returns the number of distinct values held.
func (m *Multiset[T]) Len() int {
	return m.live
}

// Empty reports whether the multiset holds nothing.
func (m *Multiset[T]) Empty() bool {
	return m.root == nilRef
}

// Clear removes every value. Released slots are kept for reuse.
func (m *Multiset[T]) Clear() {
	released := m.releaseSubtree(m.root)
	if m.log.IsLevelEnabled(logrus.DebugLevel) {
		m.log.WithFields(logrus.Fields{
			"op": "clear", "nodes": released, "size": m.size,
		}).Debug("released tree")
	}
	m.root = nilRef
	m.size = 0
}
