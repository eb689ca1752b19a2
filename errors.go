package multiset

import "errors"

// ErrEmpty is returned by Min and Max on an empty multiset. MustMin and
// MustMax panic with it.
var ErrEmpty = errors.New("multiset is empty")

// ErrCountOverflow is the panic value of InsertN when the total number of
// copies would overflow a uint.
var ErrCountOverflow = errors.New("multiset count overflows uint")

// Invariant violations reported by Validate.
var (
	ErrRootColor    = errors.New("root is not black")
	ErrRedRed       = errors.New("red node has a red parent")
	ErrBlackHeight  = errors.New("unequal black height")
	ErrOrder        = errors.New("values out of order")
	ErrParentLink   = errors.New("parent link does not match child link")
	ErrZeroCount    = errors.New("node with zero count")
	ErrSizeMismatch = errors.New("size does not match sum of counts")
)
