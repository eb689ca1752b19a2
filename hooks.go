package multiset

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They must not mutate the tree.
var (
	// rotateHook is invoked after every rotation with the node that moved down.
	rotateHook func(pivot ref, s side)

	// fixupHook is invoked once per case taken by either fixup loop.
	fixupHook func(c fixupCase)
)
