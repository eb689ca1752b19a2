package multiset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireValid[T any](t testing.TB, m *Multiset[T]) {
	t.Helper()
	require.NoError(t, m.Validate())
}

// shape renders the tree in pre-order with counts and colors so two trees
// can be compared structurally.
func shape[T any](m *Multiset[T]) string {
	var sb strings.Builder
	var walk func(r ref)
	walk = func(r ref) {
		if r == nilRef {
			sb.WriteString(".")
			return
		}
		n := m.nodes[r]
		c := "R"
		if n.color == black {
			c = "B"
		}
		fmt.Fprintf(&sb, "(%v*%d%s ", n.value, n.count, c)
		walk(n.left)
		sb.WriteString(" ")
		walk(n.right)
		sb.WriteString(")")
	}
	walk(m.root)
	return sb.String()
}

// inorder lists the distinct values from smallest to largest.
func inorder[T any](m *Multiset[T]) []T {
	var out []T
	var walk func(r ref)
	walk = func(r ref) {
		if r == nilRef {
			return
		}
		walk(m.nodes[r].left)
		out = append(out, m.nodes[r].value)
		walk(m.nodes[r].right)
	}
	walk(m.root)
	return out
}

// recordCases captures every fixup case taken for the rest of the test.
func recordCases(t *testing.T) *[]fixupCase {
	t.Helper()
	var seen []fixupCase
	fixupHook = func(c fixupCase) { seen = append(seen, c) }
	t.Cleanup(func() { fixupHook = nil })
	return &seen
}
