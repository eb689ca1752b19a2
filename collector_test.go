package multiset

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorExportsStats(t *testing.T) {
	m := NewOrdered[int]()
	m.InsertN(1, 2)
	m.Insert(2)
	m.Insert(3)
	m.Erase(9)

	c := NewCollector("app", m)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	require.Contains(t, names, "app_multiset_size")
	require.Contains(t, names, "app_multiset_rotations_total")
	require.Contains(t, names, "app_multiset_fixup_cases_total")

	expected := `
# HELP app_multiset_size Total number of copies held.
# TYPE app_multiset_size gauge
app_multiset_size 4
# HELP app_multiset_nodes Number of distinct values held.
# TYPE app_multiset_nodes gauge
app_multiset_nodes 3
# HELP app_multiset_rotations_total Tree rotations performed.
# TYPE app_multiset_rotations_total counter
app_multiset_rotations_total{direction="left"} 1
app_multiset_rotations_total{direction="right"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"app_multiset_size", "app_multiset_nodes", "app_multiset_rotations_total"))

	require.Equal(t, int(numFixupCases), testutil.CollectAndCount(c, "app_multiset_fixup_cases_total"))
}

func TestCollectorWithoutCaseCounting(t *testing.T) {
	m := NewOrdered[int](WithMetrics(false))
	for i := 0; i < 10; i++ {
		m.Insert(i)
	}
	require.Nil(t, m.Stats().FixupCases)

	c := NewCollector("", m)
	require.Equal(t, 0, testutil.CollectAndCount(c, "multiset_fixup_cases_total"))
	require.Equal(t, 1, testutil.CollectAndCount(c, "multiset_size"))
	require.Positive(t, m.Stats().RotationsLeft)
}
