package multiset

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

type oracleEntry struct {
	value int
	count uint
}

// oracle is a reference counted multiset on top of google/btree.
type oracle struct {
	t    *btree.BTreeG[oracleEntry]
	size uint
}

func newOracle() *oracle {
	return &oracle{t: btree.NewG[oracleEntry](8, func(a, b oracleEntry) bool { return a.value < b.value })}
}

func (o *oracle) insert(v int, n uint) {
	if n == 0 {
		return
	}
	e, _ := o.t.Get(oracleEntry{value: v})
	o.t.ReplaceOrInsert(oracleEntry{value: v, count: e.count + n})
	o.size += n
}

func (o *oracle) erase(v int, n uint) uint {
	e, ok := o.t.Get(oracleEntry{value: v})
	if !ok || n == 0 {
		return 0
	}
	if e.count > n {
		o.t.ReplaceOrInsert(oracleEntry{value: v, count: e.count - n})
		o.size -= n
		return n
	}
	o.t.Delete(e)
	o.size -= e.count
	return e.count
}

func (o *oracle) count(v int) uint {
	e, _ := o.t.Get(oracleEntry{value: v})
	return e.count
}

func requireMatchesOracle(t *testing.T, m *Multiset[int], o *oracle) {
	t.Helper()
	require.Equal(t, o.size, m.Size())
	require.Equal(t, o.t.Len(), m.Len())

	lo, ok := o.t.Min()
	got, err := m.Min()
	if !ok {
		require.ErrorIs(t, err, ErrEmpty)
		require.True(t, m.Empty())
		return
	}
	require.NoError(t, err)
	require.Equal(t, lo.value, got)

	hi, _ := o.t.Max()
	got, err = m.Max()
	require.NoError(t, err)
	require.Equal(t, hi.value, got)
}

func TestMatchesBTreeOracle(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		r := rand.New(rand.NewSource(seed))
		m := NewOrdered[int]()
		o := newOracle()

		for i := 0; i < 5000; i++ {
			v := r.Intn(300)
			n := uint(r.Intn(4))
			switch r.Intn(5) {
			case 0, 1:
				m.InsertN(v, n)
				o.insert(v, n)
			case 2, 3:
				require.Equal(t, o.erase(v, n), m.EraseN(v, n))
			case 4:
				e, _ := o.t.Get(oracleEntry{value: v})
				require.Equal(t, e.count, m.EraseAll(v))
				o.erase(v, e.count)
			}
			require.Equal(t, o.count(v), m.Count(v))
			require.Equal(t, o.count(v) > 0, m.Contains(v))
			if i%50 == 0 {
				requireValid(t, m)
				requireMatchesOracle(t, m, o)
			}
		}

		requireValid(t, m)
		requireMatchesOracle(t, m, o)

		var total uint
		values := inorder(m)
		i := 0
		o.t.Ascend(func(e oracleEntry) bool {
			require.Equal(t, e.value, values[i])
			require.Equal(t, e.count, m.Count(e.value))
			total += e.count
			i++
			return true
		})
		require.Equal(t, len(values), i)
		require.Equal(t, total, m.Size())
	}
}
