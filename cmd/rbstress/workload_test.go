package main

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metailurini/multiset"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunWorkloadDistributions(t *testing.T) {
	for _, d := range []distribution{distUniform, distAscending, distZipf} {
		t.Run(string(d), func(t *testing.T) {
			cfg := workloadConfig{
				ops:           20_000,
				keys:          512,
				dist:          d,
				erasePercent:  45,
				maxCount:      3,
				seed:          5,
				validateEvery: 1000,
			}
			g := &guarded{m: multiset.NewOrdered[int]()}

			rep, err := runWorkload(context.Background(), cfg, g, quietLogger())
			require.NoError(t, err)

			assert.Equal(t, cfg.ops, rep.inserts+rep.erases)
			assert.Equal(t, 21, rep.validations)
			assert.Equal(t, uint64(g.m.Size()), rep.stats.Size)
			assert.LessOrEqual(t, rep.height, 2*10)
		})
	}
}

func TestRunWorkloadStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := workloadConfig{ops: 10_000, keys: 64, dist: distUniform, seed: 1}
	g := &guarded{m: multiset.NewOrdered[int]()}
	rep, err := runWorkload(ctx, cfg, g, quietLogger())
	require.NoError(t, err)
	require.Less(t, rep.inserts+rep.erases, cfg.ops)
	require.Equal(t, 1, rep.validations)
}

func TestRunWorkloadRejectsEmptyKeySpace(t *testing.T) {
	_, err := runWorkload(context.Background(), workloadConfig{ops: 1}, &guarded{m: multiset.NewOrdered[int]()}, quietLogger())
	require.Error(t, err)
}

func TestParseDistribution(t *testing.T) {
	d, err := parseDistribution("zipf")
	require.NoError(t, err)
	require.Equal(t, distZipf, d)

	_, err = parseDistribution("gaussian")
	require.Error(t, err)
}

func TestRunWorkloadRejectsHugeMaxCount(t *testing.T) {
	cfg := workloadConfig{ops: 1, keys: 8, dist: distUniform, maxCount: ^uint(0)}
	g := &guarded{m: multiset.NewOrdered[int]()}
	require.NotPanics(t, func() {
		_, err := runWorkload(context.Background(), cfg, g, quietLogger())
		require.Error(t, err)
	})
	require.True(t, g.m.Empty())
}

func TestZipfSingleKeyStaysInRange(t *testing.T) {
	cfg := workloadConfig{ops: 500, keys: 1, dist: distZipf, maxCount: 2, seed: 3}
	g := &guarded{m: multiset.NewOrdered[int]()}

	_, err := runWorkload(context.Background(), cfg, g, quietLogger())
	require.NoError(t, err)
	if !g.m.Empty() {
		assert.Equal(t, 0, g.m.MustMin())
		assert.Equal(t, 0, g.m.MustMax())
	}
}
