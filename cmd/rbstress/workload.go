package main

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metailurini/multiset"
)

type distribution string

const (
	distUniform   distribution = "uniform"
	distAscending distribution = "ascending"
	distZipf      distribution = "zipf"
)

func parseDistribution(s string) (distribution, error) {
	switch d := distribution(s); d {
	case distUniform, distAscending, distZipf:
		return d, nil
	default:
		return "", errors.Errorf("unknown distribution %q", s)
	}
}

type workloadConfig struct {
	ops           int
	keys          int
	dist          distribution
	erasePercent  int
	maxCount      uint
	seed          int64
	validateEvery int
}

type report struct {
	inserts     int
	erases      int
	removed     uint
	validations int
	stats       multiset.Stats
	height      int
}

// guarded serializes access to a multiset so a metrics scrape can run while
// the workload mutates it.
type guarded struct {
	mu sync.Mutex
	m  *multiset.Multiset[int]
}

func (g *guarded) Stats() multiset.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.Stats()
}

func (g *guarded) do(fn func(m *multiset.Multiset[int])) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.m)
}

type keyGen struct {
	dist distribution
	keys int
	r    *rand.Rand
	zipf *rand.Zipf
	next int
}

func newKeyGen(cfg workloadConfig, r *rand.Rand) *keyGen {
	kg := &keyGen{dist: cfg.dist, keys: cfg.keys, r: r}
	switch {
	case cfg.dist != distZipf:
	case cfg.keys == 1:
		// Zipf needs at least two keys; a single key is trivially uniform.
		kg.dist = distUniform
	default:
		kg.zipf = rand.NewZipf(r, 1.2, 1, uint64(cfg.keys-1))
	}
	return kg
}

func (kg *keyGen) key() int {
	switch kg.dist {
	case distAscending:
		k := kg.next % kg.keys
		kg.next++
		return k
	case distZipf:
		return int(kg.zipf.Uint64())
	default:
		return kg.r.Intn(kg.keys)
	}
}

// runWorkload applies cfg.ops random inserts and erases to g and validates
// the tree every cfg.validateEvery operations and once at the end.
func runWorkload(ctx context.Context, cfg workloadConfig, g *guarded, log *logrus.Logger) (report, error) {
	var rep report
	if cfg.keys <= 0 {
		return rep, errors.New("keys must be positive")
	}
	if cfg.maxCount == 0 {
		cfg.maxCount = 1
	}
	if cfg.maxCount > math.MaxInt32 {
		return rep, errors.Errorf("max count %d exceeds %d", cfg.maxCount, math.MaxInt32)
	}

	r := rand.New(rand.NewSource(cfg.seed))
	kg := newKeyGen(cfg, r)

	validate := func(op int) error {
		var err error
		g.do(func(m *multiset.Multiset[int]) { err = m.Validate() })
		rep.validations++
		if err != nil {
			return errors.Wrapf(err, "after op %d", op)
		}
		return nil
	}

	for op := 1; op <= cfg.ops; op++ {
		if op&1023 == 0 {
			if err := ctx.Err(); err != nil {
				log.WithField("op", op).Warn("workload interrupted")
				break
			}
		}

		key := kg.key()
		n := uint(r.Intn(int(cfg.maxCount))) + 1
		if r.Intn(100) < cfg.erasePercent {
			g.do(func(m *multiset.Multiset[int]) { rep.removed += m.EraseN(key, n) })
			rep.erases++
		} else {
			g.do(func(m *multiset.Multiset[int]) { m.InsertN(key, n) })
			rep.inserts++
		}

		if cfg.validateEvery > 0 && op%cfg.validateEvery == 0 {
			if err := validate(op); err != nil {
				return rep, err
			}
		}
	}

	if err := validate(cfg.ops); err != nil {
		return rep, err
	}
	g.do(func(m *multiset.Multiset[int]) {
		rep.stats = m.Stats()
		rep.height = m.Height()
	})
	return rep, nil
}
