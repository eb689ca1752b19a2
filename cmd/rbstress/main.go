// Command rbstress drives a random insert/erase workload through a multiset,
// checks the red-black invariants along the way and optionally serves the
// tree's metrics for Prometheus.
package main

import (
	"context"
	"errors"
	"flag"
	"math"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/metailurini/multiset"
)

func main() {
	var (
		cfg      workloadConfig
		dist     string
		maxCount uint
		addr     string
		linger   time.Duration
		debug    bool
	)
	flag.IntVar(&cfg.ops, "ops", 1_000_000, "number of operations to run")
	flag.IntVar(&cfg.keys, "keys", 1<<12, "size of the key space")
	flag.StringVar(&dist, "dist", string(distUniform), "key distribution: uniform, ascending or zipf")
	flag.IntVar(&cfg.erasePercent, "erase-percent", 45, "share of operations that erase")
	flag.UintVar(&maxCount, "max-count", 3, "largest multiplicity per operation")
	flag.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "random seed")
	flag.IntVar(&cfg.validateEvery, "validate-every", 10_000, "validate invariants every n operations, 0 for only at the end")
	flag.StringVar(&addr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flag.DurationVar(&linger, "linger", 0, "keep serving metrics this long after the run")
	flag.BoolVar(&debug, "debug", false, "log structural tree events")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	d, err := parseDistribution(dist)
	if err != nil {
		log.WithError(err).Fatal("invalid flags")
	}
	if maxCount > math.MaxInt32 {
		log.WithField("max-count", maxCount).Fatal("invalid flags: max-count too large")
	}
	cfg.dist = d
	cfg.maxCount = maxCount

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := &guarded{m: multiset.NewOrdered[int](multiset.WithLogger(log), multiset.WithCapacity(cfg.keys))}

	var srv *http.Server
	if addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(multiset.NewCollector("rbstress", g))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
		log.WithField("addr", addr).Info("serving metrics")
	}

	log.WithFields(logrus.Fields{
		"ops": cfg.ops, "keys": cfg.keys, "dist": cfg.dist, "seed": cfg.seed,
	}).Info("starting workload")

	start := time.Now()
	rep, err := runWorkload(ctx, cfg, g, log)
	elapsed := time.Since(start)

	entry := log.WithFields(logrus.Fields{
		"inserts":     rep.inserts,
		"erases":      rep.erases,
		"removed":     rep.removed,
		"validations": rep.validations,
		"size":        rep.stats.Size,
		"nodes":       rep.stats.Nodes,
		"height":      rep.height,
		"rotations":   rep.stats.RotationsLeft + rep.stats.RotationsRight,
		"elapsed":     elapsed,
	})

	if srv != nil {
		if linger > 0 {
			select {
			case <-time.After(linger):
			case <-ctx.Done():
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}

	if err != nil {
		entry.WithError(err).Error("invariant violation")
		os.Exit(1)
	}
	entry.Info("workload finished")
}
