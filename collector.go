package multiset

import "github.com/prometheus/client_golang/prometheus"

// StatsSource is anything that can report a Stats snapshot, typically a
// Multiset or a wrapper that serializes access to one.
type StatsSource interface {
	Stats() Stats
}

// Collector exports a StatsSource as Prometheus metrics. Collect calls
// Stats on every scrape; the caller is responsible for making that safe with
// respect to concurrent mutation.
type Collector struct {
	src StatsSource

	size       *prometheus.Desc
	nodes      *prometheus.Desc
	slots      *prometheus.Desc
	freeSlots  *prometheus.Desc
	rotations  *prometheus.Desc
	allocated  *prometheus.Desc
	released   *prometheus.Desc
	fixupCases *prometheus.Desc
}

// NewCollector returns a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string, src StatsSource) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "multiset", n)
	}
	return &Collector{
		src:        src,
		size:       prometheus.NewDesc(name("size"), "Total number of copies held.", nil, nil),
		nodes:      prometheus.NewDesc(name("nodes"), "Number of distinct values held.", nil, nil),
		slots:      prometheus.NewDesc(name("arena_slots"), "Node slots allocated, live or free.", nil, nil),
		freeSlots:  prometheus.NewDesc(name("arena_free_slots"), "Released node slots awaiting reuse.", nil, nil),
		rotations:  prometheus.NewDesc(name("rotations_total"), "Tree rotations performed.", []string{"direction"}, nil),
		allocated:  prometheus.NewDesc(name("nodes_allocated_total"), "Nodes created by insertion.", nil, nil),
		released:   prometheus.NewDesc(name("nodes_released_total"), "Nodes released by erase or clear.", nil, nil),
		fixupCases: prometheus.NewDesc(name("fixup_cases_total"), "Rebalancing cases taken.", []string{"case"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.nodes
	ch <- c.slots
	ch <- c.freeSlots
	ch <- c.rotations
	ch <- c.allocated
	ch <- c.released
	ch <- c.fixupCases
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Nodes))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(s.ArenaSlots))
	ch <- prometheus.MustNewConstMetric(c.freeSlots, prometheus.GaugeValue, float64(s.FreeSlots))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(s.RotationsLeft), "left")
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(s.RotationsRight), "right")
	ch <- prometheus.MustNewConstMetric(c.allocated, prometheus.CounterValue, float64(s.NodesAllocated))
	ch <- prometheus.MustNewConstMetric(c.released, prometheus.CounterValue, float64(s.NodesReleased))
	for name, n := range s.FixupCases {
		ch <- prometheus.MustNewConstMetric(c.fixupCases, prometheus.CounterValue, float64(n), name)
	}
}
