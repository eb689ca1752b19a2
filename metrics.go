package multiset

// fixupCase identifies one branch of the insert or erase rebalancing loops.
type fixupCase uint8

const (
	insertRoot fixupCase = iota
	insertParentBlack
	insertUncleRed
	insertOuterLeft
	insertOuterRight
	insertInnerLeft
	insertInnerRight

	eraseRedChild
	eraseReachRoot
	eraseSiblingRed
	eraseFarNephewRed
	eraseNearNephewRed
	eraseParentRed
	erasePropagate

	numFixupCases
)

var fixupCaseNames = [numFixupCases]string{
	insertRoot:         "insert_root",
	insertParentBlack:  "insert_parent_black",
	insertUncleRed:     "insert_uncle_red",
	insertOuterLeft:    "insert_outer_left",
	insertOuterRight:   "insert_outer_right",
	insertInnerLeft:    "insert_inner_left",
	insertInnerRight:   "insert_inner_right",
	eraseRedChild:      "erase_red_child",
	eraseReachRoot:     "erase_reach_root",
	eraseSiblingRed:    "erase_sibling_red",
	eraseFarNephewRed:  "erase_far_nephew_red",
	eraseNearNephewRed: "erase_near_nephew_red",
	eraseParentRed:     "erase_parent_red",
	erasePropagate:     "erase_propagate",
}

func (c fixupCase) String() string {
	if c < numFixupCases {
		return fixupCaseNames[c]
	}
	return "unknown"
}

// Metrics counts structural work done by a Multiset. The counters are plain
// integers: a Multiset is single-threaded and so are its metrics.
type Metrics struct {
	rotationsLeft  uint64
	rotationsRight uint64
	nodesAllocated uint64
	nodesReleased  uint64
	cases          [numFixupCases]uint64
	enabled        bool
}

func newMetrics(enabled bool) Metrics {
	return Metrics{enabled: enabled}
}

func (m *Metrics) observe(c fixupCase) {
	if m.enabled {
		m.cases[c]++
	}
	if fixupHook != nil {
		fixupHook(c)
	}
}

// Stats is a point-in-time snapshot of a Multiset.
type Stats struct {
	// Size is the sum of all multiplicities.
	Size uint64
	// Nodes is the number of distinct values held.
	Nodes int
	// ArenaSlots is the number of node slots allocated, live or free.
	ArenaSlots int
	// FreeSlots is the number of released slots awaiting reuse.
	FreeSlots int

	RotationsLeft  uint64
	RotationsRight uint64
	NodesAllocated uint64
	NodesReleased  uint64

	// FixupCases maps a rebalancing case name to the number of times it was
	// taken. It is nil when case counting is disabled.
	FixupCases map[string]uint64
}

// Stats returns a snapshot of the multiset's counters.
func (m *Multiset[T]) Stats() Stats {
	s := Stats{
		Size:           uint64(m.size),
		Nodes:          m.live,
		ArenaSlots:     len(m.nodes) - 1,
		FreeSlots:      len(m.free),
		RotationsLeft:  m.metrics.rotationsLeft,
		RotationsRight: m.metrics.rotationsRight,
		NodesAllocated: m.metrics.nodesAllocated,
		NodesReleased:  m.metrics.nodesReleased,
	}
	if m.metrics.enabled {
		s.FixupCases = make(map[string]uint64, numFixupCases)
		for c := fixupCase(0); c < numFixupCases; c++ {
			s.FixupCases[c.String()] = m.metrics.cases[c]
		}
	}
	return s
}
