package multiset

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config holds construction-time settings of a Multiset.
type Config struct {
	// Logger receives debug entries for structural events. A nil Logger
	// discards them.
	Logger *logrus.Logger

	// Capacity is the number of node slots reserved up front.
	Capacity int

	// CountCases enables per-case counting of the rebalancing loops.
	CountCases bool
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		Logger:     discardLogger(),
		Capacity:   0,
		CountCases: true,
	}
}

// WithLogger routes structural debug entries to logger. A nil logger keeps
// the default, which discards everything.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithCapacity reserves room for n distinct values.
func WithCapacity(n int) Option {
	return func(c *Config) { c.Capacity = n }
}

// WithMetrics toggles per-case fixup counting. Rotation and allocation
// counters are always kept.
func WithMetrics(enabled bool) Option {
	return func(c *Config) { c.CountCases = enabled }
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	return l
}
