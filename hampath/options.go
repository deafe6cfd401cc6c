package hampath

import (
	"fmt"

	"go.uber.org/zap"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultParallel runs roots one after another.
	DefaultParallel = 1

	// DefaultSharedMemo lets sequential roots of one direction share a memo
	// table. The value of (mask, current) does not depend on the root.
	DefaultSharedMemo = true

	// DefaultConnectivityCheck rejects disconnected inputs before the search.
	DefaultConnectivityCheck = true
)

// Internal panic messages (no magic strings).
const (
	panicParallelInvalid     = "hampath: WithParallel: workers must be >= 1"
	panicMaxLocationsInvalid = "hampath: WithMaxLocations: limit must be in [1, MaxLocations]"
	panicLoggerNil           = "hampath: WithLogger: logger must be non-nil"
)

// config is the resolved option set. Fields are unexported; callers use
// the WithX constructors.
type config struct {
	parallel          int
	sharedMemo        bool
	connectivityCheck bool
	maxLocations      int
	logger            *zap.Logger
}

// Option mutates the solver configuration. Constructors panic only on
// nonsensical values (programmer error), never on user data.
type Option func(*config)

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		parallel:          DefaultParallel,
		sharedMemo:        DefaultSharedMemo,
		connectivityCheck: DefaultConnectivityCheck,
		maxLocations:      MaxLocations,
		logger:            zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithParallel solves up to workers roots concurrently. Each worker owns its
// own memo table, so memory grows to workers·2ⁿ·n cells. workers == 1 keeps
// the sequential path.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic(fmt.Sprintf("%s (got %d)", panicParallelInvalid, workers))
	}

	return func(c *config) { c.parallel = workers }
}

// WithSharedMemo toggles memo sharing between sequential roots of the same
// direction. When off, the table is fully reset before each root. It has no
// effect in parallel mode, where tables are per worker and reset per root.
func WithSharedMemo(shared bool) Option {
	return func(c *config) { c.sharedMemo = shared }
}

// WithConnectivityCheck toggles the O(n²) reachability pre-check.
func WithConnectivityCheck(enabled bool) Option {
	return func(c *config) { c.connectivityCheck = enabled }
}

// WithMaxLocations lowers the accepted n below MaxLocations.
func WithMaxLocations(limit int) Option {
	if limit < 1 || limit > MaxLocations {
		panic(fmt.Sprintf("%s (got %d)", panicMaxLocationsInvalid, limit))
	}

	return func(c *config) { c.maxLocations = limit }
}

// WithLogger attaches a zap logger for per-root debug output.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(c *config) { c.logger = logger }
}
