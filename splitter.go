package datasplit

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/datasplit/internal/assign"
	"github.com/arloliu/datasplit/internal/fraction"
	"github.com/arloliu/datasplit/internal/grouping"
	"github.com/arloliu/datasplit/internal/logger"
	"github.com/arloliu/datasplit/internal/metrics"
	"github.com/arloliu/datasplit/strategy"
	"github.com/arloliu/datasplit/types"
)

// strategyCustom is the strategy name reported for orderers supplied via WithStrategy.
const strategyCustom Strategy = "custom"

// Splitter partitions collections into train, validation and test splits.
//
// A Splitter is immutable after construction and safe for concurrent use:
// every Split call builds its own groups, ordering and generator.
type Splitter struct {
	cfg        Config
	fractions  assign.Fractions
	diagnostic *Diagnostic
	orderer    GroupOrderer
	metrics    MetricsCollector
	logger     Logger
}

// NewSplitter creates a new splitter.
//
// Missing configuration values are filled with defaults and the fractions are
// validated once here, so Split never fails on configuration. A fraction
// shortfall with enforcement disabled is accepted, logged at Warn and attached
// to every Result as a Diagnostic.
//
// Parameters:
//   - cfg: Configuration (not modified; a copy is taken)
//   - opts: Optional configuration (WithStrategy, WithMetrics, WithLogger)
//
// Returns:
//   - *Splitter: Initialized splitter
//   - error: Wrapped ErrInvalidConfiguration on invalid configuration
//
// Example:
//
//	cfg := datasplit.DefaultConfig()
//	cfg.Grouped = true
//	splitter, err := datasplit.NewSplitter(&cfg, datasplit.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	res, err := splitter.Split(source.NewStatic(records))
func NewSplitter(cfg *Config, opts ...Option) (*Splitter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfiguration)
	}

	c := cfg.clone()
	SetDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	report, err := fraction.Validate(c.TrainFrac, c.ValFrac, c.TestFrac, c.Enforced())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	options := &splitterOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	c.ValidateWithWarnings(loggerInstance)

	if report.Diagnostic != nil {
		loggerInstance.Warn(report.Diagnostic.Message,
			"code", report.Diagnostic.Code,
			"unallocated", report.Unallocated,
		)
	}
	metricsCollector.RecordUnallocated(report.Unallocated)

	return &Splitter{
		cfg: c,
		fractions: assign.Fractions{
			Train:      c.TrainFrac,
			Validation: c.ValFrac,
			Test:       c.TestFrac,
			Overflow:   report.Unallocated,
		},
		diagnostic: report.Diagnostic,
		orderer:    options.orderer,
		metrics:    metricsCollector,
		logger:     loggerInstance,
	}, nil
}

// Config returns a copy of the effective configuration, defaults applied.
func (s *Splitter) Config() Config {
	return s.cfg.clone()
}

// Split partitions items into train, validation and test index sets.
//
// Groups are built from the collection, ordered by the configured strategy and
// assigned to the splits in a single forward pass, so no group is ever divided.
//
// Parameters:
//   - items: Collection to split
//
// Returns:
//   - Result: Index sets plus the effective seed and diagnostics
//   - error: ErrNilCollection, ErrEmptyInput, ErrMissingGroupKey or ErrMissingTimestamp
func (s *Splitter) Split(items Collection) (Result, error) {
	start := time.Now()

	res, err := s.split(items)
	if err != nil {
		s.metrics.RecordSplitError(errorReason(err))
		return Result{}, err
	}

	s.metrics.RecordSplit(res.Strategy.String(), res.Sizes(), res.GroupCount, time.Since(start).Seconds())

	return res, nil
}

func (s *Splitter) split(items Collection) (Result, error) {
	if items == nil {
		return Result{}, ErrNilCollection
	}

	n := items.Len()
	groups, err := grouping.Index(items, s.cfg.Grouped)
	if err != nil {
		return Result{}, fmt.Errorf("index groups: %w", err)
	}

	orderer, name, seed, supplied := s.ordererFor()

	if name == StrategyTemporal && s.cfg.CoalesceTimestamps {
		if ts, ok := items.(TimestampedCollection); ok {
			groups = grouping.CoalesceByTimestamp(groups, ts)
		}
	}

	ordered, err := orderer.Order(groups, items)
	if err != nil {
		return Result{}, fmt.Errorf("order groups: %w", err)
	}

	a := assign.Assign(ordered, n, s.fractions)

	res := Result{
		Train:        a.Train,
		Validation:   a.Validation,
		Test:         a.Test,
		Overflow:     a.Overflow,
		Strategy:     name,
		Seed:         seed,
		SeedSupplied: supplied,
		GroupCount:   len(ordered),
	}
	if s.diagnostic != nil {
		res.Diagnostics = []Diagnostic{*s.diagnostic}
	}

	s.logger.Debug("split complete",
		"strategy", name,
		"items", n,
		"groups", len(ordered),
		"train", len(res.Train),
		"validation", len(res.Validation),
		"test", len(res.Test),
		"overflow", len(res.Overflow),
	)

	return res, nil
}

// ordererFor returns the orderer for one Split call along with the strategy name
// and the effective seed it was built with.
func (s *Splitter) ordererFor() (GroupOrderer, Strategy, uint64, bool) {
	if s.orderer != nil {
		return s.orderer, strategyCustom, 0, false
	}

	switch s.cfg.Strategy {
	case StrategyRandom:
		if s.cfg.Seed != nil {
			return strategy.NewRandom(*s.cfg.Seed), StrategyRandom, *s.cfg.Seed, true
		}
		seed := strategy.DrawSeed()
		s.logger.Info("splitting with random seed", "seed", seed)

		return strategy.NewRandom(seed), StrategyRandom, seed, false
	case StrategyTemporal:
		return strategy.NewTemporal(), StrategyTemporal, 0, false
	case StrategyHash:
		if s.cfg.Seed != nil {
			return strategy.NewHash(*s.cfg.Seed), StrategyHash, *s.cfg.Seed, true
		}

		return strategy.NewHash(0), StrategyHash, 0, false
	}

	// Validate rejects unknown strategies, so this is only reached by a zero Splitter.
	panic(fmt.Sprintf("datasplit: unknown strategy %q", s.cfg.Strategy))
}

// errorReason maps a split error to its metrics label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, types.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, types.ErrMissingGroupKey):
		return "missing_group_key"
	case errors.Is(err, types.ErrMissingTimestamp):
		return "missing_timestamp"
	case errors.Is(err, types.ErrNilCollection):
		return "nil_collection"
	default:
		return "other"
	}
}

// Split is a convenience wrapper that builds a Splitter from cfg and splits items once.
//
// Parameters:
//   - items: Collection to split
//   - cfg: Configuration
//
// Returns:
//   - Result: Index sets
//   - error: Configuration or split error
func Split(items Collection, cfg Config) (Result, error) {
	s, err := NewSplitter(&cfg)
	if err != nil {
		return Result{}, err
	}

	return s.Split(items)
}
