package datasplit

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/datasplit/internal/fraction"
)

// Config is the configuration for a Splitter.
//
// A Config is consumed by NewSplitter, which copies it, so later changes to the
// caller's value do not affect a running Splitter.
//
// Example YAML:
//
//	trainFrac: 0.8
//	valFrac: 0.1
//	testFrac: 0.1
//	grouped: true
//	strategy: random
//	seed: 42
type Config struct {
	// TrainFrac is the fraction of items to put in the train split.
	//
	// TrainFrac, ValFrac and TestFrac are defaulted as a set: when all three are
	// zero, SetDefaults (and therefore NewSplitter and LoadConfig) replaces them
	// with 0.8, 0.1 and 0.1. An all-zero Config is never rejected as summing to
	// zero; any other combination is validated as given.
	TrainFrac float64 `yaml:"trainFrac"`

	// ValFrac is the fraction of items to put in the validation split.
	ValFrac float64 `yaml:"valFrac"`

	// TestFrac is the fraction of items to put in the test split.
	TestFrac float64 `yaml:"testFrac"`

	// Grouped keeps items with equal group keys in the same split.
	// The collection must implement GroupedCollection.
	Grouped bool `yaml:"grouped"`

	// EnforceSumToOne rejects fractions that do not sum to one.
	// When false, a shortfall is routed to an overflow bucket that is excluded
	// from all three splits. Nil means true.
	EnforceSumToOne *bool `yaml:"enforceSumToOne"`

	// Strategy selects how groups are ordered before assignment.
	// Default: random
	Strategy Strategy `yaml:"strategy"`

	// Seed drives the random and hash strategies. Nil means no seed was supplied:
	// the random strategy then draws one per split and reports it in Result.Seed,
	// and the hash strategy uses the unseeded hash.
	Seed *uint64 `yaml:"seed"`

	// CoalesceTimestamps keeps keyless items that share an identical timestamp
	// together under the temporal strategy.
	CoalesceTimestamps bool `yaml:"coalesceTimestamps"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: 80/10/10 random split, ungrouped, fractions enforced, no seed
func DefaultConfig() Config {
	return Config{
		TrainFrac:       0.8,
		ValFrac:         0.1,
		TestFrac:        0.1,
		EnforceSumToOne: Ptr(true),
		Strategy:        StrategyRandom,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Fractions are only defaulted when all three are zero, since a zero fraction
// is meaningful on its own. An all-zero set therefore means "use the defaults",
// even when EnforceSumToOne is explicitly true.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.TrainFrac == 0 && cfg.ValFrac == 0 && cfg.TestFrac == 0 {
		cfg.TrainFrac = defaults.TrainFrac
		cfg.ValFrac = defaults.ValFrac
		cfg.TestFrac = defaults.TestFrac
	}
	if cfg.EnforceSumToOne == nil {
		cfg.EnforceSumToOne = defaults.EnforceSumToOne
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - Strategy is one of random, temporal, hash
//   - No fraction is negative or non-finite
//   - Fractions never sum above one
//   - Fractions sum to one when EnforceSumToOne is true
//
// Returns:
//   - error: Wrapped ErrInvalidConfiguration with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if !cfg.Strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, cfg.Strategy)
	}

	if _, err := fraction.Validate(cfg.TrainFrac, cfg.ValFrac, cfg.TestFrac, cfg.Enforced()); err != nil {
		return err
	}

	return nil
}

// ValidateWithWarnings logs warnings for settings that are accepted but probably unintended.
//
// This is called after Validate() in NewSplitter() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.CoalesceTimestamps && cfg.Strategy != StrategyTemporal {
		logger.Warn(
			"coalesceTimestamps only applies to the temporal strategy",
			"strategy", cfg.Strategy,
		)
	}

	if cfg.Strategy == StrategyTemporal && cfg.Seed != nil {
		logger.Warn(
			"seed is ignored by the temporal strategy",
			"seed", *cfg.Seed,
		)
	}

	if cfg.TrainFrac == 0 {
		logger.Warn(
			"train fraction is zero, the train split will be empty",
			"valFrac", cfg.ValFrac,
			"testFrac", cfg.TestFrac,
		)
	}
}

// Enforced reports whether fractions must sum to one.
func (cfg *Config) Enforced() bool {
	return cfg.EnforceSumToOne == nil || *cfg.EnforceSumToOne
}

// clone returns a copy of cfg that shares no pointers with it.
func (cfg *Config) clone() Config {
	c := *cfg
	if cfg.EnforceSumToOne != nil {
		c.EnforceSumToOne = Ptr(*cfg.EnforceSumToOne)
	}
	if cfg.Seed != nil {
		c.Seed = Ptr(*cfg.Seed)
	}

	return c
}

// LoadConfig parses a YAML document into a Config, applies defaults and validates it.
//
// Unknown fields are rejected so that typos do not silently fall back to defaults.
// An empty document yields DefaultConfig().
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: Parse error or wrapped ErrInvalidConfiguration
//
// Example:
//
//	data, _ := os.ReadFile("split.yaml")
//	cfg, err := datasplit.LoadConfig(data)
func LoadConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parse yaml: %w", ErrInvalidConfiguration, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a deterministic configuration for tests.
//
// Returns:
//   - Config: DefaultConfig() with a fixed seed of 42
//
// Example:
//
//	cfg := datasplit.TestConfig()
//	cfg.Grouped = true
//	splitter, err := datasplit.NewSplitter(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = Ptr(uint64(42))

	return cfg
}

// Ptr returns a pointer to v. Handy for the optional Config fields.
func Ptr[T any](v T) *T {
	return &v
}
