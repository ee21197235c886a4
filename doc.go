// Package datasplit partitions a dataset into train, validation and test index
// sets while keeping logical groups intact.
//
// Items are addressed by index only. A collection reports its length and may
// optionally expose a group key and a timestamp per item. With grouping enabled,
// every item sharing a key lands in the same split, so related samples (the
// same molecule, patient or session) never leak across splits. Split sizes
// approximate the requested fractions as closely as whole groups allow.
//
// # Quick Start
//
// Basic usage with default settings (80/10/10, random order):
//
//	import (
//	    "github.com/arloliu/datasplit"
//	    "github.com/arloliu/datasplit/source"
//	)
//
//	cfg := datasplit.DefaultConfig()
//	cfg.Grouped = true
//	cfg.Seed = datasplit.Ptr(uint64(42))
//
//	splitter, err := datasplit.NewSplitter(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := splitter.Split(source.NewStatic(records))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	train, val, test := res.Train, res.Validation, res.Test
//
// # Key Features
//
//   - Group Atomicity: A group is never divided between splits
//   - Reproducibility: Seeded random and hash orderings; unseeded runs report the drawn seed
//   - Temporal Splits: Older groups train, newer groups validate and test
//   - Relaxed Fractions: A fraction shortfall can be routed to an excluded overflow bucket
//
// # Architecture
//
// Every Split call runs the same pipeline:
//
//	INDEX GROUPS → ORDER GROUPS → ASSIGN (single forward pass)
//
// Fractions are validated once in NewSplitter, so Split only fails on input
// problems: an empty collection, missing group keys or missing timestamps.
//
// # Advanced Usage
//
// Temporal strategy with metrics and logging:
//
//	cfg := datasplit.Config{
//	    TrainFrac: 0.7,
//	    ValFrac:   0.15,
//	    TestFrac:  0.15,
//	    Grouped:   true,
//	    Strategy:  datasplit.StrategyTemporal,
//	}
//
//	splitter, err := datasplit.NewSplitter(&cfg,
//	    datasplit.WithLogger(datasplit.NewSlogLogger(slog.Default())),
//	    datasplit.WithMetrics(datasplit.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")),
//	)
//
// See the examples/ directory for a complete working example.
package datasplit
