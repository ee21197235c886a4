package datasplit

import "github.com/arloliu/datasplit/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which internal packages depend on without importing the root
// package.
type (
	Collection            = types.Collection
	GroupedCollection     = types.GroupedCollection
	TimestampedCollection = types.TimestampedCollection
	Record                = types.Record
	Group                 = types.Group
	GroupError            = types.GroupError
	Result                = types.Result
	SplitSizes            = types.SplitSizes
	SplitName             = types.SplitName
	Diagnostic            = types.Diagnostic
	DiagnosticCode        = types.DiagnosticCode
	Strategy              = types.Strategy
)

// Re-export interfaces from the types package for convenience.
type (
	GroupOrderer     = types.GroupOrderer
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export constants from the types package.
const (
	StrategyRandom   = types.StrategyRandom
	StrategyTemporal = types.StrategyTemporal
	StrategyHash     = types.StrategyHash

	SplitTrain      = types.SplitTrain
	SplitValidation = types.SplitValidation
	SplitTest       = types.SplitTest
	SplitOverflow   = types.SplitOverflow

	DiagnosticUnallocated = types.DiagnosticUnallocated
)
