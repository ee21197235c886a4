// Package types provides core type definitions and interfaces for the datasplit library.
//
// This package contains shared types that are used across multiple packages in the
// datasplit library. By keeping these types in a separate package, we avoid import cycles
// between the main datasplit package and its internal implementations.
//
// Key types:
//   - Collection: Index-addressed item collection with optional group keys and timestamps
//   - Group: Item indices that must land in the same split
//   - Result: Train/validation/test index sets returned by a split
//   - GroupOrderer: Strategy interface that orders groups before assignment
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
