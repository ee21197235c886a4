// Package strategy provides built-in group ordering strategies.
//
// A strategy decides the order in which groups are handed to the assigner, which
// then fills train, validation and test from the front of that order. The package
// includes three built-in strategies:
//
//   - Random: Seeded uniform permutation (the usual choice)
//   - Temporal: Ascending by earliest member timestamp, so test holds the newest data
//   - Hash: Seeded xxh3 hash of the group key, stable as the collection grows
//
// # Strategy Selection Guide
//
// Random:
//   - Use for i.i.d. evaluation
//   - Deterministic for a fixed seed; record the seed to reproduce a run
//
// Temporal:
//   - Use to evaluate forward in time (train on the past, test on the future)
//   - Requires a timestamp on every item
//
// Hash:
//   - Use when new items are appended over time and existing keys should keep their split
//   - Depends only on the key and the seed
//
// Custom strategies can be implemented by satisfying the types.GroupOrderer interface.
package strategy
