// Package source provides built-in collection implementations.
//
// Collections expose items to the splitter by index, with optional group keys and
// timestamps. The package includes:
//
//   - Static: Fixed list of types.Record values
//   - Indexed: N opaque items without keys or timestamps
//   - Slice: Caller-defined items adapted through accessor functions
//
// Custom collections can be implemented by satisfying types.Collection and,
// optionally, types.GroupedCollection and types.TimestampedCollection.
package source
