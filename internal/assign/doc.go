// Package assign distributes ordered groups over the train, validation, test and
// overflow buckets.
//
// The assigner walks the groups once with a single forward cursor. Each bucket in
// turn consumes whole groups until it reaches its target item count, while leaving
// at least one group for every later bucket that has a positive target. The last
// bucket (test) takes whatever remains. Because the cursor only moves forward and
// every group is consumed exactly once, buckets can never overlap and no index can
// be left out.
//
// Targets:
//
//	train, validation, overflow: floor(fraction * N)
//	test:                        N - sum(previous targets)
//
// Bucket order is train, validation, [overflow,] test. Overflow sits before test so
// that, under temporal ordering, the excluded items fall between validation and
// test rather than at the newest end of the collection.
package assign
