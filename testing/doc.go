// Package testing provides test utilities for the datasplit library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.T
//   - RequireValidSplit: Asserts that a Result partitions the collection
//
// Example usage:
//
//	import (
//	    "testing"
//	    splittest "github.com/arloliu/datasplit/testing"
//	)
//
//	func TestMyPipeline(t *testing.T) {
//	    splitter, _ := datasplit.NewSplitter(&cfg, datasplit.WithLogger(splittest.NewTestLogger(t)))
//	    res, _ := splitter.Split(items)
//	    splittest.RequireValidSplit(t, res, items.Len())
//	}
package testing
