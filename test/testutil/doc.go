// Package testutil provides shared test utilities and fixtures for split tests.
//
// This package contains common test data generators and invariant assertions
// that are used across package tests and integration tests.
//
// Examples of utilities that belong here:
//   - Fixture generators (grouped, timestamped record sets)
//   - Assertion helpers (coverage, disjointness, group atomicity, temporal order)
//
// For test loggers, use the github.com/arloliu/datasplit/testing package.
package testutil
