package testutil

import "pgregory.net/rapid"

// T is an abstraction over [testing.T] that's also satisfied by [rapid.T],
// allowing helpers to be used from property-based tests.
type T interface {
	rapid.TB
	Cleanup(func())
}
