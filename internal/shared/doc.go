// Package shared holds cross-cutting utilities that belong to no single
// domain package. Currently that is only testutil, the test helpers used
// across the codebase.
package shared
