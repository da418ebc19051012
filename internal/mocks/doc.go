// Package mocks provides in-memory implementations of the store interfaces
// and a stub token verifier for handler tests. The fake stores honor the
// same atomicity the Postgres stores get from per-statement execution: every
// mutation happens under one lock acquisition.
package mocks
