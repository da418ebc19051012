// Package store defines the persistence interfaces for the service and the
// sentinel errors implementations report through. Handlers depend on these
// interfaces only, so the Postgres implementation can be swapped for an
// in-memory fake in tests.
package store
