// Package postgres implements the store interfaces on top of PostgreSQL,
// accessed through database/sql with the pgx stdlib driver. Each operation
// is a single parameterized statement; mutations use RETURNING so the
// round trip that changes a row is the same one that reads it back.
package postgres
