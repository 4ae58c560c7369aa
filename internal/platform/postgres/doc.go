// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. It also maps driver errors onto the store
// sentinel errors so callers never inspect PostgreSQL error codes.
package postgres
