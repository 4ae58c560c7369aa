// Package store defines the persistence contracts used by the service layer,
// the errors implementations must return, and a transaction helper shared by
// every database-backed implementation.
package store
