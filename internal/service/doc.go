// Package service contains the application use cases. It coordinates domain
// entities, the store interfaces and the auth package, applying transaction
// boundaries where an operation reads and writes the same record.
//
// Services return the sentinel errors declared in errors.go for expected
// conditions. The API layer maps those onto HTTP status codes.
package service
