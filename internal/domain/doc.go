// Package domain contains the core business entities of the application and
// the validation rules they enforce on themselves, independent of storage or
// transport.
package domain
