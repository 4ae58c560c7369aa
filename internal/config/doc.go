// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional config
// file. The resulting Config is built once at startup and treated as
// read-only afterwards; components receive the sections they need by value.
package config
