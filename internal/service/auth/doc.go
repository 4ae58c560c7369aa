// Package auth holds the authentication core: password hashing, bearer
// token issuance and validation, the login use case, and the per-request
// Principal produced by the HTTP authentication gate.
package auth
