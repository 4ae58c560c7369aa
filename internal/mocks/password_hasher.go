package mocks

import (
	"context"
	"sync/atomic"

	"github.com/correialeo/meandai/internal/service/auth"
)

// MockHashPrefix is prepended to plaintext by the default Hash behaviour.
const MockHashPrefix = "mock-hash:"

// MockPasswordHasher implements auth.PasswordHasher for testing. By default
// Hash returns MockHashPrefix+plaintext and Verify checks that relation.
type MockPasswordHasher struct {
	HashFn   func(ctx context.Context, plaintext string) (string, error)
	VerifyFn func(ctx context.Context, plaintext, hash string) (bool, error)

	verifyCalls atomic.Int32
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(ctx, plaintext)
	}
	return MockHashPrefix + plaintext, nil
}

// Verify implements auth.PasswordHasher.
func (m *MockPasswordHasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	m.verifyCalls.Add(1)
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, plaintext, hash)
	}
	return hash == MockHashPrefix+plaintext, nil
}

// VerifyCalls returns how many times Verify was invoked.
func (m *MockPasswordHasher) VerifyCalls() int {
	return int(m.verifyCalls.Load())
}
