// Package mocks provides shared test doubles for the store and auth
// interfaces.
//
// Function-field mocks (MockUserStore, MockPasswordHasher, MockTokenService)
// fall back to a working in-memory behaviour when a field is nil, so most
// tests only override the one call they care about. TestifyMockUserStore is
// for tests that assert on exact call sequences.
//
//	users := mocks.NewMockUserStore()
//	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
//	    return nil, errors.New("connection reset")
//	}
package mocks
