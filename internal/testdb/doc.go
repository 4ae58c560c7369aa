// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Each test runs inside a transaction that is rolled back when the test
// completes, so tests can share one database and run in parallel without
// cleanup:
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDB(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			s := postgres.NewPostgresUserStore(tx, nil)
//			// ...
//		})
//	}
//
// Tests are skipped when no database URL is configured, except in CI where a
// missing database is a failure.
package testdb
