// Package testutil provides test helpers for setting up temp-dir stores,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"
	"time"

	"finvault/internal/store"
)

// SetupTestStore creates a store backed by a per-test temp directory.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return SetupTestStoreWithNow(t, time.Now)
}

// SetupTestStoreWithNow creates a temp-dir store with an injected time source,
// so inserted records carry deterministic timestamps.
func SetupTestStoreWithNow(t *testing.T, now func() time.Time) *store.Store {
	t.Helper()

	s, err := store.Open(t.TempDir(), now)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return s
}
