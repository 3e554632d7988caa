// Package store implements the JSON-file record store. Each collection is a
// single JSON array file; every write reads the whole collection, mutates it
// in memory, and atomically replaces the file. Reads are lenient: a missing
// or corrupt collection file behaves as an empty collection.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Collections lists every collection file the store manages. Open seeds each
// one with an empty array when absent.
var Collections = []string{
	"users",
	"cards",
	"transactions",
	"savings_envelopes",
	"payment_reminders",
}

// Record is implemented by every persisted entity. The store assigns ids and
// timestamps through it; id and created_at are immutable once assigned.
type Record interface {
	RecordID() int64
	CreatedTime() time.Time
	StampNew(id int64, now time.Time)
	StampUpdate(id int64, createdAt, now time.Time)
}

// Store is an explicitly constructed handle over a data directory. It is
// passed by reference to every repository; there is no package-level instance.
type Store struct {
	dir string
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open ensures the data directory exists, seeds missing collection files with
// empty arrays, and returns a ready store.
func Open(dir string, now func() time.Time) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}

	s := &Store{
		dir:   dir,
		now:   now,
		locks: make(map[string]*sync.Mutex, len(Collections)),
	}

	for _, collection := range Collections {
		path := s.path(collection)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := s.replaceFile(collection, []byte("[]")); err != nil {
				return nil, fmt.Errorf("seed collection %s: %w", collection, err)
			}
		}
	}

	return s, nil
}

// Now returns the store's current time in UTC.
func (s *Store) Now() time.Time { return s.now().UTC() }

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// writeLock returns the mutex serializing writers of a collection. Readers
// never take it; a read concurrent with a write observes either the pre- or
// post-replace file, never a partial one.
func (s *Store) writeLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.locks[collection]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[collection] = mu
	}
	return mu
}

// readFile reads a collection file leniently: missing or unreadable files
// yield nil, which decodes as an empty collection.
func (s *Store) readFile(collection string) []byte {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return nil
	}
	return data
}

// replaceFile writes data to a temp file in the same directory and renames it
// over the collection file, so the replace is atomic at file granularity.
func (s *Store) replaceFile(collection string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
