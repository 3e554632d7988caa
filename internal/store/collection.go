package store

import (
	"encoding/json"
	"fmt"
)

// Collection is a typed view over one collection file. T is the entity type;
// PT is its pointer type, which must implement Record.
type Collection[T any, PT interface {
	*T
	Record
}] struct {
	store *Store
	name  string
}

// NewCollection binds a typed collection to a store.
func NewCollection[T any, PT interface {
	*T
	Record
}](s *Store, name string) *Collection[T, PT] {
	return &Collection[T, PT]{store: s, name: name}
}

// All returns every record in the collection. Corrupt or missing files read
// as an empty collection.
func (c *Collection[T, PT]) All() []T {
	var items []T
	data := c.store.readFile(c.name)
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// ByID returns the record with the given id, or false when absent.
func (c *Collection[T, PT]) ByID(id int64) (PT, bool) {
	return c.FindOne(func(rec PT) bool { return rec.RecordID() == id })
}

// FindOne returns the first record matching pred, or false when none does.
func (c *Collection[T, PT]) FindOne(pred func(PT) bool) (PT, bool) {
	items := c.All()
	for i := range items {
		rec := PT(&items[i])
		if pred(rec) {
			return rec, true
		}
	}
	return nil, false
}

// FindAll returns every record matching pred, in file order.
func (c *Collection[T, PT]) FindAll(pred func(PT) bool) []T {
	var out []T
	for _, item := range c.All() {
		if pred(PT(&item)) {
			out = append(out, item)
		}
	}
	return out
}

// Insert assigns the next id and creation timestamps to rec and appends it.
func (c *Collection[T, PT]) Insert(rec PT) error {
	mu := c.store.writeLock(c.name)
	mu.Lock()
	defer mu.Unlock()

	items := c.All()
	var maxID int64
	for i := range items {
		if id := PT(&items[i]).RecordID(); id > maxID {
			maxID = id
		}
	}
	rec.StampNew(maxID+1, c.store.Now())

	items = append(items, *rec)
	return c.write(items)
}

// Replace overwrites the record with the given id, preserving its id and
// created_at and refreshing updated_at. Returns false when the id is absent.
func (c *Collection[T, PT]) Replace(id int64, rec PT) (bool, error) {
	mu := c.store.writeLock(c.name)
	mu.Lock()
	defer mu.Unlock()

	items := c.All()
	for i := range items {
		existing := PT(&items[i])
		if existing.RecordID() != id {
			continue
		}
		rec.StampUpdate(id, existing.CreatedTime(), c.store.Now())
		items[i] = *rec
		if err := c.write(items); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Delete removes the record with the given id. Returns false when absent.
func (c *Collection[T, PT]) Delete(id int64) (bool, error) {
	mu := c.store.writeLock(c.name)
	mu.Lock()
	defer mu.Unlock()

	items := c.All()
	kept := items[:0]
	for i := range items {
		if PT(&items[i]).RecordID() != id {
			kept = append(kept, items[i])
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := c.write(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Collection[T, PT]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	return c.store.replaceFile(c.name, data)
}
