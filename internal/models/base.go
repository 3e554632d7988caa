package models

import "time"

// Base contains the common fields of every stored record. The store assigns
// the id and timestamps on insert; id and created_at never change afterwards.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the record's id.
func (b *Base) RecordID() int64 { return b.ID }

// CreatedTime returns the record's creation timestamp.
func (b *Base) CreatedTime() time.Time { return b.CreatedAt }

// StampNew sets the id and both timestamps for a freshly inserted record.
func (b *Base) StampNew(id int64, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

// StampUpdate restores the immutable fields and refreshes updated_at.
func (b *Base) StampUpdate(id int64, createdAt, now time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
	b.UpdatedAt = now
}
