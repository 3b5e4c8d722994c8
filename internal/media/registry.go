// Package media manages uploaded media records and the upload pipeline.
package media

import (
	"errors"
	"sync"
	"time"
)

// Record describes one accepted upload.
type Record struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ErrNotFound is returned when no record matches the requested name.
var ErrNotFound = errors.New("media not found")

// Registry is the ordered, in-memory collection of media records. It is
// global across all users and guarded for concurrent handler goroutines.
// Contents are lost on process restart; only the blobs survive.
type Registry struct {
	mu      sync.RWMutex
	records []Record
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Put inserts rec, keeping names unique: an existing record with the same
// name is replaced in place (the blob layer has already overwritten the
// file), otherwise rec is appended.
func (r *Registry) Put(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].Name == rec.Name {
			r.records[i] = rec
			return
		}
	}
	r.records = append(r.records, rec)
}

// List returns all records in insertion order. The result is a copy and is
// never nil, so it marshals as a JSON array.
func (r *Registry) List() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// RemoveByName removes the first record whose name matches and returns it.
// Returns ErrNotFound when no record matches.
func (r *Registry) RemoveByName(name string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].Name == name {
			rec := r.records[i]
			r.records = append(r.records[:i], r.records[i+1:]...)
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}
