package services

import (
	"sync"

	portsrepo "github.com/vafabank/teller_app/internal/core/ports/repositories"
)

// StoreHandle is the single-owner handle through which every service
// reaches the record store. The underlying store only offers whole-document
// load and save, so the read-modify-write cycle of a mutating operation
// must run under one lock to keep document writes atomic; the handle owns
// that lock. Reads take it too, so lookups always see a complete snapshot.
type StoreHandle struct {
	mu sync.Mutex
	portsrepo.RecordStore
}

// NewStoreHandle wraps a RecordStore in its single-owner handle. All
// services of one process must share the same handle.
func NewStoreHandle(store portsrepo.RecordStore) *StoreHandle {
	return &StoreHandle{RecordStore: store}
}

// Lock acquires the store for one read-modify-write cycle.
func (h *StoreHandle) Lock() { h.mu.Lock() }

// Unlock releases the store.
func (h *StoreHandle) Unlock() { h.mu.Unlock() }
