package store

import "sync"

// Holder hands out the current Store and lets the reload worker swap in a
// freshly built one. Each Store is itself immutable; the holder is the only
// synchronization point in the process.
type Holder struct {
	mu  sync.RWMutex
	cur *Store
}

func NewHolder(s *Store) *Holder {
	return &Holder{cur: s}
}

func (h *Holder) Get() *Store {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

func (h *Holder) Set(s *Store) {
	h.mu.Lock()
	h.cur = s
	h.mu.Unlock()
}
