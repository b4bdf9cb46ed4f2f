package cache

import (
	"sync"
	"time"
)

// Store is a key-scoped, TTL-bound cache. Implementations must treat an
// expired entry exactly like a missing one.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	Keys() []string
}

type memoryEntry struct {
	value     any
	expiresAt time.Time
}

// MemoryStore is the default in-process Store. Entries expire lazily on
// access; there is no background sweeper. Concurrent misses on the same
// key may each recompute and overwrite the entry, which is tolerated
// because cached computations are idempotent.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock builds a store with an injected clock. Tests
// use this to step entries past their TTL without sleeping.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (store *MemoryStore) Get(key string) (any, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.entries[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.After(store.now()) {
		delete(store.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (store *MemoryStore) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries[key] = memoryEntry{
		value:     value,
		expiresAt: store.now().Add(ttl),
	}
}

func (store *MemoryStore) Delete(key string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.entries, key)
}

func (store *MemoryStore) Keys() []string {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	keys := make([]string, 0, len(store.entries))
	for key, entry := range store.entries {
		if !entry.expiresAt.After(now) {
			delete(store.entries, key)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
