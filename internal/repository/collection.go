package repository

import "sync"

// Collection is an insertion-ordered list of records guarded by a mutex.
// Lookups are linear scans; collections are expected to stay small.
type Collection[T any, K comparable] struct {
	mu      sync.RWMutex
	records []T
	idOf    func(T) K
}

// NewCollection creates an empty collection keyed by idOf.
func NewCollection[T any, K comparable](idOf func(T) K) *Collection[T, K] {
	return &Collection[T, K]{idOf: idOf}
}

// List returns a copy of the records in insertion order.
func (c *Collection[T, K]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Collection[T, K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Append adds rec to the end of the collection.
func (c *Collection[T, K]) Append(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
	return rec
}

// Insert builds a record from the next sequence number (current length + 1)
// and appends it while holding the lock.
func (c *Collection[T, K]) Insert(build func(seq int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := build(len(c.records) + 1)
	c.records = append(c.records, rec)
	return rec
}

// Find returns the first record whose id equals id.
func (c *Collection[T, K]) Find(id K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rec := range c.records {
		if c.idOf(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Mutate applies fn to the record with the given id in place and returns
// the updated copy.
func (c *Collection[T, K]) Mutate(id K, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.records {
		if c.idOf(c.records[i]) == id {
			fn(&c.records[i])
			return c.records[i], true
		}
	}
	var zero T
	return zero, false
}
