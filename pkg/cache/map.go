package cache

import "sync"

// Map is a type-safe wrapper around sync.Map for read-mostly caching of
// immutable values. The zero value is empty and ready to use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Get returns the cached value for key.
// Returns the value and true if present, zero value and false otherwise.
func (c *Map[K, V]) Get(key K) (V, bool) {
	if v, ok := c.m.Load(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

// Put stores value under key, replacing any previous value. The value must
// be fully built before the call; Put is the atomic publish step.
func (c *Map[K, V]) Put(key K, value V) {
	c.m.Store(key, value)
}

// GetOrPut publishes value under key unless another goroutine got there
// first, and returns the value that ended up in the map. This is the
// preferred way to resolve concurrent first-builds of the same entry.
func (c *Map[K, V]) GetOrPut(key K, value V) V {
	actual, _ := c.m.LoadOrStore(key, value)
	return actual.(V)
}

// Remove deletes the entry for key, if any.
func (c *Map[K, V]) Remove(key K) {
	c.m.Delete(key)
}

// Len counts the current entries. It is O(n) and intended for tests and
// introspection, not hot paths.
func (c *Map[K, V]) Len() int {
	n := 0
	c.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
