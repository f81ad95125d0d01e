// Package cache provides a generic, read-mostly concurrent map for values
// that are expensive to build and immutable once published.
//
// It is designed for process-wide caches on hot request paths: reads take no
// locks, and a value is published atomically only after it is fully built,
// so concurrent readers can never observe a partial entry. When several
// goroutines race to build the same entry, one value wins and the others are
// discarded - duplicate work is acceptable, torn values are not.
//
// There is no eviction and no expiration. Entries live for the process
// lifetime; invalidation is a deployment concern (e.g. restart after
// shipping new data files).
//
// # Usage
//
//	var catalogs cache.Map[string, *Catalog]
//
//	func lookup(key string) *Catalog {
//		if c, ok := catalogs.Get(key); ok {
//			return c
//		}
//		// Build fully before publishing.
//		c := loadCatalog(key)
//		return catalogs.GetOrPut(key, c)
//	}
//
// The zero value is ready to use.
package cache
