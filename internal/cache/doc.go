// Package cache provides a generic, thread-safe LRU cache.
//
// It backs the path-geometry cache in front of the tessellator: callers
// that repeatedly tessellate the same (structurally hashed) PathData can
// avoid re-running curve flattening and trapezoidation.
//
//	c := cache.New[uint64, tessellate.TrapezoidList](256)
//	c.Set(hash, trapezoids)
//	trapezoids, ok := c.Get(hash)
//
// Cache is safe for concurrent use; it must not be copied after creation
// (it holds a mutex).
package cache
