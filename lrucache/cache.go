/*
Copyright © 2024 tmslee.

Released under MIT license.
*/

package lrucache

import (
	"container/list"
	"fmt"
)

type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache represents a fixed-capacity LRU cache with eviction mechanism and Prometheus metrics.
//
// LRUCache is not safe for concurrent use.
// Get updates the recency order, so even read-only access mutates internal state;
// callers sharing one instance between goroutines must guard every method,
// including Get, with a single mutex.
//
// Values are returned by value. If V is a pointer (or contains pointers),
// the caller and the cache share the referent after Get/Peek.
type LRUCache[K comparable, V any] struct {
	maxEntries int

	lruList *list.List
	cache   map[K]*list.Element // map of cache entries, value is a lruList element

	onEvict func(key K, value V)

	metricsCollector MetricsCollector
}

// Options represents options for the cache.
type Options[K comparable, V any] struct {
	// OnEvict is called with each entry removed by capacity eviction.
	// Entries removed by Remove or Purge are not reported.
	OnEvict func(key K, value V)
}

// New creates a new LRUCache with the provided maximum number of entries and metrics collector.
func New[K comparable, V any](maxEntries int, metricsCollector MetricsCollector) (*LRUCache[K, V], error) {
	return NewWithOpts[K, V](maxEntries, metricsCollector, Options[K, V]{})
}

// NewWithOpts creates a new LRUCache with the provided maximum number of entries, metrics collector, and options.
// Metrics collector is used to collect statistics about cache usage.
// It can be nil, in this case, metrics will be disabled.
func NewWithOpts[K comparable, V any](
	maxEntries int, metricsCollector MetricsCollector, opts Options[K, V],
) (*LRUCache[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries must be greater than 0")
	}
	if metricsCollector == nil {
		metricsCollector = disabledMetricsCollector
	}

	return &LRUCache[K, V]{
		maxEntries:       maxEntries,
		lruList:          list.New(),
		cache:            make(map[K]*list.Element),
		onEvict:          opts.OnEvict,
		metricsCollector: metricsCollector,
	}, nil
}

// Get returns a value from the cache by the provided key
// and marks the entry as the most recently used one.
func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	elem, hit := c.cache[key]
	if !hit {
		c.metricsCollector.IncMisses()
		return value, false
	}
	c.lruList.MoveToFront(elem)
	c.metricsCollector.IncHits()
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// Peek returns a value from the cache by the provided key
// without updating the recency order and without affecting metrics.
func (c *LRUCache[K, V]) Peek(key K) (value V, ok bool) {
	elem, hit := c.cache[key]
	if !hit {
		return value, false
	}
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// Contains reports whether the key is present in the cache.
// Unlike Get, it doesn't change the recency order.
func (c *LRUCache[K, V]) Contains(key K) bool {
	_, ok := c.cache[key]
	return ok
}

// Add adds a value to the cache with the provided key.
// If the key already exists, its value is replaced and the entry becomes the most recently used one.
// If the cache is full, the least recently used entry is evicted first.
func (c *LRUCache[K, V]) Add(key K, value V) {
	if elem, ok := c.cache[key]; ok {
		c.lruList.MoveToFront(elem)
		elem.Value = &cacheEntry[K, V]{key: key, value: value}
		return
	}
	c.addNew(key, value)
}

// Remove removes a value from the cache by the provided key.
// It returns true if the entry was present.
func (c *LRUCache[K, V]) Remove(key K) bool {
	elem, ok := c.cache[key]
	if !ok {
		return false
	}

	c.lruList.Remove(elem)
	delete(c.cache, key)
	c.metricsCollector.SetAmount(len(c.cache))
	return true
}

// Purge clears the cache. The capacity stays unchanged.
// Keep in mind that this method does not reset Prometheus metrics
// except for the total number of entries.
// All removed entries will not be counted as evictions.
func (c *LRUCache[K, V]) Purge() {
	c.metricsCollector.SetAmount(0)
	c.cache = make(map[K]*list.Element)
	c.lruList.Init()
}

// Len returns the number of entries in the cache.
func (c *LRUCache[K, V]) Len() int {
	return len(c.cache)
}

// Capacity returns the maximum number of entries the cache can hold.
// It is fixed at construction time.
func (c *LRUCache[K, V]) Capacity() int {
	return c.maxEntries
}

// IsEmpty reports whether the cache holds no entries.
func (c *LRUCache[K, V]) IsEmpty() bool {
	return len(c.cache) == 0
}

// Keys returns the cache keys ordered from the most to the least recently used one.
func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.lruList.Len())
	for elem := c.lruList.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*cacheEntry[K, V]).key)
	}
	return keys
}

func (c *LRUCache[K, V]) addNew(key K, value V) {
	c.cache[key] = c.lruList.PushFront(&cacheEntry[K, V]{key: key, value: value})
	if len(c.cache) <= c.maxEntries {
		c.metricsCollector.SetAmount(len(c.cache))
		return
	}
	if evictedEntry := c.removeOldest(); evictedEntry != nil {
		c.metricsCollector.AddEvictions(1)
		if c.onEvict != nil {
			c.onEvict(evictedEntry.key, evictedEntry.value)
		}
	}
}

func (c *LRUCache[K, V]) removeOldest() *cacheEntry[K, V] {
	elem := c.lruList.Back()
	if elem == nil {
		return nil
	}
	c.lruList.Remove(elem)
	entry := elem.Value.(*cacheEntry[K, V])
	delete(c.cache, entry.key)
	return entry
}
