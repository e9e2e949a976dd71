// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package simplelru

import (
	"errors"
)

// ErrInvalidSize is returned when a cache is built or resized with a
// non-positive size.
var ErrInvalidSize = errors.New("must provide a positive size")

// EvictCallback is used to get a callback when a cache entry is evicted
type EvictCallback[K comparable, V any] func(key K, value V)

// LRU implements a non-thread safe fixed size LRU cache
type LRU[K comparable, V any] struct {
	size      int
	evictList *lruList[K, V]
	items     map[K]int
	onEvict   EvictCallback[K, V]
}

// NewLRU constructs an LRU of the given size
func NewLRU[K comparable, V any](size int, onEvict EvictCallback[K, V]) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &LRU[K, V]{
		size:      size,
		evictList: newList[K, V](),
		items:     make(map[K]int),
		onEvict:   onEvict,
	}
	return c, nil
}

// Purge is used to completely clear the cache.
func (c *LRU[K, V]) Purge() {
	if c.onEvict != nil {
		for i := c.evictList.back(); i != none; i = c.evictList.at(i).prev {
			e := c.evictList.at(i)
			c.onEvict(e.key, e.value)
		}
	}
	clear(c.items)
	c.evictList.init()
}

// Add adds a value to the cache. Returns true if an eviction occurred.
// When the cache is full the oldest entry is evicted before the new one is
// stored, so the cache never holds more than its size.
func (c *LRU[K, V]) Add(key K, value V) (evicted bool) {
	// Check for existing item
	if i, ok := c.items[key]; ok {
		c.evictList.at(i).value = value
		c.evictList.moveToFront(i)
		return false
	}

	if len(c.items) >= c.size {
		c.removeOldest()
		evicted = true
	}

	c.items[key] = c.evictList.insert(key, value)
	return evicted
}

// Get looks up a key's value from the cache and marks it as the most
// recently used. The value is returned by copy; if V is a pointer, slice or
// map the caller shares the referenced data with the cache.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	if i, found := c.items[key]; found {
		c.evictList.moveToFront(i)
		return c.evictList.at(i).value, true
	}
	return
}

// Contains checks if a key is in the cache, without updating the recent-ness
// or deleting it for being stale.
func (c *LRU[K, V]) Contains(key K) (ok bool) {
	_, ok = c.items[key]
	return ok
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *LRU[K, V]) Peek(key K) (value V, ok bool) {
	if i, found := c.items[key]; found {
		return c.evictList.at(i).value, true
	}
	return
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *LRU[K, V]) Remove(key K) (present bool) {
	if i, ok := c.items[key]; ok {
		c.removeElement(i)
		return true
	}
	return false
}

// RemoveOldest removes the oldest item from the cache.
func (c *LRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if i := c.evictList.back(); i != none {
		key, value = c.removeElement(i)
		return key, value, true
	}
	return
}

// GetOldest returns the oldest entry
func (c *LRU[K, V]) GetOldest() (key K, value V, ok bool) {
	if i := c.evictList.back(); i != none {
		e := c.evictList.at(i)
		return e.key, e.value, true
	}
	return
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for i := c.evictList.back(); i != none; i = c.evictList.at(i).prev {
		keys = append(keys, c.evictList.at(i).key)
	}
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *LRU[K, V]) Values() []V {
	values := make([]V, 0, len(c.items))
	for i := c.evictList.back(); i != none; i = c.evictList.at(i).prev {
		values = append(values, c.evictList.at(i).value)
	}
	return values
}

// Len returns the number of items in the cache.
func (c *LRU[K, V]) Len() int {
	return c.evictList.length()
}

// Cap returns the capacity of the cache.
func (c *LRU[K, V]) Cap() int {
	return c.size
}

// Resize changes the cache size. A non-positive size leaves the cache
// untouched.
func (c *LRU[K, V]) Resize(size int) (evicted int) {
	if size <= 0 {
		return 0
	}
	diff := c.Len() - size
	if diff < 0 {
		diff = 0
	}
	for i := 0; i < diff; i++ {
		c.removeOldest()
	}
	c.size = size
	return diff
}

// removeOldest removes the oldest item from the cache.
func (c *LRU[K, V]) removeOldest() {
	if i := c.evictList.back(); i != none {
		c.removeElement(i)
	}
}

// removeElement is used to remove a given list element from the cache
func (c *LRU[K, V]) removeElement(i int) (key K, value V) {
	key, value = c.evictList.remove(i)
	delete(c.items, key)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
	return key, value
}
