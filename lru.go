// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lru

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/venkatsvpr/arenalru/simplelru"
)

const (
	// DefaultEvictedBufferSize defines the default buffer size to store evicted key/val
	DefaultEvictedBufferSize = 16
)

// ErrInvalidSize is returned by the constructors when size is not positive.
var ErrInvalidSize = simplelru.ErrInvalidSize

// Cache is a fixed size LRU cache guarded by a single RWLocker.
type Cache[K comparable, V any] struct {
	lru         *simplelru.LRU[K, V]
	evictedKeys []K
	evictedVals []V
	onEvictedCB func(k K, v V)
	lock        RWLocker
	fills       singleflight.Group
}

// Option configures a Cache at construction.
type Option[K comparable, V any] func(c *Cache[K, V])

// WithEvict registers a callback invoked, outside the lock, for every entry
// that leaves the cache.
func WithEvict[K comparable, V any](onEvicted func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvictedCB = onEvicted
	}
}

// WithLocker replaces the default sync.RWMutex. Pass NoOpRWLocker{} when the
// cache has a single owner.
func WithLocker[K comparable, V any](l RWLocker) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.lock = l
	}
}

// New creates an LRU of the given size.
func New[K comparable, V any](size int) (*Cache[K, V], error) {
	return NewWithOpts[K, V](size)
}

// NewWithEvict constructs a fixed size cache with the given eviction
// callback.
func NewWithEvict[K comparable, V any](size int, onEvicted func(key K, value V)) (*Cache[K, V], error) {
	return NewWithOpts(size, WithEvict(onEvicted))
}

// NewWithOpts constructs a fixed size cache configured by opts.
func NewWithOpts[K comparable, V any](size int, opts ...Option[K, V]) (c *Cache[K, V], err error) {
	c = &Cache[K, V]{}
	for _, opt := range opts {
		opt(c)
	}
	if c.lock == nil {
		c.lock = &sync.RWMutex{}
	}

	var onEvicted simplelru.EvictCallback[K, V]
	if c.onEvictedCB != nil {
		c.initEvictBuffers()
		onEvicted = c.onEvicted
	}
	c.lru, err = simplelru.NewLRU(size, onEvicted)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache[K, V]) initEvictBuffers() {
	c.evictedKeys = make([]K, 0, DefaultEvictedBufferSize)
	c.evictedVals = make([]V, 0, DefaultEvictedBufferSize)
}

// onEvicted save evicted key/val and sent in externally registered callback
// outside critical section
func (c *Cache[K, V]) onEvicted(k K, v V) {
	c.evictedKeys = append(c.evictedKeys, k)
	c.evictedVals = append(c.evictedVals, v)
}

// takeEvicted hands over the buffered evictions. Has to be called with lock!
func (c *Cache[K, V]) takeEvicted() (ks []K, vs []V) {
	if c.onEvictedCB == nil || len(c.evictedKeys) == 0 {
		return nil, nil
	}
	ks, vs = c.evictedKeys, c.evictedVals
	c.initEvictBuffers()
	return ks, vs
}

// notify invokes the user callback; never call it with the lock held.
func (c *Cache[K, V]) notify(ks []K, vs []V) {
	for i := range ks {
		c.onEvictedCB(ks[i], vs[i])
	}
}

// Purge is used to completely clear the cache.
func (c *Cache[K, V]) Purge() {
	c.lock.Lock()
	c.lru.Purge()
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
}

// Add adds a value to the cache. Returns true if an eviction occurred.
func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	c.lock.Lock()
	evicted = c.lru.Add(key, value)
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
	return
}

// Get looks up a key's value from the cache. It updates recency, so it takes
// the write lock.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.Lock()
	value, ok = c.lru.Get(key)
	c.lock.Unlock()
	return value, ok
}

// filled is the result of one fill flight.
type filled[K comparable, V any] struct {
	key   K
	value V
}

// GetOrFill returns the cached value for key, calling fill on a miss and
// caching what it returns. Concurrent misses on the same key share a single
// fill call. Errors from fill are returned and nothing is cached.
func (c *Cache[K, V]) GetOrFill(key K, fill func(key K) (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	res, err, _ := c.fills.Do(fmt.Sprintf("%T/%v", key, key), func() (any, error) {
		// a fill that finished between our miss and this call already stored it
		if value, ok := c.Get(key); ok {
			return filled[K, V]{key, value}, nil
		}
		value, err := fill(key)
		if err != nil {
			return nil, err
		}
		// an Add that landed while fill ran is newer than what fill loaded
		if resident, ok, _ := c.PeekOrAdd(key, value); ok {
			return filled[K, V]{key, resident}, nil
		}
		return filled[K, V]{key, value}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	f := res.(filled[K, V])
	if f.key != key && selfEqual(key) {
		// joined the flight of a different key that formats the same
		return c.GetOrFill(key, fill)
	}
	return f.value, nil
}

// selfEqual is false for keys that never compare equal, such as NaN.
func selfEqual[K comparable](key K) bool {
	return key == key
}

// Contains checks if a key is in the cache, without updating the
// recent-ness or deleting it for being stale.
func (c *Cache[K, V]) Contains(key K) bool {
	c.lock.RLock()
	containKey := c.lru.Contains(key)
	c.lock.RUnlock()
	return containKey
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.lock.RLock()
	value, ok = c.lru.Peek(key)
	c.lock.RUnlock()
	return value, ok
}

// ContainsOrAdd checks if a key is in the cache without updating the
// recent-ness or deleting it for being stale, and if not, adds the value.
// Returns whether found and whether an eviction occurred.
func (c *Cache[K, V]) ContainsOrAdd(key K, value V) (ok, evicted bool) {
	c.lock.Lock()
	if c.lru.Contains(key) {
		c.lock.Unlock()
		return true, false
	}
	evicted = c.lru.Add(key, value)
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
	return false, evicted
}

// PeekOrAdd checks if a key is in the cache without updating the
// recent-ness or deleting it for being stale, and if not, adds the value.
// Returns whether found and whether an eviction occurred.
func (c *Cache[K, V]) PeekOrAdd(key K, value V) (previous V, ok, evicted bool) {
	c.lock.Lock()
	previous, ok = c.lru.Peek(key)
	if ok {
		c.lock.Unlock()
		return previous, true, false
	}
	evicted = c.lru.Add(key, value)
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
	return previous, false, evicted
}

// Remove removes the provided key from the cache.
func (c *Cache[K, V]) Remove(key K) (present bool) {
	c.lock.Lock()
	present = c.lru.Remove(key)
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
	return
}

// Resize changes the cache size.
func (c *Cache[K, V]) Resize(size int) (evicted int) {
	c.lock.Lock()
	evicted = c.lru.Resize(size)
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
	return evicted
}

// RemoveOldest removes the oldest item from the cache.
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	c.lock.Lock()
	key, value, ok = c.lru.RemoveOldest()
	ks, vs := c.takeEvicted()
	c.lock.Unlock()
	c.notify(ks, vs)
	return
}

// GetOldest returns the oldest entry
func (c *Cache[K, V]) GetOldest() (key K, value V, ok bool) {
	c.lock.RLock()
	key, value, ok = c.lru.GetOldest()
	c.lock.RUnlock()
	return
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *Cache[K, V]) Keys() []K {
	c.lock.RLock()
	keys := c.lru.Keys()
	c.lock.RUnlock()
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *Cache[K, V]) Values() []V {
	c.lock.RLock()
	values := c.lru.Values()
	c.lock.RUnlock()
	return values
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	length := c.lru.Len()
	c.lock.RUnlock()
	return length
}

// Cap returns the capacity of the cache.
func (c *Cache[K, V]) Cap() int {
	c.lock.RLock()
	size := c.lru.Cap()
	c.lock.RUnlock()
	return size
}
