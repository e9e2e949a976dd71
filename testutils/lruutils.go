// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package testutils holds behavioral checks shared by every LRUCache
// implementation in this module.
package testutils

import (
	"testing"

	"github.com/venkatsvpr/arenalru/simplelru"
)

func BasicTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int, evictCounter *int) {
	t.Helper()

	// add twice as much the capacity to check if eviction occurs
	for i := 0; i < 2*capacity; i++ {
		l.Add(i, i)
	}

	if l.Len() != capacity {
		t.Fatalf("bad len: %v", l.Len())
	}

	// half of them should be evicted to make room for the incoming ones
	if *evictCounter != capacity {
		t.Fatalf("bad evict count: %v", *evictCounter)
	}

	// cache should contain only the keys from capacity..2*capacity, anything before
	// that should have been evicted
	for i, k := range l.Keys() {
		if v, ok := l.Get(k); !ok || v != k || v != i+capacity {
			t.Fatalf("bad key: %v", k)
		}
	}

	for i := 0; i < capacity; i++ {
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be evicted")
		}
	}

	for i := capacity; i < 2*capacity; i++ {
		if _, ok := l.Get(i); !ok {
			t.Fatalf("should not be evicted")
		}
	}

	// delete half the items from cache
	lastIndex := capacity + capacity/2
	for i := capacity; i < lastIndex; i++ {
		if ok := l.Remove(i); !ok {
			t.Fatalf("should be contained")
		}
		if ok := l.Remove(i); ok {
			t.Fatalf("should not be contained")
		}
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be deleted")
		}
	}

	// this makes this item the most recently accessed; moved to the front
	l.Get(lastIndex)

	cacheLen := l.Len()
	if capacity-capacity/2 != cacheLen {
		t.Fatalf("invalid len. expected %v, got %v", capacity-capacity/2, cacheLen)
	}

	// Keys - returns items from oldest to newest.
	for i, k := range l.Keys() {
		// last item should be `lastIndex` and make sure the other items are ordered
		if (i == cacheLen-1 && k != lastIndex) || (i < cacheLen-1 && k != i+lastIndex+1) {
			t.Fatalf("out of order key: %v %v %v", i, k, cacheLen-1)
		}
	}

	l.Purge()
	if l.Len() != 0 {
		t.Fatalf("bad len: %v", l.Len())
	}

	if _, ok := l.Get(200); ok {
		t.Fatalf("should contain nothing")
	}
}

func GetOldestRemoveOldestTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int) {
	t.Helper()

	// add twice as much the capacity
	for i := 0; i < 2*capacity; i++ {
		l.Add(i, i)
	}

	k, _, ok := l.GetOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != capacity {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = l.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != capacity {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = l.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != capacity+1 {
		t.Fatalf("bad: %v", k)
	}
}

func AddTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int, evictCounter *int) {
	t.Helper()

	for i := 0; i < capacity; i++ {
		if l.Add(i, i) || *evictCounter != 0 {
			t.Errorf("should not have an eviction")
		}
	}
	if !l.Add(capacity, capacity) || *evictCounter != 1 {
		t.Errorf("should have an eviction")
	}
}

func ContainsTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int) {
	t.Helper()

	for i := 0; i < capacity; i++ {
		l.Add(i, i)
	}

	// contains should not update the recent-ness so this item will remain the oldest
	if !l.Contains(0) {
		t.Errorf("0 should be contained")
	}

	// oldest (0) should have been evicted
	l.Add(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("Contains should not have updated recent-ness of 0")
	}
}

func PeekTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int) {
	t.Helper()

	for i := 0; i < capacity; i++ {
		l.Add(i, i)
	}

	if v, ok := l.Peek(0); !ok || v != 0 {
		t.Errorf("0 should be set to 0: %v, %v", v, ok)
	}

	l.Add(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("should have been removed to make room for the new item")
	}
}

// ScenarioTest replays the two-slot walk-through every LRU must satisfy:
// reads refresh recency and each insert past capacity drops the oldest key.
func ScenarioTest(t *testing.T, l simplelru.LRUCache[int, int]) {
	t.Helper()

	if l.Cap() != 2 {
		t.Fatalf("scenario needs a cache of size 2, got %d", l.Cap())
	}

	l.Add(1, 1)
	l.Add(2, 2)
	if v, ok := l.Get(1); !ok || v != 1 {
		t.Fatalf("get 1: %v, %v", v, ok)
	}
	if !l.Add(3, 3) {
		t.Fatalf("adding 3 should evict")
	}
	if _, ok := l.Get(2); ok {
		t.Fatalf("2 should be evicted")
	}
	if !l.Add(4, 4) {
		t.Fatalf("adding 4 should evict")
	}
	if _, ok := l.Get(1); ok {
		t.Fatalf("1 should be evicted")
	}
	if v, ok := l.Get(3); !ok || v != 3 {
		t.Fatalf("get 3: %v, %v", v, ok)
	}
	if v, ok := l.Get(4); !ok || v != 4 {
		t.Fatalf("get 4: %v, %v", v, ok)
	}
}
