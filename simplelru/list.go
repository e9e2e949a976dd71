// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package simplelru

// none marks an absent link.
const none = -1

// entry is a slot in the arena. next and prev are slot indices, or none.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  int
	prev  int
}

// lruList is a doubly linked list whose nodes live in a single slice.
// Front is the most recently used entry, back the least recently used.
// Released slots are chained through next and reused before the slice grows.
type lruList[K comparable, V any] struct {
	slots []entry[K, V]
	head  int
	tail  int
	free  int
	len   int
}

func newList[K comparable, V any]() *lruList[K, V] {
	return new(lruList[K, V]).init()
}

// init clears the list and drops every key and value held by the arena.
func (l *lruList[K, V]) init() *lruList[K, V] {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.head = none
	l.tail = none
	l.free = none
	l.len = 0
	return l
}

func (l *lruList[K, V]) length() int { return l.len }

func (l *lruList[K, V]) front() int { return l.head }

func (l *lruList[K, V]) back() int { return l.tail }

// at returns the entry stored in slot i.
func (l *lruList[K, V]) at(i int) *entry[K, V] { return &l.slots[i] }

// alloc returns an unlinked slot holding key and value.
func (l *lruList[K, V]) alloc(key K, value V) int {
	if l.free != none {
		i := l.free
		l.free = l.slots[i].next
		l.slots[i] = entry[K, V]{key: key, value: value, next: none, prev: none}
		return i
	}
	l.slots = append(l.slots, entry[K, V]{key: key, value: value, next: none, prev: none})
	return len(l.slots) - 1
}

// release zeroes slot i and puts it on the free chain. i must be unlinked.
func (l *lruList[K, V]) release(i int) {
	l.slots[i] = entry[K, V]{next: l.free, prev: none}
	l.free = i
}

// unlink splices slot i out of the chain.
func (l *lruList[K, V]) unlink(i int) {
	e := &l.slots[i]
	if e.prev != none {
		l.slots[e.prev].next = e.next
	} else {
		l.head = e.next
	}
	if e.next != none {
		l.slots[e.next].prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.next = none
	e.prev = none
	l.len--
}

// pushFront links the unlinked slot i in front of head.
func (l *lruList[K, V]) pushFront(i int) {
	e := &l.slots[i]
	e.prev = none
	e.next = l.head
	if l.head != none {
		l.slots[l.head].prev = i
	}
	l.head = i
	if l.tail == none {
		l.tail = i
	}
	l.len++
}

// moveToFront marks slot i as the most recently used.
func (l *lruList[K, V]) moveToFront(i int) {
	if l.head == i {
		return
	}
	l.unlink(i)
	l.pushFront(i)
}

// insert stores key and value in a fresh slot at the front of the list.
func (l *lruList[K, V]) insert(key K, value V) int {
	i := l.alloc(key, value)
	l.pushFront(i)
	return i
}

// remove unlinks slot i, frees it and returns what it held.
func (l *lruList[K, V]) remove(i int) (key K, value V) {
	l.unlink(i)
	e := &l.slots[i]
	key, value = e.key, e.value
	l.release(i)
	return key, value
}
