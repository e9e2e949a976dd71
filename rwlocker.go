// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lru

import "sync"

// RWLocker is the locking surface Cache needs; *sync.RWMutex satisfies it.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

var (
	_ RWLocker = (*sync.RWMutex)(nil)
	_ RWLocker = NoOpRWLocker{}
)

// NoOpRWLocker turns Cache locking off for caches owned by one goroutine.
type NoOpRWLocker struct{}

// Lock does nothing.
func (NoOpRWLocker) Lock() {}

// Unlock does nothing.
func (NoOpRWLocker) Unlock() {}

// RLock does nothing.
func (NoOpRWLocker) RLock() {}

// RUnlock does nothing.
func (NoOpRWLocker) RUnlock() {}
