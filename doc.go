// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package lru provides a fixed size cache with least-recently-used eviction.
//
// The eviction logic lives in the simplelru subpackage, which is not safe for
// concurrent use. Cache wraps it with a single lock, delivers eviction
// callbacks outside that lock and adds GetOrFill for memoizing loaders.
//
// Entries are kept in one slice and linked by slot index, so Get and Add run
// in constant time without a separate heap object per entry once the cache is
// warm.
package lru
