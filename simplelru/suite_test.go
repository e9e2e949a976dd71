// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package simplelru_test

import (
	"testing"

	"github.com/venkatsvpr/arenalru/simplelru"
	"github.com/venkatsvpr/arenalru/testutils"
)

func newCounting(t *testing.T, size int) (*simplelru.LRU[int, int], *int) {
	t.Helper()
	evictCounter := 0
	l, err := simplelru.NewLRU(size, func(k, v int) {
		if k != v {
			t.Fatalf("Evict values not equal (%v!=%v)", k, v)
		}
		evictCounter++
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return l, &evictCounter
}

func TestSuite(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 128} {
		l, counter := newCounting(t, capacity)
		testutils.BasicTest(t, l, capacity, counter)

		l, counter = newCounting(t, capacity)
		testutils.AddTest(t, l, capacity, counter)

		l, _ = newCounting(t, capacity)
		testutils.ContainsTest(t, l, capacity)

		l, _ = newCounting(t, capacity)
		testutils.PeekTest(t, l, capacity)
	}

	l, _ := newCounting(t, 64)
	testutils.GetOldestRemoveOldestTest(t, l, 64)

	l, _ = newCounting(t, 2)
	testutils.ScenarioTest(t, l)
}
