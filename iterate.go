// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"iter"
	"time"
)

// Iterate returns a sequence of the dates in the collection in the order
// they were supplied to New. Each call to the returned sequence starts
// from the first date.
func (c *Collection) Iterate() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for _, t := range c.items {
			if !yield(t) {
				return
			}
		}
	}
}

// Iterator provides explicit, stateful, iteration over a Collection.
// Typical usage is:
//
//	it := c.Iterator()
//	for it.Next() {
//		t := it.Value()
//	}
type Iterator struct {
	items []time.Time
	next  int
	value time.Time
}

// Iterator returns a new Iterator positioned before the first date.
func (c *Collection) Iterator() *Iterator {
	return &Iterator{items: c.items}
}

// HasNext returns true if a subsequent call to Next will return true.
func (it *Iterator) HasNext() bool {
	return it.next < len(it.items)
}

// Next advances the iterator and returns true if a date is available
// via Value.
func (it *Iterator) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.value = it.items[it.next]
	it.next++
	return true
}

// Value returns the date that the iterator is currently positioned at.
func (it *Iterator) Value() time.Time {
	return it.value
}
