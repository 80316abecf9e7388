// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datelist provides Collection, an ordered and immutable collection
// of calendar dates that can be displayed as a localized natural language
// list, iterated over synchronously as time.Time values or asynchronously,
// with a per-item delay, as ISO8601 strings.
//
// A Collection is created from date construction arguments where the
// month is a 0-based index:
//
//	c, err := datelist.New([]datelist.Parts{{2020, 3, 1}, {2018, 2, 2}})
//	fmt.Println(c) // 01 de abril de 2020 e 02 de março de 2018
//
// A Collection has no numeric representation and any attempt to obtain
// one fails with a *TypeCoercionError:
//
//	_, err = datelist.Add(c, 1)
//	errors.Is(err, datelist.ErrTypeCoercion) // true
//
// Describe reports a Collection's custom type label:
//
//	datelist.Describe(c) // [object What?]
//
// The dates may be iterated over in the order they were supplied:
//
//	for t := range c.Iterate() {
//		...
//	}
//	for iso, err := range c.IterateAsync(ctx) {
//		...
//	}
//
// AwaitAll produces all of the asynchronous items concurrently.
package datelist
