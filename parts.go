// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
)

// ErrInvalidParts is returned for date construction arguments that
// contain no values or more than seven values.
var ErrInvalidParts = errors.New("invalid date parts")

// Parts are the arguments used to construct a single calendar date.
//
// A single value is interpreted as milliseconds since the Unix epoch.
// Otherwise the values are, in order: year, month index (0-11), day,
// hours, minutes, seconds and milliseconds, with day defaulting to 1 and
// the remainder to 0. Two digit years (0-99) refer to 1900-1999. Values
// outside of their natural range overflow into the next unit, so a month
// index of 12 is January of the following year and a day of 0 is the
// last day of the preceding month.
type Parts []int

// Time returns the time.Time represented by p in the specified location.
func (p Parts) Time(loc *time.Location) (time.Time, error) {
	if len(p) == 0 || len(p) > 7 {
		return time.Time{}, fmt.Errorf("%v: %d values: %w", p, len(p), ErrInvalidParts)
	}
	if loc == nil {
		loc = time.Local
	}
	if len(p) == 1 {
		return time.UnixMilli(int64(p[0])).In(loc), nil
	}
	f := [7]int{0, 0, 1, 0, 0, 0, 0}
	copy(f[:], p)
	year := f[0]
	if year >= 0 && year <= 99 {
		year += 1900
	}
	return time.Date(year, time.Month(f[1]+1), f[2], f[3], f[4], f[5],
		f[6]*int(time.Millisecond), loc), nil
}
