// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

// ErrInvalidISO8601 is returned by ParseISO8601 for malformed timestamps.
var ErrInvalidISO8601 = errors.New("invalid ISO8601 timestamp")

const iso8601Layout = "2006-01-02T15:04:05.000Z"

// FormatISO8601 formats t in UTC as YYYY-MM-DDTHH:mm:ss.sssZ. Years outside
// of 0-9999 use the expanded six digit form with a leading sign,
// eg. +010000-01-01T00:00:00.000Z.
func FormatISO8601(t time.Time) string {
	t = t.UTC()
	year := t.Year()
	if year >= 0 && year <= 9999 {
		return t.Format(iso8601Layout)
	}
	sign := '+'
	if year < 0 {
		sign = '-'
		year = -year
	}
	return fmt.Sprintf("%c%06d%s", sign, year, t.Format(iso8601Layout[4:]))
}

// ParseISO8601 parses timestamps in the format produced by FormatISO8601.
func ParseISO8601(val string) (time.Time, error) {
	if len(val) == 0 {
		return time.Time{}, fmt.Errorf("empty timestamp: %w", ErrInvalidISO8601)
	}
	if val[0] != '+' && val[0] != '-' {
		t, err := time.Parse(iso8601Layout, val)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q: %w", val, ErrInvalidISO8601)
		}
		return t, nil
	}
	idx := strings.IndexByte(val[1:], '-')
	if idx != 6 {
		return time.Time{}, fmt.Errorf("%q: expected a six digit year: %w", val, ErrInvalidISO8601)
	}
	year, err := strconv.Atoi(val[1:7])
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: invalid year: %w", val, ErrInvalidISO8601)
	}
	if val[0] == '-' {
		year = -year
	}
	// Parse the remainder against a leap year so that Feb-29 is accepted,
	// then move it to the requested year.
	t, err := time.Parse(iso8601Layout, "2000"+val[7:])
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", val, ErrInvalidISO8601)
	}
	if t.Month() == time.February && t.Day() == 29 && !datetime.IsLeap(year) {
		return time.Time{}, fmt.Errorf("%q: day out of range: %w", val, ErrInvalidISO8601)
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
}
