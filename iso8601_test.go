// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist_test

import (
	"testing"
	"time"

	"cloudeng.io/datelist"
	"cloudeng.io/errors"
)

func TestISO8601(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	for _, tc := range []struct {
		when   time.Time
		output string
	}{
		{time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), "2020-04-01T00:00:00.000Z"},
		{time.Date(2020, 4, 1, 0, 0, 0, 0, brt), "2020-04-01T03:00:00.000Z"},
		{time.Date(2018, 3, 2, 23, 59, 59, 123456789, time.UTC), "2018-03-02T23:59:59.123Z"},
		{time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), "0001-01-01T00:00:00.000Z"},
		{time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC), "+010000-01-01T00:00:00.000Z"},
		{time.Date(-1, 6, 15, 12, 0, 0, 0, time.UTC), "-000001-06-15T12:00:00.000Z"},
		{time.Date(-4, 2, 29, 0, 0, 0, 0, time.UTC), "-000004-02-29T00:00:00.000Z"},
	} {
		if got, want := datelist.FormatISO8601(tc.when), tc.output; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
		parsed, err := datelist.ParseISO8601(tc.output)
		if err != nil {
			t.Errorf("%v: %v", tc.output, err)
			continue
		}
		if got, want := parsed, tc.when.Truncate(time.Millisecond); !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.output, got, want)
		}
	}

	for _, tc := range []string{
		"",
		"2020-04-01",
		"2020-04-01T00:00:00Z",
		"2020-13-01T00:00:00.000Z",
		"+10000-01-01T00:00:00.000Z",
		"+01000a-01-01T00:00:00.000Z",
		"-000001-02-29T00:00:00.000Z",
	} {
		if _, err := datelist.ParseISO8601(tc); !errors.Is(err, datelist.ErrInvalidISO8601) {
			t.Errorf("%q: expected ErrInvalidISO8601, got %v", tc, err)
		}
	}
}
