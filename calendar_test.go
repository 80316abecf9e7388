// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist_test

import (
	"reflect"
	"testing"

	"cloudeng.io/datelist"
)

func TestParseCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want datelist.CalendarDate
	}{
		{"2020-04-01", datelist.CalendarDate{Year: 2020, Month: 4, Day: 1}},
		{"2018-3-2", datelist.CalendarDate{Year: 2018, Month: 3, Day: 2}},
		{"04/01/2020", datelist.CalendarDate{Year: 2020, Month: 4, Day: 1}},
		{"Apr-01-2020", datelist.CalendarDate{Year: 2020, Month: 4, Day: 1}},
		{"feb-29-2024", datelist.CalendarDate{Year: 2024, Month: 2, Day: 29}},
		{"SEPT-30-2021", datelist.CalendarDate{Year: 2021, Month: 9, Day: 30}},
		{"december-25-2021", datelist.CalendarDate{Year: 2021, Month: 12, Day: 25}},
		{"12/31/1900", datelist.CalendarDate{Year: 1900, Month: 12, Day: 31}},
		{"2000-02-29", datelist.CalendarDate{Year: 2000, Month: 2, Day: 29}},
	} {
		cd, err := datelist.ParseCalendarDate(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := cd, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, val := range []string{"", "2020", "2020-04", "2020-04-01-01", "2023-02-29",
		"Apr-31-2020", "13/01/2020", "xxxx-01-01", "2020-01-xx",
		"1900-02-29", "00/01/2020", "-01-2020", "ma-01-2020", "Smarch-01-2020"} {
		if _, err := datelist.ParseCalendarDate(val); err == nil {
			t.Errorf("%v: failed to return an error", val)
		}
	}

	groups, err := datelist.ParseCalendarDates("2020-04-01", " 2018-03-02 ")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := groups, []datelist.Parts{{2020, 3, 1}, {2018, 2, 2}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := datelist.ParseCalendarDates("2020-04-01", "bad"); err == nil {
		t.Errorf("failed to return an error")
	}

	cd := datelist.CalendarDate{Year: 2020, Month: 4, Day: 1}
	if got, want := cd.String(), "2020-04-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
