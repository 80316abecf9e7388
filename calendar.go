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
	"gopkg.in/yaml.v3"
)

// CalendarDate is a datetime.CalendarDate that is written and read in
// 2006-01-02 format and can be used to construct a Collection.
type CalendarDate datetime.CalendarDate

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// MarshalYAML implements yaml.Marshaler.
func (cd CalendarDate) MarshalYAML() (any, error) {
	return cd.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using ParseCalendarDate.
func (cd *CalendarDate) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseCalendarDate(value.Value)
	if err != nil {
		return err
	}
	*cd = v
	return nil
}

// Parts returns the date construction arguments for cd, ie. with a
// 0-based month index.
func (cd CalendarDate) Parts() Parts {
	return Parts{cd.Year, int(cd.Month) - 1, cd.Day}
}

const expectedCalendarDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// ParseCalendarDate parses a date in one of the formats '2006-01-02',
// '01/02/2006' or 'Jan-02-2006' with error checking for valid month and day.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var parts []string
	var year, month, day string
	switch {
	case strings.Contains(val, "/"):
		parts = strings.Split(val, "/")
		if len(parts) == 3 {
			month, day, year = parts[0], parts[1], parts[2]
		}
	case strings.Contains(val, "-"):
		parts = strings.Split(val, "-")
		if len(parts) == 3 {
			year, month, day = parts[0], parts[1], parts[2]
			if _, err := strconv.Atoi(parts[0]); err != nil {
				month, day, year = parts[0], parts[1], parts[2]
			}
		}
	}
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
	}
	var cd CalendarDate
	var err error
	if cd.Year, err = strconv.Atoi(year); err != nil {
		return CalendarDate{}, fmt.Errorf("invalid year: %s", year)
	}
	if cd.Month, err = parseMonth(month); err != nil {
		return CalendarDate{}, err
	}
	if cd.Day, err = strconv.Atoi(day); err != nil {
		return CalendarDate{}, fmt.Errorf("invalid day: %s", day)
	}
	if cd.Day < 1 || cd.Day > datetime.DaysInMonth(cd.Year, cd.Month) {
		return CalendarDate{}, fmt.Errorf("invalid day for %v %v: %d", time.Month(cd.Month), cd.Year, cd.Day)
	}
	return cd, nil
}

// ParseCalendarDates parses each of the supplied values as per
// ParseCalendarDate and returns the Parts for each of them.
func ParseCalendarDates(vals ...string) ([]Parts, error) {
	groups := make([]Parts, 0, len(vals))
	for _, v := range vals {
		cd, err := ParseCalendarDate(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		groups = append(groups, cd.Parts())
	}
	return groups, nil
}

// parseMonth parses a numeric month or a month name, requiring that names
// are at least three characters long so that abbreviations such as "ma"
// are not ambiguous.
func parseMonth(val string) (datetime.Month, error) {
	if m, err := datetime.ParseNumericMonth(val); err == nil {
		return m, nil
	}
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	return datetime.ParseMonth(val)
}
