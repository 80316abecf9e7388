// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale_test

import (
	"testing"
	"time"

	"cloudeng.io/datelist/locale"
	"cloudeng.io/errors"
)

func TestLookup(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want string
	}{
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"pt-PT", "pt-PT"},
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"en-GB", "en-GB"},
		{"es", "es"},
		{"fr", "fr"},
		{"de", "de"},
		{"it", "it"},
	} {
		l, err := locale.Lookup(tc.tag)
		if err != nil {
			t.Errorf("%v: %v", tc.tag, err)
			continue
		}
		if got, want := l.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.tag, got, want)
		}
	}

	for _, tag := range []string{"ja", "zh-Hant", "not a tag!"} {
		_, err := locale.Lookup(tag)
		if !errors.Is(err, locale.ErrUnsupported) {
			t.Errorf("%v: expected ErrUnsupported, got %v", tag, err)
		}
	}

	if got, want := locale.Default().String(), "pt-BR"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(locale.Supported()), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLongDate(t *testing.T) {
	apr1 := time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC)
	mar2 := time.Date(2018, time.March, 2, 0, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		tag  string
		when time.Time
		want string
	}{
		{"pt-BR", apr1, "01 de abril de 2020"},
		{"pt-BR", mar2, "02 de março de 2018"},
		{"pt-PT", mar2, "02 de março de 2018"},
		{"en-US", apr1, "April 01, 2020"},
		{"en-GB", apr1, "01 April 2020"},
		{"es", apr1, "01 de abril de 2020"},
		{"fr", mar2, "02 mars 2018"},
		{"de", mar2, "02. März 2018"},
		{"it", apr1, "01 aprile 2020"},
		{"pt-BR", time.Date(100, time.December, 25, 0, 0, 0, 0, time.UTC), "25 de dezembro de 100"},
		{"en-US", time.Date(2021, time.May, 9, 23, 0, 0, 0, time.FixedZone("X", -3*3600)), "May 09, 2021"},
	} {
		l := locale.MustLookup(tc.tag)
		if got, want := l.LongDate(tc.when), tc.want; got != want {
			t.Errorf("%v: got %q, want %q", tc.tag, got, want)
		}
	}
}

func TestMonthName(t *testing.T) {
	for _, tc := range []struct {
		tag   string
		month time.Month
		want  string
	}{
		{"pt-BR", time.January, "janeiro"},
		{"pt-BR", time.March, "março"},
		{"en-GB", time.May, "May"},
		{"es", time.December, "diciembre"},
		{"fr", time.August, "août"},
		{"de", time.May, "Mai"},
		{"it", time.June, "giugno"},
	} {
		if got, want := locale.MustLookup(tc.tag).MonthName(tc.month), tc.want; got != want {
			t.Errorf("%v: %v: got %q, want %q", tc.tag, tc.month, got, want)
		}
	}
}

func TestJoin(t *testing.T) {
	abc := []string{"A", "B", "C"}
	for _, tc := range []struct {
		tag   string
		lt    locale.ListType
		items []string
		want  string
	}{
		{"pt-BR", locale.Conjunction, nil, ""},
		{"pt-BR", locale.Conjunction, []string{"A"}, "A"},
		{"pt-BR", locale.Conjunction, []string{"A", "B"}, "A e B"},
		{"pt-BR", locale.Conjunction, abc, "A, B e C"},
		{"pt-BR", locale.Disjunction, abc, "A, B ou C"},
		{"en-US", locale.Conjunction, []string{"A", "B"}, "A and B"},
		{"en-US", locale.Conjunction, abc, "A, B, and C"},
		{"en-US", locale.Disjunction, abc, "A, B, or C"},
		{"en-GB", locale.Conjunction, abc, "A, B and C"},
		{"es", locale.Conjunction, abc, "A, B y C"},
		{"fr", locale.Disjunction, []string{"A", "B"}, "A ou B"},
		{"de", locale.Conjunction, []string{"A", "B", "C", "D"}, "A, B, C und D"},
		{"it", locale.Disjunction, abc, "A, B o C"},
	} {
		l := locale.MustLookup(tc.tag)
		if got, want := l.Join(tc.lt, tc.items), tc.want; got != want {
			t.Errorf("%v: %v: got %q, want %q", tc.tag, tc.lt, got, want)
		}
	}
}

func TestListType(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want locale.ListType
	}{
		{"conjunction", locale.Conjunction},
		{"Disjunction", locale.Disjunction},
		{" CONJUNCTION ", locale.Conjunction},
	} {
		lt, err := locale.ParseListType(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := lt, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := lt.String(), tc.want.String(); got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	if _, err := locale.ParseListType("unit"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := locale.ListType(7).String(), "ListType(7)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
