// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides the small amount of locale specific formatting
// needed to render lists of dates: long-form dates (two digit day, full
// month name, numeric year) and natural language list joining.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// ErrUnsupported is returned for locales that cannot be matched to any
// of the supported locales.
var ErrUnsupported = errors.New("unsupported locale")

// Locale represents one of the supported locales.
type Locale struct {
	tag        language.Tag
	dates      monday.Locale
	dateLayout string // time layout, {y} is replaced by the numeric year.
	lists      [numListTypes]listPattern
}

// supported is ordered so that the first entry is the default used by
// the matcher, and so that a bare language (eg. "pt") prefers the first
// region listed for it.
var supported = []Locale{
	{
		tag:        language.BrazilianPortuguese,
		dates:      monday.LocalePtBR,
		dateLayout: "02 de January de {y}",
		lists:      listsFor(" e ", " e ", " ou ", " ou "),
	},
	{
		tag:        language.EuropeanPortuguese,
		dates:      monday.LocalePtPT,
		dateLayout: "02 de January de {y}",
		lists:      listsFor(" e ", " e ", " ou ", " ou "),
	},
	{
		tag:        language.AmericanEnglish,
		dates:      monday.LocaleEnUS,
		dateLayout: "January 02, {y}",
		lists:      listsFor(" and ", ", and ", " or ", ", or "),
	},
	{
		tag:        language.BritishEnglish,
		dates:      monday.LocaleEnGB,
		dateLayout: "02 January {y}",
		lists:      listsFor(" and ", " and ", " or ", " or "),
	},
	{
		tag:        language.Spanish,
		dates:      monday.LocaleEsES,
		dateLayout: "02 de January de {y}",
		lists:      listsFor(" y ", " y ", " o ", " o "),
	},
	{
		tag:        language.French,
		dates:      monday.LocaleFrFR,
		dateLayout: "02 January {y}",
		lists:      listsFor(" et ", " et ", " ou ", " ou "),
	},
	{
		tag:        language.German,
		dates:      monday.LocaleDeDE,
		dateLayout: "02. January {y}",
		lists:      listsFor(" und ", " und ", " oder ", " oder "),
	},
	{
		tag:        language.Italian,
		dates:      monday.LocaleItIT,
		dateLayout: "02 January {y}",
		lists:      listsFor(" e ", " e ", " o ", " o "),
	},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.tag
	}
	matcher = language.NewMatcher(tags)
}

// Default returns the default locale, pt-BR.
func Default() Locale {
	return supported[0]
}

// Supported returns the tags of all supported locales.
func Supported() []string {
	r := make([]string, len(supported))
	for i, l := range supported {
		r[i] = l.tag.String()
	}
	return r
}

// Lookup returns the supported Locale that best matches the supplied
// BCP 47 tag, eg. "pt-BR", "en", "fr-CA".
func Lookup(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("%q: %v: %w", tag, err, ErrUnsupported)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Locale{}, fmt.Errorf("%q: %w", tag, ErrUnsupported)
	}
	return supported[idx], nil
}

// MustLookup is like Lookup but panics on error.
func MustLookup(tag string) Locale {
	l, err := Lookup(tag)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the language tag for the locale.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) String() string {
	return l.tag.String()
}

// MonthName returns the full name of the month in this locale.
func (l Locale) MonthName(m time.Month) string {
	return monday.Format(time.Date(2000, m, 1, 0, 0, 0, 0, time.UTC), "January", l.dates)
}

// LongDate formats t using the long form for this locale with a two
// digit day, the full month name and a numeric year. The date is that
// of t's own location. The year is not zero padded, unlike the 2006
// layout element.
func (l Locale) LongDate(t time.Time) string {
	return strings.Replace(monday.Format(t, l.dateLayout, l.dates), "{y}", strconv.Itoa(t.Year()), 1)
}
