// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/datelist/locale"
	"cloudeng.io/errors"
)

// DefaultLabel is the type label reported by a Collection unless
// overridden using WithLabel.
const DefaultLabel = "What?"

// DefaultDelay is the per-item delay used by the asynchronous iterators
// unless overridden using WithDelay.
const DefaultDelay = 100 * time.Millisecond

// Collection is an ordered, immutable, collection of calendar dates.
// It is safe for concurrent use since its contents are never modified
// after creation.
type Collection struct {
	items []time.Time
	opts  options
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	localeTag string
	listType  locale.ListType
	delay     time.Duration
	location  *time.Location
	label     string
	locale    locale.Locale
}

// WithLocale sets the locale, as a BCP 47 tag, used for DisplayString.
// The default is pt-BR.
func WithLocale(tag string) Option {
	return func(o *options) {
		o.localeTag = tag
	}
}

// WithListType sets the style used to join dates in DisplayString.
// The default is locale.Conjunction.
func WithListType(lt locale.ListType) Option {
	return func(o *options) {
		o.listType = lt
	}
}

// WithDelay sets the delay incurred before each item is produced by
// the asynchronous iterators. The default is DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// WithLocation sets the location used to interpret date construction
// arguments and to display dates. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithLabel overrides the type label returned by TypeLabel.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// New returns a new Collection containing one date per group of date
// construction arguments in the order supplied. All invalid groups, an
// unsupported locale and an undefined list type are reported in the
// returned error.
func New(groups []Parts, opts ...Option) (*Collection, error) {
	c := &Collection{}
	c.opts.localeTag = locale.Default().String()
	c.opts.listType = locale.Conjunction
	c.opts.delay = DefaultDelay
	c.opts.location = time.Local
	c.opts.label = DefaultLabel
	for _, fn := range opts {
		fn(&c.opts)
	}
	errs := &errors.M{}
	l, err := locale.Lookup(c.opts.localeTag)
	errs.Append(err)
	c.opts.locale = l
	errs.Append(c.opts.listType.Validate())
	c.items = make([]time.Time, 0, len(groups))
	for i, g := range groups {
		t, err := g.Time(c.opts.location)
		if err != nil {
			errs.Append(fmt.Errorf("group %d: %w", i, err))
			continue
		}
		c.items = append(c.items, t)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(groups []Parts, opts ...Option) *Collection {
	c, err := New(groups, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of dates in the collection.
func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the i'th date in the collection.
func (c *Collection) At(i int) time.Time {
	return c.items[i]
}

// Dates returns a copy of the dates in the collection.
func (c *Collection) Dates() []time.Time {
	return slices.Clone(c.items)
}

// Locale returns the locale used by DisplayString.
func (c *Collection) Locale() locale.Locale {
	return c.opts.locale
}

// DisplayString returns all of the dates in the collection, each in the
// long form for the collection's locale, joined as a natural language
// list, eg. "01 de abril de 2020 e 02 de março de 2018".
func (c *Collection) DisplayString() string {
	formatted := make([]string, len(c.items))
	for i, t := range c.items {
		formatted[i] = c.opts.locale.LongDate(t)
	}
	return c.opts.locale.Join(c.opts.listType, formatted)
}

// String implements fmt.Stringer.
func (c *Collection) String() string {
	return c.DisplayString()
}

// TypeLabel returns the collection's type label, DefaultLabel unless
// overridden with WithLabel.
func (c *Collection) TypeLabel() string {
	return c.opts.label
}
