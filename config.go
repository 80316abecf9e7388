// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"time"

	"cloudeng.io/datelist/locale"
	"cloudeng.io/errors"
)

// Config represents the configuration of a Collection as read from
// a YAML file, eg:
//
//	locale: pt-BR
//	list_type: conjunction
//	delay: 100ms
//	location: America/Sao_Paulo
//	dates:
//	  - 2020-04-01
//	  - 2018-03-02
type Config struct {
	Locale   string          `yaml:"locale" cmd:"BCP 47 locale used to display dates, eg. pt-BR"`
	ListType locale.ListType `yaml:"list_type" cmd:"conjunction or disjunction"`
	Delay    time.Duration   `yaml:"delay" cmd:"delay before each asynchronously produced date"`
	Location string          `yaml:"location" cmd:"IANA time zone name, defaults to the local time zone"`
	Label    string          `yaml:"label" cmd:"type label reported for the collection"`
	Dates    []CalendarDate  `yaml:"dates" cmd:"dates in 2006-01-02, 01/02/2006 or Jan-02-2006 format"`
}

// Options returns the Options represented by the config. Unset fields
// are left at their defaults.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	errs := &errors.M{}
	if len(c.Locale) > 0 {
		_, err := locale.Lookup(c.Locale)
		errs.Append(err)
		opts = append(opts, WithLocale(c.Locale))
	}
	opts = append(opts, WithListType(c.ListType))
	if c.Delay != 0 {
		opts = append(opts, WithDelay(c.Delay))
	}
	if len(c.Location) > 0 {
		loc, err := time.LoadLocation(c.Location)
		errs.Append(err)
		opts = append(opts, WithLocation(loc))
	}
	if len(c.Label) > 0 {
		opts = append(opts, WithLabel(c.Label))
	}
	return opts, errs.Err()
}

// Parts returns the date construction arguments for the configured dates.
func (c Config) Parts() []Parts {
	groups := make([]Parts, len(c.Dates))
	for i, d := range c.Dates {
		groups[i] = d.Parts()
	}
	return groups
}

// NewCollection creates a new Collection using the config.
func (c Config) NewCollection() (*Collection, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(c.Parts(), opts...)
}
