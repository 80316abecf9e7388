// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidListType is returned for list types other than Conjunction
// and Disjunction.
var ErrInvalidListType = errors.New("invalid list type")

// ListType determines how the items of a list are joined.
type ListType int

const (
	// Conjunction joins items with the locale's "and", eg. "A, B e C".
	Conjunction ListType = iota
	// Disjunction joins items with the locale's "or", eg. "A, B ou C".
	Disjunction
	numListTypes
)

var listTypeNames = [numListTypes]string{"conjunction", "disjunction"}

func (lt ListType) String() string {
	if lt < 0 || lt >= numListTypes {
		return fmt.Sprintf("ListType(%d)", int(lt))
	}
	return listTypeNames[lt]
}

// ParseListType parses "conjunction" or "disjunction", in any case.
func ParseListType(val string) (ListType, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	for i, n := range listTypeNames {
		if n == lc {
			return ListType(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", val, ErrInvalidListType)
}

// Validate returns an error wrapping ErrInvalidListType if lt is not
// a defined list type.
func (lt ListType) Validate() error {
	if lt < 0 || lt >= numListTypes {
		return fmt.Errorf("%v: %w", lt, ErrInvalidListType)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (lt ListType) MarshalYAML() (any, error) {
	return lt.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (lt *ListType) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseListType(value.Value)
	if err != nil {
		return err
	}
	*lt = v
	return nil
}

// listPattern follows the CLDR long list patterns: pair is used between
// the only two items of a list, middle between all but the final two
// items of a longer list and end before the final item.
type listPattern struct {
	pair, middle, end string
}

func listsFor(and, andEnd, or, orEnd string) [numListTypes]listPattern {
	return [numListTypes]listPattern{
		Conjunction: {pair: and, middle: ", ", end: andEnd},
		Disjunction: {pair: or, middle: ", ", end: orEnd},
	}
}

// Join joins items as a natural language list of the requested type.
// An empty list yields "" and a single item is returned unchanged.
func (l Locale) Join(lt ListType, items []string) string {
	if lt < 0 || lt >= numListTypes {
		lt = Conjunction
	}
	p := l.lists[lt]
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + p.pair + items[1]
	}
	var out strings.Builder
	last := len(items) - 1
	for i, item := range items[:last] {
		if i > 0 {
			out.WriteString(p.middle)
		}
		out.WriteString(item)
	}
	out.WriteString(p.end)
	out.WriteString(items[last])
	return out.String()
}
