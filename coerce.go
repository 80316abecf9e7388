// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"fmt"

	"cloudeng.io/errors"
)

// Hint is the representation requested of a value when it is coerced.
type Hint int

const (
	// HintDefault requests whatever representation the value prefers.
	HintDefault Hint = iota
	// HintString requests a textual representation.
	HintString
	// HintNumber requests a numeric representation.
	HintNumber
)

func (h Hint) String() string {
	switch h {
	case HintDefault:
		return "default"
	case HintString:
		return "string"
	case HintNumber:
		return "number"
	}
	return fmt.Sprintf("Hint(%d)", int(h))
}

// ErrTypeCoercion can be used with errors.Is to test for a TypeCoercionError.
var ErrTypeCoercion = errors.New("type coercion error")

// TypeCoercionError is returned when a value refuses to be coerced to
// the requested representation. It indicates a programming error, such
// as attempting arithmetic on a Collection, rather than a transient failure.
type TypeCoercionError struct {
	Hint  Hint
	Label string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("datelist: cannot convert %v to %v", objectLabel(e.Label), e.Hint)
}

// Is supports errors.Is for ErrTypeCoercion.
func (e *TypeCoercionError) Is(target error) bool {
	return target == ErrTypeCoercion
}

// NumberCoercer is implemented by values that may be used in arithmetic.
type NumberCoercer interface {
	Number() (float64, error)
}

// Add returns v + n, provided that v can be coerced to a number.
func Add(v NumberCoercer, n float64) (float64, error) {
	f, err := v.Number()
	if err != nil {
		return 0, err
	}
	return f + n, nil
}

func (c *Collection) coercionError(hint Hint) error {
	return &TypeCoercionError{Hint: hint, Label: c.opts.label}
}

// Coerce returns the representation requested by hint. Only HintString
// is supported, all other hints return a *TypeCoercionError.
func (c *Collection) Coerce(hint Hint) (string, error) {
	if hint != HintString {
		return "", c.coercionError(hint)
	}
	return c.DisplayString(), nil
}

// Number always returns a *TypeCoercionError since a Collection has
// no numeric representation.
func (c *Collection) Number() (float64, error) {
	return 0, c.coercionError(HintNumber)
}

// Format implements fmt.Formatter. The %s, %v and %q verbs format the
// value returned by DisplayString, all other verbs are reported as a
// type coercion error in the same manner as fmt reports bad verbs,
// eg. %!d(datelist: cannot convert [object What?] to number).
func (c *Collection) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.DisplayString())
	default:
		fmt.Fprintf(f, "%%!%c(%v)", verb, c.coercionError(HintNumber))
	}
}
