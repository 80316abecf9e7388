// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"context"
	"iter"
	"reflect"
	"time"
)

// Labeler is implemented by values that report a custom type label
// for use by Describe.
type Labeler interface {
	TypeLabel() string
}

// Coercible represents the capabilities of a Collection that are
// used by generic operations: display, type description and the
// synchronous and asynchronous iteration of its contents.
type Coercible interface {
	Labeler
	DisplayString() string
	Iterate() iter.Seq[time.Time]
	IterateAsync(ctx context.Context) iter.Seq2[string, error]
}

var _ Coercible = (*Collection)(nil)

func objectLabel(label string) string {
	return "[object " + label + "]"
}

// Describe returns a generic description of v's type of the form
// "[object <label>]". The label is the value returned by TypeLabel
// for values that implement Labeler and is otherwise derived from v's
// kind: Null, Date, Error, String, Number, Boolean, Array, Function
// or Object.
func Describe(v any) string {
	return objectLabel(defaultLabel(v))
}

func defaultLabel(v any) string {
	if v == nil {
		return "Null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return "Null"
		}
	}
	switch tv := v.(type) {
	case Labeler:
		return tv.TypeLabel()
	case time.Time, *time.Time:
		return "Date"
	case error:
		return "Error"
	}
	switch rv.Kind() {
	case reflect.String:
		return "String"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "Number"
	case reflect.Bool:
		return "Boolean"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Func:
		return "Function"
	}
	return "Object"
}
