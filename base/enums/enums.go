// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums
// and utilities for implementing them on int32 types
// with a fixed list of value names.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
// Enum types must be convertable to strings and int64s.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings, and from text for config files.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
	UnmarshalText(text []byte) error
}

// String returns the name of the given enum value from the list
// of names, or its integer value if it is out of range.
func String[T ~int32](i T, names []string) string {
	if i >= 0 && int(i) < len(names) {
		return names[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from the matching name in names,
// ignoring case. typ is the type name used in the error message.
func SetString[T ~int32](i *T, s string, names []string, typ string) error {
	for n, nm := range names {
		if strings.EqualFold(nm, s) {
			*i = T(n)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s (valid values: %s)", s, typ, strings.Join(names, ", "))
}

// UnmarshalText sets the given enum value from text, as used for
// decoding config files.
func UnmarshalText[T ~int32](i *T, text []byte, names []string, typ string) error {
	return SetString(i, string(text), names, typ)
}

// Values returns all of the values of an enum type with the given names.
func Values[T ~int32](names []string) []T {
	vals := make([]T, len(names))
	for n := range names {
		vals[n] = T(n)
	}
	return vals
}
