// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "cogentcore.org/lowess/base/enums"

var _DelimsNames = []string{"Tab", "Comma", "Space", "Detect"}

// DelimsN is the highest valid value for type Delims, plus one.
const DelimsN Delims = 4

// String returns the string representation of this Delims value.
func (i Delims) String() string { return enums.String(i, _DelimsNames) }

// SetString sets the Delims value from its string representation,
// and returns an error if the string is invalid.
func (i *Delims) SetString(s string) error {
	return enums.SetString(i, s, _DelimsNames, "Delims")
}

// Int64 returns the Delims value as an int64.
func (i Delims) Int64() int64 { return int64(i) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Delims) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Delims) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _DelimsNames, "Delims")
}
