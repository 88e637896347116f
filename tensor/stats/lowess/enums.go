// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lowess

import "cogentcore.org/lowess/base/enums"

var _FamiliesNames = []string{"Gaussian", "Symmetric"}

// String returns the string representation of this Families value.
func (i Families) String() string { return enums.String(i, _FamiliesNames) }

// Int64 returns the Families value as an int64.
func (i Families) Int64() int64 { return int64(i) }

// SetString sets the Families value from its string representation.
func (i *Families) SetString(s string) error {
	return enums.SetString(i, s, _FamiliesNames, "Families")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Families) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Families) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _FamiliesNames, "Families")
}

var _SEMethodsNames = []string{"Global", "Local"}

// String returns the string representation of this SEMethods value.
func (i SEMethods) String() string { return enums.String(i, _SEMethodsNames) }

// Int64 returns the SEMethods value as an int64.
func (i SEMethods) Int64() int64 { return int64(i) }

// SetString sets the SEMethods value from its string representation.
func (i *SEMethods) SetString(s string) error {
	return enums.SetString(i, s, _SEMethodsNames, "SEMethods")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SEMethods) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SEMethods) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _SEMethodsNames, "SEMethods")
}

var _PoliciesNames = []string{"Mean", "Skip", "Fail"}

// String returns the string representation of this Policies value.
func (i Policies) String() string { return enums.String(i, _PoliciesNames) }

// Int64 returns the Policies value as an int64.
func (i Policies) Int64() int64 { return int64(i) }

// SetString sets the Policies value from its string representation.
func (i *Policies) SetString(s string) error {
	return enums.SetString(i, s, _PoliciesNames, "Policies")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Policies) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Policies) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _PoliciesNames, "Policies")
}
