// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/lowess/base/enums"

var _RolesNames = []string{"NoRole", "X", "Y", "Low", "High", "Size", "Color", "Label"}

// String returns the string representation of this Roles value.
func (i Roles) String() string { return enums.String(i, _RolesNames) }

// Int64 returns the Roles value as an int64.
func (i Roles) Int64() int64 { return int64(i) }

// SetString sets the Roles value from its string representation.
func (i *Roles) SetString(s string) error {
	return enums.SetString(i, s, _RolesNames, "Roles")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Roles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Roles) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _RolesNames, "Roles")
}

// RolesValues returns all possible values for the type Roles.
func RolesValues() []Roles { return enums.Values[Roles](_RolesNames) }

var _ThemesNames = []string{"Gray", "Light", "Minimal", "Classic", "Dark"}

// String returns the string representation of this Themes value.
func (i Themes) String() string { return enums.String(i, _ThemesNames) }

// Int64 returns the Themes value as an int64.
func (i Themes) Int64() int64 { return int64(i) }

// SetString sets the Themes value from its string representation.
func (i *Themes) SetString(s string) error {
	return enums.SetString(i, s, _ThemesNames, "Themes")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Themes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Themes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _ThemesNames, "Themes")
}

// ThemesValues returns all possible values for the type Themes.
func ThemesValues() []Themes { return enums.Values[Themes](_ThemesNames) }

var _ShapesNames = []string{"Ring", "Circle", "Square", "Box", "Triangle", "Pyramid", "Plus", "Cross"}

// String returns the string representation of this Shapes value.
func (i Shapes) String() string { return enums.String(i, _ShapesNames) }

// Int64 returns the Shapes value as an int64.
func (i Shapes) Int64() int64 { return int64(i) }

// SetString sets the Shapes value from its string representation.
func (i *Shapes) SetString(s string) error {
	return enums.SetString(i, s, _ShapesNames, "Shapes")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Shapes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Shapes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, _ShapesNames, "Shapes")
}

// ShapesValues returns all possible values for the type Shapes.
func ShapesValues() []Shapes { return enums.Values[Shapes](_ShapesNames) }
