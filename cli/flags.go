// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"reflect"

	"github.com/spf13/pflag"
)

// TextValue is a value that can be set from and written to text,
// such as an enum.
type TextValue interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// textFlag adapts a [TextValue] to a [pflag.Value].
type textFlag struct {
	v TextValue
}

func (tf *textFlag) String() string {
	if tf.v == nil || reflect.ValueOf(tf.v).IsNil() {
		return ""
	}
	b, err := tf.v.MarshalText()
	if err != nil {
		return ""
	}
	return string(b)
}

func (tf *textFlag) Set(s string) error {
	return tf.v.UnmarshalText([]byte(s))
}

func (tf *textFlag) Type() string {
	return reflect.TypeOf(tf.v).Elem().Name()
}

// TextVar defines a flag with the given name and usage for a value
// that is set from text. Its current value is the default shown in help.
func TextVar(fs *pflag.FlagSet, v TextValue, name, usage string) {
	fs.Var(&textFlag{v: v}, name, usage)
}
