// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli sets up configuration structs from `default:` struct tags,
// TOML config files, and command line flags, in increasing precedence.
package cli

import (
	"cogentcore.org/lowess/base/errors"
	"cogentcore.org/lowess/base/reflectx"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}
