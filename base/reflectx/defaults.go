// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for configuration structs.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"cogentcore.org/lowess/base/errors"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct pointer
// based on `default:` field tags. Struct fields without a tag, including
// embedded ones, are set recursively.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not a non-nil pointer", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not a pointer to a struct", obj)
	}
	return setFromDefaultTags(val)
}

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaultTags(fv))
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
)

// SetFromString sets the given settable value from its string representation.
// Types implementing [encoding.TextUnmarshaler] (such as enums) use that,
// and otherwise strings, bools, numbers and durations are supported.
func SetFromString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return fmt.Errorf("value of type %s is not settable", v.Type())
	}
	if v.Addr().Type().Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
