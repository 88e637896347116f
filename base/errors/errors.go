// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}

// New is a wrapper around the standard library errors.New.
func New(text string) error {
	return errors.New(text)
}

// Is is a wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is a wrapper around the standard library errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
