// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a small set of error helpers that extend the
// standard library errors package with slog-based logging of error sites.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error with the given text, as in the standard library.
func New(text string) error {
	return errors.New(text)
}

// Newf returns a formatted error, equivalent to [fmt.Errorf].
func Newf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Join wraps [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is wraps [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Log logs the given error to slog at the Error level if it is non-nil,
// including the file and line of the caller, and returns it unchanged.
// It is designed for convenient one-line error handling at the site
// where an error is first observed:
//
//	if errors.Log(err) != nil {
//	    return err
//	}
func Log(err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error(), "from", caller(2))
	return err
}

// Log1 is a version of [Log] for functions returning a value and an error.
// It logs any error and returns the value:
//
//	device := errors.Log1(NewDevice(gp))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "from", caller(2))
	}
	return v
}

// Ignore1 returns the value, ignoring any error.
// Use only where the error is genuinely impossible or irrelevant.
func Ignore1[T any](v T, err error) T {
	return v
}

// Must panics if the given error is non-nil.
// It should only be used during startup for errors that
// make it impossible to proceed.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// caller returns a file:line description of the caller at the
// given number of stack frames up.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
