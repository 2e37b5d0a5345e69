// Copyright 2021 FerretDB Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lazyerrors provides a way to wrap errors with a file/line/function
// prefix without losing the ability to unwrap to the original error via
// errors.Is / errors.As.
package lazyerrors

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// lazyError wraps another error with caller information.
type lazyError struct {
	err error
	pc  uintptr
}

// New is similar to errors.New, but the returned error also records the
// file, line, and function of the caller.
func New(text string) error {
	return newError(errString(text), 1)
}

// Error is similar to fmt.Errorf("%w", err), but the returned error also
// records the file, line, and function of the caller.
//
// It returns nil if err is nil, so it is safe to call as
//
//	return lazyerrors.Error(err)
//
// at the end of a function.
func Error(err error) error {
	if err == nil {
		return nil
	}

	return newError(err, 1)
}

// Errorf is similar to fmt.Errorf, but the returned error also records the
// file, line, and function of the caller. The format string should normally
// include a %w verb to wrap the underlying error.
func Errorf(format string, args ...any) error {
	return newError(fmt.Errorf(format, args...), 1)
}

func newError(err error, skip int) *lazyError {
	pc, _, _, _ := runtime.Caller(skip + 1)
	return &lazyError{err: err, pc: pc}
}

// Error implements the error interface.
func (e *lazyError) Error() string {
	return e.location() + " " + e.err.Error()
}

// GoString implements fmt.GoStringer.
func (e *lazyError) GoString() string {
	return "lazyerror(" + e.Error() + ")"
}

// Unwrap implements errors.Unwrap / errors.Is / errors.As support.
func (e *lazyError) Unwrap() error {
	return e.err
}

func (e *lazyError) location() string {
	f := runtime.FuncForPC(e.pc)
	if f == nil {
		return "[unknown]"
	}

	file, line := f.FileLine(e.pc)

	name := f.Name()
	if i := lastIndex(name, '.'); i >= 0 {
		if j := lastIndex(name[:i], '/'); j >= 0 {
			name = name[j+1:]
		}
	}

	return fmt.Sprintf("[%s:%d %s]", filepath.Base(file), line, name)
}

func lastIndex(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}

	return -1
}

type errString string

func (s errString) Error() string {
	return string(s)
}
