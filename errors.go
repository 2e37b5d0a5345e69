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

package rawbson

import (
	"errors"
	"fmt"

	"github.com/FerretDB/rawbson/internal/lazyerrors"
)

// ErrUnexpectedType is returned by a typed accessor when the element's tag
// does not match the type the accessor requests.
//
// It is never returned for an absent key: absence is reported as
// ok == false with a nil error, never as an error. See MalformedValueError
// and Utf8EncodingError for the other two error kinds.
var ErrUnexpectedType = errors.New("rawbson: unexpected type")

// MalformedValueError reports that a document, array, or scalar value does
// not follow the BSON framing rules: a bad length prefix, a missing null
// terminator, an unknown type tag, an inconsistent inner length, and so on.
type MalformedValueError struct {
	Detail string
}

// Error implements the error interface.
func (e *MalformedValueError) Error() string {
	return "rawbson: malformed value: " + e.Detail
}

func malformed(detail string) error {
	return &MalformedValueError{Detail: detail}
}

func malformedf(format string, args ...any) error {
	return &MalformedValueError{Detail: fmt.Sprintf(format, args...)}
}

// Utf8EncodingError reports that a region of a document that must hold a
// UTF-8 string (a key, a string value, a regex pattern, ...) contains bytes
// that are not valid UTF-8. Bytes holds a copy of the offending region, for
// diagnostics; the copy is made only on the error path.
type Utf8EncodingError struct {
	Bytes []byte
}

// Error implements the error interface.
func (e *Utf8EncodingError) Error() string {
	return fmt.Sprintf("rawbson: invalid utf-8: %q", e.Bytes)
}

func utf8Error(b []byte) error {
	cp := make([]byte, len(b))
	copy(cp, b)

	return &Utf8EncodingError{Bytes: cp}
}
