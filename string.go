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
	"encoding/binary"
	"unicode/utf8"
)

// readLenString reads a BSON length-prefixed string: a little-endian int32
// byte count (including the trailing null), followed by that many bytes,
// the last of which must be 0x00.
//
// It is used for String, JavaScriptCode, and Symbol values, and for the
// code part of JavaScriptCodeWithScope.
func readLenString(b []byte) (string, error) {
	if len(b) < 4 {
		return "", malformed("string length prefix truncated")
	}

	n := int(int32(binary.LittleEndian.Uint32(b)))
	if n < 1 {
		return "", malformedf("invalid string length: %d", n)
	}

	if len(b) < n+4 {
		return "", malformed("string value truncated")
	}

	if b[4+n-1] != 0 {
		return "", malformed("string not null terminated")
	}

	data := b[4 : 4+n-1]
	if !utf8.Valid(data) {
		return "", utf8Error(data)
	}

	return string(data), nil
}

// sizeLenString returns the total wire size (length prefix + bytes +
// terminator) of the length-prefixed string starting at b, without
// decoding it. Used by the walker to compute value extents.
func sizeLenString(b []byte) (int, error) {
	if len(b) < 4 {
		return 0, malformed("string length prefix truncated")
	}

	n := int(int32(binary.LittleEndian.Uint32(b)))
	if n < 1 {
		return 0, malformedf("invalid string length: %d", n)
	}

	return 4 + n, nil
}
