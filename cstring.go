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

import "unicode/utf8"

// readCString reads a BSON CString: a run of bytes up to (but not
// including) the first 0x00, which must be present. Used for document keys
// and regex pattern/options, which are the only UTF-8 regions in BSON that
// are null-terminated rather than length-prefixed.
//
// It returns the number of bytes consumed, including the terminator.
func readCString(b []byte) (s string, n int, err error) {
	i := indexZero(b)
	if i < 0 {
		return "", 0, malformed("expected null terminator")
	}

	if !utf8.Valid(b[:i]) {
		return "", 0, utf8Error(b[:i])
	}

	return string(b[:i]), i + 1, nil
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}

	return -1
}
