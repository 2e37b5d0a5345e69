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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CodeWithScope is JavaScript code paired with its closure scope, the
// decoded form of a TagJavaScriptCodeWithScope element.
type CodeWithScope struct {
	Code  primitive.JavaScriptCode
	Scope RawDocument
}

// AsJavaScriptWithScope returns the value as a CodeWithScope. The tag must
// be TagJavaScriptCodeWithScope. The wire layout is an int32 total length
// (covering itself), a length-prefixed UTF-8 code string, and an embedded
// document immediately after it; the outer length must equal the value's
// total byte length exactly, since the walker measured the extent using
// that same prefix.
func (v Value) AsJavaScriptWithScope() (CodeWithScope, error) {
	if err := v.checkType(TagJavaScriptCodeWithScope); err != nil {
		return CodeWithScope{}, err
	}

	if len(v.data) < 4 {
		return CodeWithScope{}, malformed("code-with-scope value truncated")
	}

	total := int(int32(binary.LittleEndian.Uint32(v.data)))
	if total != len(v.data) {
		return CodeWithScope{}, malformedf("code-with-scope length mismatch: header says %d, value is %d bytes", total, len(v.data))
	}

	rest := v.data[4:]

	codeLen, err := sizeLenString(rest)
	if err != nil {
		return CodeWithScope{}, err
	}

	if codeLen > len(rest) {
		return CodeWithScope{}, malformed("code-with-scope code string truncated")
	}

	code, err := readLenString(rest[:codeLen])
	if err != nil {
		return CodeWithScope{}, err
	}

	scope, err := NewDocument(rest[codeLen:])
	if err != nil {
		return CodeWithScope{}, err
	}

	return CodeWithScope{Code: primitive.JavaScriptCode(code), Scope: scope}, nil
}
