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

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AsBinary returns the value as a primitive.Binary. The tag must be
// TagBinary.
//
// The wire layout is an int32 length, a subtype byte, and then length
// bytes of payload; the overall value must therefore be exactly
// length + 5 bytes. Unknown subtype bytes are passed through uninterpreted
// — policy for an unrecognized subtype is left to the caller.
//
// Subtype 0x02 ("binary old") is a legacy encoding with an extra, redundant
// length prefix inside the payload: the first four bytes of the payload
// must equal length - 4. That inner count is validated but not retained;
// the returned payload is the same either way (the four redundant bytes
// stripped).
func (v Value) AsBinary() (primitive.Binary, error) {
	if err := v.checkType(TagBinary); err != nil {
		return primitive.Binary{}, err
	}

	if len(v.data) < 5 {
		return primitive.Binary{}, malformed("binary value truncated")
	}

	n := int(int32(binary.LittleEndian.Uint32(v.data)))
	if n < 0 || len(v.data) != n+5 {
		return primitive.Binary{}, malformedf("binary length mismatch: header says %d, value is %d bytes", n, len(v.data))
	}

	subtype := v.data[4]
	payload := v.data[5:]

	if subtype == byte(bsontype.BinaryBinaryOld) {
		if n < 4 {
			return primitive.Binary{}, malformed("binary old: outer length too short for inner length prefix")
		}

		inner := int(int32(binary.LittleEndian.Uint32(payload)))
		if inner != n-4 {
			return primitive.Binary{}, malformedf("binary old: inner length %d does not match outer length - 4 (%d)", inner, n-4)
		}

		payload = payload[4:]
	}

	cp := make([]byte, len(payload))
	copy(cp, payload)

	return primitive.Binary{Subtype: subtype, Data: cp}, nil
}
