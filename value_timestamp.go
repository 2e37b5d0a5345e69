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

// AsTimestamp returns the value as a primitive.Timestamp. The tag must be
// TagTimestamp and the value must be exactly 8 bytes: a little-endian
// uint32 increment in bytes 0..4, followed by a little-endian uint32 time
// in bytes 4..8. Unlike the other fixed-width accessors, the two fields
// are split out into the struct here rather than deferred, since
// primitive.Timestamp already models them as named fields.
func (v Value) AsTimestamp() (primitive.Timestamp, error) {
	if err := v.checkType(TagTimestamp); err != nil {
		return primitive.Timestamp{}, err
	}

	if len(v.data) != 8 {
		return primitive.Timestamp{}, malformed("timestamp value should be 8 bytes long")
	}

	return primitive.Timestamp{
		I: binary.LittleEndian.Uint32(v.data[0:4]),
		T: binary.LittleEndian.Uint32(v.data[4:8]),
	}, nil
}
