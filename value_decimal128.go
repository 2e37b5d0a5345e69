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

// AsDecimal128 returns the value as a primitive.Decimal128. The tag must
// be TagDecimal128 and the value must be exactly 16 bytes: a little-endian
// significand/combination-field pair, passed through to primitive's own
// Decimal128 constructor verbatim — this package does no IEEE 754-2008
// decimal interpretation of its own.
func (v Value) AsDecimal128() (primitive.Decimal128, error) {
	if err := v.checkType(TagDecimal128); err != nil {
		return primitive.Decimal128{}, err
	}

	if len(v.data) != 16 {
		return primitive.Decimal128{}, malformed("decimal128 value should be 16 bytes long")
	}

	low := binary.LittleEndian.Uint64(v.data[0:8])
	high := binary.LittleEndian.Uint64(v.data[8:16])

	return primitive.NewDecimal128(high, low), nil
}
