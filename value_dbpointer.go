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

import "go.mongodb.org/mongo-driver/bson/primitive"

// AsDBPointer returns the value as a primitive.DBPointer. The tag must be
// TagDBPointer (deprecated in the BSON spec, but still a legal element).
// The wire layout is a length-prefixed UTF-8 namespace string followed by
// a 12-byte ObjectID.
func (v Value) AsDBPointer() (primitive.DBPointer, error) {
	if err := v.checkType(TagDBPointer); err != nil {
		return primitive.DBPointer{}, err
	}

	n, err := sizeLenString(v.data)
	if err != nil {
		return primitive.DBPointer{}, err
	}

	if n+12 != len(v.data) {
		return primitive.DBPointer{}, malformed("dbpointer value has wrong length")
	}

	ns, err := readLenString(v.data[:n])
	if err != nil {
		return primitive.DBPointer{}, err
	}

	var id primitive.ObjectID
	copy(id[:], v.data[n:])

	return primitive.DBPointer{DB: ns, Pointer: id}, nil
}
