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

// AsNull checks that the value is a well-formed Null (tag TagNull, zero
// value bytes) and returns primitive.Null{}. There is nothing to extract:
// the caller already knows the key is present and null from a successful
// call.
func (v Value) AsNull() (primitive.Null, error) {
	if err := v.checkType(TagNull); err != nil {
		return primitive.Null{}, err
	}

	if len(v.data) != 0 {
		return primitive.Null{}, malformed("null value should be empty")
	}

	return primitive.Null{}, nil
}

// AsUndefined checks that the value is a well-formed (deprecated) Undefined
// element and returns primitive.Undefined{}.
func (v Value) AsUndefined() (primitive.Undefined, error) {
	if err := v.checkType(TagUndefined); err != nil {
		return primitive.Undefined{}, err
	}

	if len(v.data) != 0 {
		return primitive.Undefined{}, malformed("undefined value should be empty")
	}

	return primitive.Undefined{}, nil
}
