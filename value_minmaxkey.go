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

// AsMinKey checks that the value is a well-formed MinKey sentinel and
// returns primitive.MinKey{}.
func (v Value) AsMinKey() (primitive.MinKey, error) {
	if err := v.checkType(TagMinKey); err != nil {
		return primitive.MinKey{}, err
	}

	if len(v.data) != 0 {
		return primitive.MinKey{}, malformed("minkey value should be empty")
	}

	return primitive.MinKey{}, nil
}

// AsMaxKey checks that the value is a well-formed MaxKey sentinel and
// returns primitive.MaxKey{}.
func (v Value) AsMaxKey() (primitive.MaxKey, error) {
	if err := v.checkType(TagMaxKey); err != nil {
		return primitive.MaxKey{}, err
	}

	if len(v.data) != 0 {
		return primitive.MaxKey{}, malformed("maxkey value should be empty")
	}

	return primitive.MaxKey{}, nil
}
