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

// AsObjectID returns the value as a primitive.ObjectID. The tag must be
// TagObjectID and the value must be exactly 12 bytes long.
func (v Value) AsObjectID() (primitive.ObjectID, error) {
	var id primitive.ObjectID

	if err := v.checkType(TagObjectID); err != nil {
		return id, err
	}

	if len(v.data) != 12 {
		return id, malformed("objectid value should be 12 bytes long")
	}

	copy(id[:], v.data)

	return id, nil
}
