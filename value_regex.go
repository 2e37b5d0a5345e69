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

// AsRegex returns the value as a primitive.Regex. The tag must be
// TagRegularExpression; the value is two consecutive null-terminated UTF-8
// strings, pattern then options, with nothing else following — the total
// bytes consumed by the two cstrings must exactly equal the value length,
// since the walker already measured the value extent as exactly that.
func (v Value) AsRegex() (primitive.Regex, error) {
	if err := v.checkType(TagRegularExpression); err != nil {
		return primitive.Regex{}, err
	}

	pattern, n, err := readCString(v.data)
	if err != nil {
		return primitive.Regex{}, err
	}

	options, m, err := readCString(v.data[n:])
	if err != nil {
		return primitive.Regex{}, err
	}

	if n+m != len(v.data) {
		return primitive.Regex{}, malformed("regex value has trailing bytes")
	}

	return primitive.Regex{Pattern: pattern, Options: options}, nil
}
