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

// AsString returns the value as a Go string. The tag must be TagString.
func (v Value) AsString() (string, error) {
	if err := v.checkType(TagString); err != nil {
		return "", err
	}

	return readLenString(v.data)
}

// AsJavaScript returns the value as a primitive.JavaScriptCode. The tag
// must be TagJavaScriptCode; the wire representation is identical to
// String.
func (v Value) AsJavaScript() (primitive.JavaScriptCode, error) {
	if err := v.checkType(TagJavaScriptCode); err != nil {
		return "", err
	}

	s, err := readLenString(v.data)
	if err != nil {
		return "", err
	}

	return primitive.JavaScriptCode(s), nil
}

// AsSymbol returns the value as a primitive.Symbol. The tag must be
// TagSymbol; the wire representation is identical to String. Symbol is
// deprecated in the BSON spec but still round-trips.
func (v Value) AsSymbol() (primitive.Symbol, error) {
	if err := v.checkType(TagSymbol); err != nil {
		return "", err
	}

	s, err := readLenString(v.data)
	if err != nil {
		return "", err
	}

	return primitive.Symbol(s), nil
}
