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

// AsBool returns the value as a bool. The tag must be TagBoolean, the value
// must be exactly one byte long, and that byte must be 0x00 or 0x01 — BSON
// does not permit any other byte to mean "true" the way C does.
func (v Value) AsBool() (bool, error) {
	if err := v.checkType(TagBoolean); err != nil {
		return false, err
	}

	if len(v.data) != 1 {
		return false, malformed("bool value should be 1 byte long")
	}

	switch v.data[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, malformedf("invalid boolean value byte: %#x", v.data[0])
	}
}
