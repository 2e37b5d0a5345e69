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

import "encoding/binary"

// AsI64 returns the value as an int64. The tag must be TagInt64.
func (v Value) AsI64() (int64, error) {
	if err := v.checkType(TagInt64); err != nil {
		return 0, err
	}

	if len(v.data) != 8 {
		return 0, malformed("int64 value should be 8 bytes long")
	}

	return int64(binary.LittleEndian.Uint64(v.data)), nil
}
