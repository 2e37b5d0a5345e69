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

// AsI32 returns the value as an int32. The tag must be TagInt32.
func (v Value) AsI32() (int32, error) {
	if err := v.checkType(TagInt32); err != nil {
		return 0, err
	}

	if len(v.data) != 4 {
		return 0, malformed("int32 value should be 4 bytes long")
	}

	return int32(binary.LittleEndian.Uint32(v.data)), nil
}
