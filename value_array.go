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

// AsArray returns the value as a RawArray. The tag must be TagArray. Like
// AsDocument, the outer frame is already proven consistent by the walker,
// so construction is unchecked; the "0", "1", "2", ... key invariant is
// still checked lazily by the array's own iterator.
func (v Value) AsArray() (RawArray, error) {
	if err := v.checkType(TagArray); err != nil {
		return RawArray{}, err
	}

	return NewArrayUnchecked(v.data), nil
}
