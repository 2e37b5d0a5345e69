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

// Value is a single decoded BSON element's type tag paired with its value
// bytes, with the framing around the value already consumed.
//
// A Value never copies or owns memory: it borrows a sub-slice of whatever
// document it was produced from, and must not outlive it. It is cheap to
// copy (a one-byte tag plus a slice header) and safe to pass by value.
//
// Value can only be constructed by this package's document walker, so a
// Value's (tag, bytes) pair is always internally consistent: there is no
// exported constructor that would let a caller pair, say, TagBoolean with
// an 8-byte slice.
type Value struct {
	tag  Tag
	data []byte
}

// newValue is the sole constructor for Value. It is unexported: every
// Value that exists was produced by walking a document or array, which is
// what keeps (tag, data) consistent.
func newValue(tag Tag, data []byte) Value {
	return Value{tag: tag, data: data}
}

// Type returns the value's BSON type tag.
func (v Value) Type() Tag {
	return v.tag
}

// Bytes returns the raw value-region bytes for this element, with the type
// tag, key, and framing already stripped away. The slice is borrowed from
// the source document and must not be retained past its lifetime.
func (v Value) Bytes() []byte {
	return v.data
}

// checkType returns ErrUnexpectedType unless the value's tag matches want.
func (v Value) checkType(want Tag) error {
	if v.tag != want {
		return ErrUnexpectedType
	}

	return nil
}
