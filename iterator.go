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

import (
	"encoding/binary"

	"github.com/FerretDB/rawbson/internal/lazyerrors"
)

// Iterator walks a RawDocument's elements in wire order, re-deriving each
// element's framing (type tag, key, value extent) from the raw bytes on
// every step. It holds no parsed state beyond a single byte offset: there
// is no side index, no lookahead, nothing cached between calls to Next.
//
// An Iterator is single-consumer: concurrent calls to Next from multiple
// goroutines on the same *Iterator will race. Independent iterators over
// the same RawDocument are safe and see the same sequence, since the
// document they walk is immutable.
//
// Once Next returns an error, the iterator is poisoned: further calls to
// Next have unspecified behavior and callers must stop consuming.
type Iterator struct {
	doc      RawDocument
	offset   int
	poisoned bool
}

// Next returns the next (key, value) pair in the document, or ok == false
// once the document's terminator has been reached.
//
// err != nil means the walker hit a framing violation; the returned key,
// value, and ok are meaningless in that case, and the iterator must not be
// used again.
func (it *Iterator) Next() (key string, val Value, ok bool, err error) {
	if it.poisoned {
		return "", Value{}, false, lazyerrors.Error(malformed("iterator already poisoned by a previous error"))
	}

	b := []byte(it.doc)
	o := it.offset

	if o == len(b)-1 {
		if b[o] == 0 {
			return "", Value{}, false, nil
		}

		it.poisoned = true

		return "", Value{}, false, lazyerrors.Error(malformed("document not null terminated"))
	}

	if o >= len(b) {
		it.poisoned = true
		return "", Value{}, false, lazyerrors.Error(malformed("document truncated before terminator"))
	}

	tag := Tag(b[o])
	if !tag.valid() {
		it.poisoned = true
		return "", Value{}, false, lazyerrors.Error(malformedf("invalid tag: %d", tag))
	}

	k, n, err := readCString(b[o+1:])
	if err != nil {
		it.poisoned = true
		return "", Value{}, false, lazyerrors.Error(err)
	}

	valueOffset := o + 1 + n
	if valueOffset > len(b) {
		it.poisoned = true
		return "", Value{}, false, lazyerrors.Error(malformed("value offset past end of document"))
	}

	size, err := valueSize(tag, b[valueOffset:])
	if err != nil {
		it.poisoned = true
		return "", Value{}, false, lazyerrors.Error(err)
	}

	if valueOffset+size > len(b) {
		it.poisoned = true
		return "", Value{}, false, lazyerrors.Error(malformed("value extends past end of document"))
	}

	it.offset = valueOffset + size

	return k, newValue(tag, b[valueOffset:valueOffset+size]), true, nil
}

// valueSize computes the number of bytes occupied by a tag's value,
// starting at value[0], without copying or otherwise decoding it. It is
// the only part of the walker that branches per type; every branch is
// preceded by (or performs inline) the bounds check necessary to avoid a
// panic on adversarial input.
func valueSize(tag Tag, value []byte) (int, error) {
	switch tag {
	case TagDouble, TagDateTime, TagInt64, TagTimestamp:
		if len(value) < 8 {
			return 0, malformed("value truncated")
		}

		return 8, nil

	case TagInt32:
		if len(value) < 4 {
			return 0, malformed("value truncated")
		}

		return 4, nil

	case TagObjectID:
		if len(value) < 12 {
			return 0, malformed("value truncated")
		}

		return 12, nil

	case TagBoolean:
		if len(value) < 1 {
			return 0, malformed("value truncated")
		}

		return 1, nil

	case TagDecimal128:
		if len(value) < 16 {
			return 0, malformed("value truncated")
		}

		return 16, nil

	case TagNull, TagUndefined, TagMinKey, TagMaxKey:
		return 0, nil

	case TagString, TagJavaScriptCode:
		n, err := sizeLenString(value)
		if err != nil {
			return 0, err
		}

		if n < 1 || n > len(value) {
			return 0, malformed("string value truncated")
		}

		if value[n-1] != 0 {
			return 0, malformed("string not null terminated")
		}

		return n, nil

	case TagSymbol:
		n, err := sizeLenString(value)
		if err != nil {
			return 0, err
		}

		if n > len(value) {
			return 0, malformed("symbol value truncated")
		}

		return n, nil

	case TagEmbeddedDocument, TagArray:
		if len(value) < 4 {
			return 0, malformed("document value truncated")
		}

		n := int(int32(binary.LittleEndian.Uint32(value)))
		if n < 5 || n > len(value) {
			return 0, malformedf("invalid embedded document length: %d", n)
		}

		if value[n-1] != 0 {
			return 0, malformed("embedded document not null terminated")
		}

		return n, nil

	case TagJavaScriptCodeWithScope:
		if len(value) < 4 {
			return 0, malformed("code-with-scope value truncated")
		}

		n := int(int32(binary.LittleEndian.Uint32(value)))
		if n < 1 || n > len(value) {
			return 0, malformedf("invalid code-with-scope length: %d", n)
		}

		return n, nil

	case TagBinary:
		if len(value) < 4 {
			return 0, malformed("binary value truncated")
		}

		n := int(int32(binary.LittleEndian.Uint32(value)))
		if n < 0 {
			return 0, malformedf("invalid binary length: %d", n)
		}

		size := 5 + n
		if size > len(value) {
			return 0, malformed("binary value truncated")
		}

		return size, nil

	case TagRegularExpression:
		_, patLen, err := readCString(value)
		if err != nil {
			return 0, err
		}

		if patLen > len(value) {
			return 0, malformed("regex value truncated")
		}

		_, optLen, err := readCString(value[patLen:])
		if err != nil {
			return 0, err
		}

		return patLen + optLen, nil

	case TagDBPointer:
		n, err := sizeLenString(value)
		if err != nil {
			return 0, err
		}

		size := n + 12
		if size > len(value) {
			return 0, malformed("dbpointer value truncated")
		}

		if value[n-1] != 0 {
			return 0, malformed("dbpointer namespace not null terminated")
		}

		return size, nil

	default:
		return 0, malformedf("invalid tag: %d", tag)
	}
}
