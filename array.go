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
	"log/slog"
	"strconv"

	"github.com/FerretDB/rawbson/internal/lazyerrors"
)

// RawArray is a RawDocument with the added semantic invariant that its
// keys, in iteration order, are the ASCII decimal strings "0", "1", "2",
// and so on. The invariant is not checked at construction — only while
// iterating, since checking it upfront would mean walking the whole thing
// anyway, at which point there would be nothing left to check lazily.
type RawArray struct {
	doc RawDocument
}

// NewArray wraps b as a RawArray, validating only the outer document frame
// (via NewDocument). The index invariant is checked lazily, element by
// element, as the array is iterated.
func NewArray(b []byte) (RawArray, error) {
	doc, err := NewDocument(b)
	if err != nil {
		return RawArray{}, err
	}

	return RawArray{doc: doc}, nil
}

// NewArrayUnchecked wraps b as a RawArray without validating the outer
// frame. See NewDocumentUnchecked for the caveats.
func NewArrayUnchecked(b []byte) RawArray {
	return RawArray{doc: NewDocumentUnchecked(b)}
}

// ArrayIterator walks a RawArray's elements in order, checking as it goes
// that each element's key is the expected ASCII decimal index.
type ArrayIterator struct {
	it    *Iterator
	index uint64
}

// Iterator returns a fresh iterator positioned at this array's first
// element.
func (a RawArray) Iterator() *ArrayIterator {
	return &ArrayIterator{it: a.doc.Iterator()}
}

// Next returns the next value in the array, or ok == false once the
// array's terminator has been reached.
//
// err != nil covers both the underlying document walker's framing errors
// and this array's own index invariant: a non-numeric key, or a numeric
// key that does not match the running index counter, is reported as
// *MalformedValueError, exactly like any other framing violation.
func (a *ArrayIterator) Next() (val Value, ok bool, err error) {
	key, v, ok, err := a.it.Next()
	if err != nil || !ok {
		return Value{}, ok, err
	}

	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return Value{}, false, lazyerrors.Error(malformedf("array key %q is not a valid index", key))
	}

	if n != a.index {
		return Value{}, false, lazyerrors.Error(malformedf("array index out of order: expected %d, got %d", a.index, n))
	}

	a.index++

	return v, true, nil
}

// Get returns the value at positional index i, by iterating from the
// start and discarding the first i elements. ok == false with a nil error
// means the array has fewer than i+1 elements.
func (a RawArray) Get(i uint64) (Value, bool, error) {
	it := a.Iterator()

	for {
		v, ok, err := it.Next()
		if err != nil {
			return Value{}, false, err
		}

		if !ok {
			return Value{}, false, nil
		}

		if it.index-1 == i {
			return v, true, nil
		}
	}
}

// LogValue implements slog.LogValuer. As with RawDocument, only the byte
// length is reported: rendering the elements requires a walk that can
// fail, and LogValue must not fail or panic.
func (a RawArray) LogValue() slog.Value {
	return slog.StringValue("RawArray<" + strconv.Itoa(len(a.doc)) + ">")
}
