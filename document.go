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
	"log/slog"
	"strconv"

	"github.com/FerretDB/rawbson/internal/lazyerrors"
)

// RawDocument is a validated BSON document, backed by a borrowed or owned
// byte slice.
//
// Go's slice semantics already carry the owning/borrowing distinction that
// a lower-level language needs two separate types for: a RawDocument built
// from a freshly allocated []byte is, in effect, the owning buffer; a
// RawDocument that aliases a sub-slice of a larger document (as produced by
// Value.AsDocument) is, in effect, the borrowed view. Both are the same Go
// type because both are just "a []byte that satisfies the document
// invariants".
type RawDocument []byte

// NewDocument validates b against the BSON outer-frame invariants and
// returns it as a RawDocument:
//
//   - len(b) must be at least 5 bytes (an empty document is int32 length +
//     trailing null);
//   - the first four bytes, read as a little-endian int32, must equal
//     len(b);
//   - the last byte must be 0x00.
//
// It does not walk the document's elements: a RawDocument can pass this
// check and still fail later, during iteration, if an individual element's
// framing is broken.
func NewDocument(b []byte) (RawDocument, error) {
	if len(b) < 5 {
		return nil, lazyerrors.Error(malformed("document is too short"))
	}

	n := int32(binary.LittleEndian.Uint32(b))
	if int(n) != len(b) {
		return nil, lazyerrors.Error(malformedf("document length mismatch: header says %d, got %d bytes", n, len(b)))
	}

	if b[len(b)-1] != 0 {
		return nil, lazyerrors.Error(malformed("document not null-terminated"))
	}

	return RawDocument(b), nil
}

// NewDocumentUnchecked wraps b as a RawDocument without validating the
// outer frame.
//
// This is a safety-critical entry point: every method on the result
// assumes the invariants NewDocument checks actually hold. It exists for
// pipelines that have already validated b's framing upstream (for example,
// a caller re-wrapping a byte range it sliced out of an already-validated
// document) and do not want to pay for the check twice. Calling it on
// unvalidated input does not panic, but downstream iteration may return
// confusing errors instead of the precise ones NewDocument would have
// produced up front.
func NewDocumentUnchecked(b []byte) RawDocument {
	return RawDocument(b)
}

// Iterator returns a fresh iterator positioned at this document's first
// element.
func (doc RawDocument) Iterator() *Iterator {
	return &Iterator{doc: doc, offset: 4}
}

// Get returns the value of the first element with the given key, found by
// a linear scan over the document's elements.
//
// ok == false with a nil error means the key is absent — that is not an
// error. An error means the walker failed before (or while) reaching a
// matching key; the caller should treat that as a terminal condition for
// this document, not retry.
//
// Get deliberately does not build an index: a document is expected to be
// small, or to be looked up with a schema-shaped, mostly-early-key access
// pattern. Callers who need repeated lookups over many tail keys should
// materialize the document once with ToOwned instead of calling Get
// repeatedly.
func (doc RawDocument) Get(key string) (Value, bool, error) {
	it := doc.Iterator()

	for {
		k, v, ok, err := it.Next()
		if err != nil {
			return Value{}, false, err
		}

		if !ok {
			return Value{}, false, nil
		}

		if k == key {
			return v, true, nil
		}
	}
}

// LogValue implements slog.LogValuer.
//
// Rendering a document's actual fields requires walking it, and walking
// can fail on adversarial input; LogValue must not fail or panic, so it
// reports only the byte length, the same tradeoff bson2.RawDocument makes.
func (doc RawDocument) LogValue() slog.Value {
	return slog.StringValue("RawDocument<" + strconv.Itoa(len(doc)) + ">")
}
