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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FerretDB/rawbson/internal/must"
)

func flatStringDoc() []byte {
	return buildDoc(
		elem{tag: byte(TagString), key: "this", val: lenStr("first")},
		elem{tag: byte(TagString), key: "that", val: lenStr("second")},
		elem{tag: byte(TagString), key: "something", val: lenStr("else")},
	)
}

func TestDocumentFlatStringField(t *testing.T) {
	doc := must.NotFail(NewDocument(flatStringDoc()))

	v, ok, err := doc.Get("that")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "second", s)

	_, ok, err = doc.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = doc.Get("this")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = v.AsI32()
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestDocumentNested(t *testing.T) {
	inner := buildDoc(elem{tag: byte(TagString), key: "inner", val: lenStr("surprise")})
	outer := buildDoc(elem{tag: byte(TagEmbeddedDocument), key: "outer", val: inner})

	doc := must.NotFail(NewDocument(outer))

	v, ok, err := doc.Get("outer")
	require.NoError(t, err)
	require.True(t, ok)

	sub, err := v.AsDocument()
	require.NoError(t, err)

	inV, ok, err := sub.Get("inner")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := inV.AsString()
	require.NoError(t, err)
	assert.Equal(t, "surprise", s)
}

func TestDocumentMissingTerminator(t *testing.T) {
	raw := flatStringDoc()
	raw[len(raw)-1] = 0x01

	_, err := NewDocument(raw)

	var malformed *MalformedValueError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "document not null-terminated", malformed.Detail)
}

func TestDocumentMissingTerminatorUnchecked(t *testing.T) {
	raw := flatStringDoc()
	raw[len(raw)-1] = 0x01

	doc := NewDocumentUnchecked(raw)

	_, _, err := doc.Get("missing")

	var malformed *MalformedValueError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "document not null terminated", malformed.Detail)
}

func TestDocumentTooShort(t *testing.T) {
	_, err := NewDocument([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestDocumentLengthMismatch(t *testing.T) {
	raw := flatStringDoc()
	raw[0] = 0xff

	_, err := NewDocument(raw)
	require.Error(t, err)
}

func TestDocumentInvalidTag(t *testing.T) {
	raw := buildDoc(elem{tag: 0x9a, key: "x", val: nil})

	doc := must.NotFail(NewDocument(raw))

	_, _, err := doc.Get("x")

	var malformed *MalformedValueError
	require.ErrorAs(t, err, &malformed)
}

func TestIteratorPoisonedAfterError(t *testing.T) {
	raw := flatStringDoc()
	raw[len(raw)-1] = 0x01

	doc := NewDocumentUnchecked(raw)
	it := doc.Iterator()

	var lastErr error

	for i := 0; i < 10; i++ {
		_, _, ok, err := it.Next()
		if err != nil {
			lastErr = err
			break
		}

		if !ok {
			break
		}
	}

	require.Error(t, lastErr)

	_, _, _, err := it.Next()
	require.Error(t, err)
}
