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

// heterogeneousDoc builds a document with one field of every supported
// BSON type, mirroring the concrete scenario in the design docs: Double,
// String, embedded Document, Array of strings, Binary, ObjectID, Boolean,
// DateTime, Null, Regex, JavaScriptCode, Symbol, JavaScriptCodeWithScope,
// Int32, Timestamp, Int64, and a final String — 17 fields total.
func heterogeneousDoc() []byte {
	arr := buildArr(byte(TagString), lenStr("binary"), lenStr("serialized"), lenStr("object"), lenStr("notation"))
	scope := buildDoc(elem{tag: byte(TagBoolean), key: "ok", val: boolVal(true)})

	var oid [12]byte
	for i := range oid {
		oid[i] = byte(i + 1)
	}

	return buildDoc(
		elem{tag: byte(TagDouble), key: "double", val: leF64(2.5)},
		elem{tag: byte(TagString), key: "string", val: lenStr("hello")},
		elem{tag: byte(TagEmbeddedDocument), key: "document", val: buildDoc()},
		elem{tag: byte(TagArray), key: "array", val: arr},
		elem{tag: byte(TagBinary), key: "binary", val: binVal(0x00, []byte{1, 2, 3})},
		elem{tag: byte(TagObjectID), key: "objectid", val: oid[:]},
		elem{tag: byte(TagBoolean), key: "boolean", val: boolVal(true)},
		elem{tag: byte(TagDateTime), key: "datetime", val: leI64(1_000_000)},
		elem{tag: byte(TagNull), key: "null", val: nil},
		elem{tag: byte(TagRegularExpression), key: "regex", val: regexVal(`end\s*$`, "i")},
		elem{tag: byte(TagJavaScriptCode), key: "javascript", val: lenStr("console.log(console);")},
		elem{tag: byte(TagSymbol), key: "symbol", val: lenStr("sym")},
		elem{tag: byte(TagJavaScriptCodeWithScope), key: "javascriptWithScope", val: cwsVal("f()", scope)},
		elem{tag: byte(TagInt32), key: "int32", val: leI32(23)},
		elem{tag: byte(TagTimestamp), key: "timestamp", val: tsVal(0, 3542578)},
		elem{tag: byte(TagInt64), key: "int64", val: leI64(46)},
		elem{tag: byte(TagString), key: "end", val: lenStr("END")},
	)
}

func TestHeterogeneousDocumentRoundTrip(t *testing.T) {
	doc := must.NotFail(NewDocument(heterogeneousDoc()))

	owned, err := doc.ToOwned()
	require.NoError(t, err)
	assert.Len(t, owned.Fields, 17)

	v, ok, err := doc.Get("end")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "END", s)

	var count int

	it := doc.Iterator()
	for {
		_, _, ok, err := it.Next()
		require.NoError(t, err)

		if !ok {
			break
		}

		count++
	}

	assert.Equal(t, 17, count)
}

func TestHeterogeneousTimestampFieldSplit(t *testing.T) {
	doc := must.NotFail(NewDocument(heterogeneousDoc()))

	v, ok, err := doc.Get("timestamp")
	require.NoError(t, err)
	require.True(t, ok)

	ts, err := v.AsTimestamp()
	require.NoError(t, err)
	assert.EqualValues(t, 0, ts.I)
	assert.EqualValues(t, 3542578, ts.T)
}
