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
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValueAsBinaryGeneric(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagBinary), key: "x", val: binVal(0x00, []byte{1, 2, 3})})

	b, err := v.AsBinary()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), b.Subtype)
	assert.Equal(t, []byte{1, 2, 3}, b.Data)
}

func TestValueAsBinaryOld(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagBinary), key: "x", val: binOldVal([]byte{1, 2, 3, 4})})

	b, err := v.AsBinary()
	require.NoError(t, err)
	assert.Equal(t, byte(bsontype.BinaryBinaryOld), b.Subtype)
	assert.Equal(t, []byte{1, 2, 3, 4}, b.Data)
}

func TestValueAsBinaryOldBadInnerLength(t *testing.T) {
	payload := binOldVal([]byte{1, 2, 3, 4})
	// corrupt the inner length prefix, which sits at value[5:9]
	payload[5] = 0xff

	v := fieldValue(t, elem{tag: byte(TagBinary), key: "x", val: payload})

	_, err := v.AsBinary()

	var malformed *MalformedValueError
	require.ErrorAs(t, err, &malformed)
}

func TestValueAsRegex(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagRegularExpression), key: "x", val: regexVal(`end\s*$`, "i")})

	re, err := v.AsRegex()
	require.NoError(t, err)
	assert.Equal(t, `end\s*$`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestValueAsTimestamp(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagTimestamp), key: "x", val: tsVal(0, 3542578)})

	ts, err := v.AsTimestamp()
	require.NoError(t, err)
	assert.EqualValues(t, 0, ts.I)
	assert.EqualValues(t, 3542578, ts.T)
}

func TestValueAsDecimal128(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagDecimal128), key: "x", val: dec128Val(123, 456)})

	d, err := v.AsDecimal128()
	require.NoError(t, err)

	high, low := d.GetBytes()
	assert.EqualValues(t, 456, high)
	assert.EqualValues(t, 123, low)
}

func TestValueAsJavaScript(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagJavaScriptCode), key: "x", val: lenStr("console.log(console);")})

	code, err := v.AsJavaScript()
	require.NoError(t, err)
	assert.EqualValues(t, "console.log(console);", code)
}

func TestValueAsSymbol(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagSymbol), key: "x", val: lenStr("sym")})

	s, err := v.AsSymbol()
	require.NoError(t, err)
	assert.EqualValues(t, "sym", s)
}

func TestValueAsJavaScriptWithScope(t *testing.T) {
	scope := buildDoc(elem{tag: byte(TagBoolean), key: "ok", val: boolVal(true)})
	v := fieldValue(t, elem{tag: byte(TagJavaScriptCodeWithScope), key: "x", val: cwsVal("f()", scope)})

	cws, err := v.AsJavaScriptWithScope()
	require.NoError(t, err)
	assert.EqualValues(t, "f()", cws.Code)

	okVal, ok, err := cws.Scope.Get("ok")
	require.NoError(t, err)
	require.True(t, ok)

	b, err := okVal.AsBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestValueAsDBPointer(t *testing.T) {
	var id primitive.ObjectID
	for i := range id {
		id[i] = byte(i + 1)
	}

	v := fieldValue(t, elem{tag: byte(TagDBPointer), key: "x", val: dbPointerVal("ns", id)})

	ptr, err := v.AsDBPointer()
	require.NoError(t, err)
	assert.Equal(t, "ns", ptr.DB)
	assert.Equal(t, id, ptr.Pointer)
}

func TestValueAsMinMaxKey(t *testing.T) {
	min := fieldValue(t, elem{tag: byte(TagMinKey), key: "x", val: nil})
	_, err := min.AsMinKey()
	require.NoError(t, err)

	max := fieldValue(t, elem{tag: byte(TagMaxKey), key: "x", val: nil})
	_, err = max.AsMaxKey()
	require.NoError(t, err)
}

func TestValueAsUndefined(t *testing.T) {
	v := fieldValue(t, elem{tag: byte(TagUndefined), key: "x", val: nil})

	_, err := v.AsUndefined()
	require.NoError(t, err)
}
