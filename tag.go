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

import "strconv"

// Tag is a BSON element type tag, as it appears on the wire immediately
// before an element's key.
type Tag byte

// BSON type tags, per https://bsonspec.org/spec.html.
const (
	TagDouble                  = Tag(0x01)
	TagString                  = Tag(0x02)
	TagEmbeddedDocument        = Tag(0x03)
	TagArray                   = Tag(0x04)
	TagBinary                  = Tag(0x05)
	TagUndefined               = Tag(0x06) // deprecated
	TagObjectID                = Tag(0x07)
	TagBoolean                 = Tag(0x08)
	TagDateTime                = Tag(0x09)
	TagNull                    = Tag(0x0a)
	TagRegularExpression       = Tag(0x0b)
	TagDBPointer               = Tag(0x0c) // deprecated
	TagJavaScriptCode          = Tag(0x0d)
	TagSymbol                  = Tag(0x0e) // deprecated
	TagJavaScriptCodeWithScope = Tag(0x0f) // deprecated
	TagInt32                   = Tag(0x10)
	TagTimestamp               = Tag(0x11)
	TagInt64                   = Tag(0x12)
	TagDecimal128              = Tag(0x13)
	TagMinKey                  = Tag(0xff)
	TagMaxKey                  = Tag(0x7f)
)

// String returns the name of the type tag, or "invalid(N)" for an unknown
// tag byte.
func (t Tag) String() string {
	switch t {
	case TagDouble:
		return "Double"
	case TagString:
		return "String"
	case TagEmbeddedDocument:
		return "EmbeddedDocument"
	case TagArray:
		return "Array"
	case TagBinary:
		return "Binary"
	case TagUndefined:
		return "Undefined"
	case TagObjectID:
		return "ObjectID"
	case TagBoolean:
		return "Boolean"
	case TagDateTime:
		return "DateTime"
	case TagNull:
		return "Null"
	case TagRegularExpression:
		return "RegularExpression"
	case TagDBPointer:
		return "DBPointer"
	case TagJavaScriptCode:
		return "JavaScriptCode"
	case TagSymbol:
		return "Symbol"
	case TagJavaScriptCodeWithScope:
		return "JavaScriptCodeWithScope"
	case TagInt32:
		return "Int32"
	case TagTimestamp:
		return "Timestamp"
	case TagInt64:
		return "Int64"
	case TagDecimal128:
		return "Decimal128"
	case TagMinKey:
		return "MinKey"
	case TagMaxKey:
		return "MaxKey"
	default:
		return "invalid(" + strconv.Itoa(int(t)) + ")"
	}
}

// valid reports whether t is one of the known BSON type tags.
func (t Tag) valid() bool {
	switch t {
	case TagDouble, TagString, TagEmbeddedDocument, TagArray, TagBinary, TagUndefined,
		TagObjectID, TagBoolean, TagDateTime, TagNull, TagRegularExpression, TagDBPointer,
		TagJavaScriptCode, TagSymbol, TagJavaScriptCodeWithScope, TagInt32, TagTimestamp,
		TagInt64, TagDecimal128, TagMinKey, TagMaxKey:
		return true
	default:
		return false
	}
}
