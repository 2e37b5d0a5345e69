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

import "go.mongodb.org/mongo-driver/bson/primitive"

// Field is a single key/value pair of a materialized Document, in the
// order it appeared on the wire.
type Field struct {
	Key   string
	Value any
}

// Document is an owned, eagerly-decoded BSON document: every value has
// already been copied out of the source buffer, so a Document outlives
// whatever RawDocument it was built from.
//
// Scalar field values are the primitive.* types from
// go.mongodb.org/mongo-driver/bson/primitive (or a plain Go float64,
// string, bool, int32, int64, or time.Time, as appropriate); nested
// documents and arrays are *Document and *Array, and code-with-scope
// values are OwnedCodeWithScope.
type Document struct {
	Fields []Field
}

// Array is an owned, eagerly-decoded BSON array. Unlike Document it has no
// keys to carry, since the "0", "1", "2", ... indices are positional by
// construction.
type Array struct {
	Values []any
}

// OwnedCodeWithScope is the materialized form of a JavaScriptCodeWithScope
// element: unlike CodeWithScope (which borrows its Scope from the source
// buffer), Scope here is a fully materialized *Document.
type OwnedCodeWithScope struct {
	Code  primitive.JavaScriptCode
	Scope *Document
}

// ToOwned materializes doc into an owned Document, recursively
// materializing any nested documents and arrays. It aborts on the first
// element error and returns it: there is no partial result.
func (doc RawDocument) ToOwned() (*Document, error) {
	it := doc.Iterator()

	out := &Document{}

	for {
		key, val, ok, err := it.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return out, nil
		}

		v, err := materialize(val)
		if err != nil {
			return nil, err
		}

		out.Fields = append(out.Fields, Field{Key: key, Value: v})
	}
}

// ToOwned materializes a into an owned Array, recursively materializing
// any nested documents and arrays.
func (a RawArray) ToOwned() (*Array, error) {
	it := a.Iterator()

	out := &Array{}

	for {
		val, ok, err := it.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return out, nil
		}

		v, err := materialize(val)
		if err != nil {
			return nil, err
		}

		out.Values = append(out.Values, v)
	}
}

// materialize dispatches on val's tag and produces the corresponding owned
// Go value, recursing into nested documents and arrays.
//
// DBPointer, MinKey, and MaxKey materialize to primitive.DBPointer,
// primitive.MinKey, and primitive.MaxKey respectively, rather than
// aborting: this module resolves the open question left by the original
// design (which punted on these three) in favor of always producing a
// value. Undefined materializes to primitive.Null{}, a fixed rule (not an
// open question): the deprecated Undefined type folds into Null in the
// owned tree, the same as the original crate's Bson conversion.
func materialize(val Value) (any, error) {
	switch val.Type() {
	case TagDouble:
		return val.AsF64()
	case TagString:
		return val.AsString()
	case TagEmbeddedDocument:
		doc, err := val.AsDocument()
		if err != nil {
			return nil, err
		}

		return doc.ToOwned()
	case TagArray:
		arr, err := val.AsArray()
		if err != nil {
			return nil, err
		}

		return arr.ToOwned()
	case TagBinary:
		return val.AsBinary()
	case TagUndefined:
		if _, err := val.AsUndefined(); err != nil {
			return nil, err
		}

		return primitive.Null{}, nil
	case TagObjectID:
		return val.AsObjectID()
	case TagBoolean:
		return val.AsBool()
	case TagDateTime:
		return val.AsDateTime()
	case TagNull:
		return val.AsNull()
	case TagRegularExpression:
		return val.AsRegex()
	case TagDBPointer:
		return val.AsDBPointer()
	case TagJavaScriptCode:
		return val.AsJavaScript()
	case TagSymbol:
		return val.AsSymbol()
	case TagJavaScriptCodeWithScope:
		cws, err := val.AsJavaScriptWithScope()
		if err != nil {
			return nil, err
		}

		scope, err := cws.Scope.ToOwned()
		if err != nil {
			return nil, err
		}

		return OwnedCodeWithScope{Code: cws.Code, Scope: scope}, nil
	case TagInt32:
		return val.AsI32()
	case TagTimestamp:
		return val.AsTimestamp()
	case TagInt64:
		return val.AsI64()
	case TagDecimal128:
		return val.AsDecimal128()
	case TagMinKey:
		return val.AsMinKey()
	case TagMaxKey:
		return val.AsMaxKey()
	default:
		return nil, malformedf("invalid tag: %d", val.Type())
	}
}
