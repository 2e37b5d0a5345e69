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
)

// LogValue implements slog.LogValuer.
//
// Unlike RawDocument/RawArray's LogValue, Document has already been
// materialized, so there is no walk left to fail; its fields are rendered
// recursively, each value through slogValue.
func (doc *Document) LogValue() slog.Value {
	if doc == nil {
		return slog.StringValue("Document<nil>")
	}

	attrs := make([]slog.Attr, len(doc.Fields))
	for i, f := range doc.Fields {
		attrs[i] = slog.Any(f.Key, slogValue(f.Value))
	}

	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer.
func (a *Array) LogValue() slog.Value {
	if a == nil {
		return slog.StringValue("Array<nil>")
	}

	attrs := make([]slog.Attr, len(a.Values))
	for i, v := range a.Values {
		attrs[i] = slog.Any(strconv.Itoa(i), slogValue(v))
	}

	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer for a borrowed element view: for
// scalar types that are cheap and safe to decode without risking a panic
// (Double, String, Boolean, Int32, Int64), it renders the decoded value.
// Every other type, and a scalar that fails to decode, renders as just its
// tag name, the same conservative choice RawDocument/RawArray make for the
// same reason.
func (v Value) LogValue() slog.Value {
	switch v.Type() {
	case TagDouble:
		if f, err := v.AsF64(); err == nil {
			return slog.Float64Value(f)
		}
	case TagString:
		if s, err := v.AsString(); err == nil {
			return slog.StringValue(s)
		}
	case TagBoolean:
		if b, err := v.AsBool(); err == nil {
			return slog.BoolValue(b)
		}
	case TagInt32:
		if n, err := v.AsI32(); err == nil {
			return slog.Int64Value(int64(n))
		}
	case TagInt64:
		if n, err := v.AsI64(); err == nil {
			return slog.Int64Value(n)
		}
	}

	return slog.StringValue(v.Type().String())
}

// slogValue renders an owned tree value (the any stored in a Field or
// Array.Values) the same way bson2's own slogValue helper does: known
// scalar types render directly, *Document/*Array recurse through their own
// LogValuer, and everything else falls back to %v via slog.AnyValue.
func slogValue(v any) slog.Value {
	switch v := v.(type) {
	case *Document:
		return v.LogValue()
	case *Array:
		return v.LogValue()
	case string:
		return slog.StringValue(v)
	case float64:
		return slog.Float64Value(v)
	case bool:
		return slog.BoolValue(v)
	case int32:
		return slog.Int64Value(int64(v))
	case int64:
		return slog.Int64Value(v)
	default:
		return slog.AnyValue(v)
	}
}

