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

// AsDocument returns the value as a RawDocument. The tag must be
// TagEmbeddedDocument. The returned document's bytes alias v's, and the
// outer frame has already been proven consistent by the walker that
// produced v (the value-size computation for EmbeddedDocument requires the
// inner length prefix to match the extent and the value to be
// null-terminated), so this does not re-validate with NewDocument.
func (v Value) AsDocument() (RawDocument, error) {
	if err := v.checkType(TagEmbeddedDocument); err != nil {
		return nil, err
	}

	return NewDocumentUnchecked(v.data), nil
}
