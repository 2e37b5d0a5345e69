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

// Package must provides helpers that turn "impossible" errors into panics.
//
// They must be used only for invariants that the caller has already
// established are impossible to violate (for example, appending a value
// whose type was validated a few lines above); never for errors that can be
// triggered by external input.
package must

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

// NotFail returns v if err is nil, and panics otherwise.
func NotFail[T any](v T, err error) T {
	NoError(err)
	return v
}
