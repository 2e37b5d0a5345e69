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
	"time"
)

// AsDateTime returns the value as a time.UTC instant. The tag must be
// TagDateTime; the value is a signed 64-bit count of milliseconds since the
// Unix epoch.
//
// Negative millisecond counts are normalized so that the resulting
// time.Time always has a non-negative nanosecond component: if the naive
// division leaves a nonzero remainder, one second is borrowed from the
// seconds component and the nanoseconds are complemented to
// 1_000_000_000 - n. This matches the conventional floor-division
// decomposition of Unix time rather than truncating toward zero.
func (v Value) AsDateTime() (time.Time, error) {
	if err := v.checkType(TagDateTime); err != nil {
		return time.Time{}, err
	}

	if len(v.data) != 8 {
		return time.Time{}, malformed("datetime value should be 8 bytes long")
	}

	millis := int64(binary.LittleEndian.Uint64(v.data))

	secs := millis / 1000
	nanos := (millis % 1000) * int64(time.Millisecond)

	if nanos < 0 {
		secs--
		nanos = int64(time.Second) + nanos
	}

	return time.Unix(secs, nanos).UTC(), nil
}
