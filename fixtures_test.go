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
	"math"
	"strconv"
)

// elem is one (tag, key, already-framed value) triple used to hand-build
// golden BSON fixtures for tests, the same way bson2's own tests build raw
// byte literals rather than going through any encoder.
type elem struct {
	tag byte
	key string
	val []byte
}

// buildDoc assembles elems into a well-formed BSON document: length prefix,
// each element's tag/cstring-key/value in order, trailing null.
func buildDoc(elems ...elem) []byte {
	var body []byte

	for _, e := range elems {
		body = append(body, e.tag)
		body = append(body, e.key...)
		body = append(body, 0)
		body = append(body, e.val...)
	}

	total := 4 + len(body) + 1

	out := make([]byte, 0, total)
	out = append(out, leU32(uint32(total))...)
	out = append(out, body...)
	out = append(out, 0)

	return out
}

// buildArr assembles vals, all of the same tag, into a well-formed BSON
// array: an ordinary document whose keys are "0", "1", "2", ...
func buildArr(tag byte, vals ...[]byte) []byte {
	elems := make([]elem, len(vals))
	for i, v := range vals {
		elems[i] = elem{tag: tag, key: strconv.Itoa(i), val: v}
	}

	return buildDoc(elems...)
}

func leU32(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)

	return b
}

func leI32(n int32) []byte {
	return leU32(uint32(n))
}

func leU64(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)

	return b
}

func leI64(n int64) []byte {
	return leU64(uint64(n))
}

func leF64(f float64) []byte {
	return leU64(math.Float64bits(f))
}

func cstr(s string) []byte {
	return append([]byte(s), 0)
}

func lenStr(s string) []byte {
	b := cstr(s)

	return append(leI32(int32(len(b))), b...)
}

func boolVal(b bool) []byte {
	if b {
		return []byte{0x01}
	}

	return []byte{0x00}
}

func binVal(subtype byte, payload []byte) []byte {
	out := leI32(int32(len(payload)))
	out = append(out, subtype)
	out = append(out, payload...)

	return out
}

func binOldVal(payload []byte) []byte {
	inner := append(leI32(int32(len(payload))), payload...)
	return binVal(0x02, inner)
}

func regexVal(pattern, options string) []byte {
	return append(cstr(pattern), cstr(options)...)
}

func tsVal(increment, t uint32) []byte {
	return append(leU32(increment), leU32(t)...)
}

func dec128Val(low, high uint64) []byte {
	return append(leU64(low), leU64(high)...)
}

func cwsVal(code string, scope []byte) []byte {
	body := append(lenStr(code), scope...)
	return append(leI32(int32(4+len(body))), body...)
}

func dbPointerVal(ns string, id [12]byte) []byte {
	return append(lenStr(ns), id[:]...)
}
