// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package serde

import (
	"encoding/binary"
	"math"

	"github.com/shuffledb/recordcmp/mpdec"
	"github.com/shuffledb/recordcmp/mpint"
)

// Comparator reads one field's worth of bytes from each cursor, advances
// both past it regardless of outcome, and returns -1/0/+1.
type Comparator func(a, b *Cursor) int

// nullHeader is the header byte numeric fields use to mark a null value; any
// other header value means a payload follows.
const nullHeader = 0

// CompareBool compares two single signed bytes. There is no null header for
// booleans.
func CompareBool(a, b *Cursor) int {
	av, bv := int8(a.byte()), int8(b.byte())
	return sign64(int64(av), int64(bv))
}

// CompareByte compares two null-headed 1-byte signed integers.
func CompareByte(a, b *Cursor) int {
	return compareNullableFixed(a, b, 1, func(ab, bb []byte) int {
		return sign64(int64(int8(ab[0])), int64(int8(bb[0])))
	})
}

// CompareShort compares two null-headed 2-byte little-endian signed
// integers.
func CompareShort(a, b *Cursor) int {
	return compareNullableFixed(a, b, 2, func(ab, bb []byte) int {
		return sign64(int64(int16(binary.LittleEndian.Uint16(ab))), int64(int16(binary.LittleEndian.Uint16(bb))))
	})
}

// CompareInt compares two null-headed 4-byte little-endian signed integers.
func CompareInt(a, b *Cursor) int {
	return compareNullableFixed(a, b, 4, func(ab, bb []byte) int {
		return sign64(int64(int32(binary.LittleEndian.Uint32(ab))), int64(int32(binary.LittleEndian.Uint32(bb))))
	})
}

// CompareLong compares two null-headed 8-byte little-endian signed
// integers.
func CompareLong(a, b *Cursor) int {
	return compareNullableFixed(a, b, 8, func(ab, bb []byte) int {
		return sign64(int64(binary.LittleEndian.Uint64(ab)), int64(binary.LittleEndian.Uint64(bb)))
	})
}

// CompareFloat compares two null-headed 4-byte little-endian IEEE-754
// floats under natural ordering. NaN is not given a defined tie-break; the
// producer is expected not to emit it on sort keys.
func CompareFloat(a, b *Cursor) int {
	return compareNullableFixed(a, b, 4, func(ab, bb []byte) int {
		av := math.Float32frombits(binary.LittleEndian.Uint32(ab))
		bv := math.Float32frombits(binary.LittleEndian.Uint32(bb))
		return signFloat(float64(av), float64(bv))
	})
}

// CompareDouble compares two null-headed 8-byte little-endian IEEE-754
// doubles under natural ordering.
func CompareDouble(a, b *Cursor) int {
	return compareNullableFixed(a, b, 8, func(ab, bb []byte) int {
		av := math.Float64frombits(binary.LittleEndian.Uint64(ab))
		bv := math.Float64frombits(binary.LittleEndian.Uint64(bb))
		return signFloat(av, bv)
	})
}

// CompareDate compares two 4-byte little-endian signed integers whose sign
// bit doubles as a null flag: negative is null, non-negative compares
// numerically.
func CompareDate(a, b *Cursor) int {
	av := int32(binary.LittleEndian.Uint32(a.take(4)))
	bv := int32(binary.LittleEndian.Uint32(b.take(4)))
	return compareSignFlagged(int64(av), int64(bv))
}

// CompareDateTime compares two 8-byte little-endian signed integers whose
// sign bit doubles as a null flag.
func CompareDateTime(a, b *Cursor) int {
	av := int64(binary.LittleEndian.Uint64(a.take(8)))
	bv := int64(binary.LittleEndian.Uint64(b.take(8)))
	return compareSignFlagged(av, bv)
}

// CompareString compares two compact-varint length-prefixed byte strings.
// A negative length denotes null. Two nulls are equal; null is less than
// non-null; otherwise comparison is byte-lexicographic over the shared
// prefix with ties broken by length. Both cursors advance past their full
// payload regardless of outcome.
func CompareString(a, b *Cursor) int {
	aLen := DecodeVarint(a)
	bLen := DecodeVarint(b)
	aNull, bNull := aLen < 0, bLen < 0
	var aBuf, bBuf []byte
	if !aNull {
		aBuf = a.take(int(aLen))
	}
	if !bNull {
		bBuf = b.take(int(bLen))
	}
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}
	n := len(aBuf)
	if len(bBuf) < n {
		n = len(bBuf)
	}
	for i := 0; i < n; i++ {
		if d := int(aBuf[i]) - int(bBuf[i]); d != 0 {
			return sign64(int64(aBuf[i]), int64(bBuf[i]))
		}
	}
	return sign64(int64(len(aBuf)), int64(len(bBuf)))
}

// decimalHeader bits, matching the wire layout the dispatcher's upstream
// producers emit. decimalPresent must be set on every non-null header: a
// negative, non-compact decimal has neither decimalPlus nor decimalCompact
// set, so without a dedicated presence bit its header byte would collide
// with decimalNull. Every producer ORs decimalPresent into a non-null
// header regardless of sign or compactness.
const (
	decimalNull    = 0
	decimalPresent = 1 << 0
	decimalPlus    = 1 << 1
	decimalCompact = 1 << 2
)

// CompareDecimal compares two decimal fields: a header byte, a
// compact-varint scale, and either a compact-varint significand or a
// length-prefixed big-endian unsigned magnitude. Both cursors fully
// advance past their decimal field regardless of outcome.
func CompareDecimal(a, b *Cursor) int {
	aHead := a.byte()
	bHead := b.byte()
	aNull := aHead == decimalNull
	bNull := bHead == decimalNull
	if aNull || bNull {
		switch {
		case aNull && bNull:
			return 0
		case aNull:
			return -1
		default:
			return 1
		}
	}

	aNeg := aHead&decimalPlus == 0
	bNeg := bHead&decimalPlus == 0
	aCompact := aHead&decimalCompact != 0
	bCompact := bHead&decimalCompact != 0

	aScale := DecodeVarint(a)
	bScale := DecodeVarint(b)

	var aSig uint64
	var aBuf []byte
	if aCompact {
		aSig = uint64(DecodeVarint(a))
	} else {
		aBuf = readDecimalBody(a)
	}
	var bSig uint64
	var bBuf []byte
	if bCompact {
		bSig = uint64(DecodeVarint(b))
	} else {
		bBuf = readDecimalBody(b)
	}

	if aNeg != bNeg {
		if aNeg {
			return -1
		}
		return 1
	}

	aExp := int32(-aScale)
	bExp := int32(-bScale)
	var s mpint.Sign
	switch {
	case aCompact && bCompact:
		s = mpdec.CompareUint64Uint64(aSig, aExp, bSig, bExp)
	case aCompact && !bCompact:
		s = mpdec.CompareUint64Bytes(aSig, aExp, bBuf, bExp)
	case !aCompact && bCompact:
		s = mpdec.CompareBytesUint64(aBuf, aExp, bSig, bExp)
	default:
		s = mpdec.CompareBytesBytes(aBuf, aExp, bBuf, bExp)
	}
	if aNeg {
		s = s.Negate()
	}
	return s.Int()
}

func readDecimalBody(c *Cursor) []byte {
	n := DecodeVarint(c)
	return c.take(int(n))
}

func compareNullableFixed(a, b *Cursor, width int, cmp func(ab, bb []byte) int) int {
	aPresent := a.byte() != nullHeader
	bPresent := b.byte() != nullHeader
	var aBuf, bBuf []byte
	if aPresent {
		aBuf = a.take(width)
	}
	if bPresent {
		bBuf = b.take(width)
	}
	switch {
	case !aPresent && !bPresent:
		return 0
	case !aPresent:
		return -1
	case !bPresent:
		return 1
	}
	return cmp(aBuf, bBuf)
}

func compareSignFlagged(a, b int64) int {
	aNull, bNull := a < 0, b < 0
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}
	return sign64(a, b)
}

func sign64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func signFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
