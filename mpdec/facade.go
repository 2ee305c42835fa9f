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

package mpdec

import "github.com/shuffledb/recordcmp/mpint"

// CompareBytesBytes compares two decimals whose significands are given as
// big-endian unsigned magnitudes.
func CompareBytesBytes(aBuf []byte, aExponent int32, bBuf []byte, bExponent int32) Sign {
	a := NewBigDec(mpint.FromBytesBE(aBuf), aExponent)
	b := NewBigDec(mpint.FromBytesBE(bBuf), bExponent)
	return a.Cmp(b)
}

// CompareBytesUint64 compares a decimal with a big-endian significand
// against a decimal with a compact uint64 significand.
func CompareBytesUint64(aBuf []byte, aExponent int32, bSignificand uint64, bExponent int32) Sign {
	a := NewBigDec(mpint.FromBytesBE(aBuf), aExponent)
	b := NewCompactDec(bSignificand, bExponent)
	return a.CmpCompact(b)
}

// CompareUint64Bytes compares a decimal with a compact uint64 significand
// against a decimal with a big-endian significand. Defined as the negation
// of CompareBytesUint64 with its operands swapped, so only one
// implementation needs to exist.
func CompareUint64Bytes(aSignificand uint64, aExponent int32, bBuf []byte, bExponent int32) Sign {
	return CompareBytesUint64(bBuf, bExponent, aSignificand, aExponent).Negate()
}

// CompareUint64Uint64 compares two decimals whose significands both fit in
// a uint64.
func CompareUint64Uint64(aSignificand uint64, aExponent int32, bSignificand uint64, bExponent int32) Sign {
	if aExponent == bExponent {
		return mpint.CompareUint64(aSignificand, bSignificand)
	}
	a := NewCompactDec(aSignificand, aExponent)
	b := NewCompactDec(bSignificand, bExponent)
	return a.Cmp(b)
}
