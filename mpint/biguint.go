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

package mpint

import "math/bits"

// Debug turns on internal invariant checks (BigUInt canonicity, and the
// absence of a leading zero byte in BytesBE). Multiplication carries are
// not checked. It is off by default; tests that want to turn undefined
// behavior into a panic should set it to true in TestMain.
var Debug = false

// BigUInt is a non-negative, arbitrary-precision integer represented as
// little-endian 32-bit limbs: limbs[0] is the least significant word. A
// canonical BigUInt either has no limbs (value zero) or a non-zero trailing
// limb. Every constructor and every arithmetic method returns a canonical
// value. The zero value of BigUInt is ready to use and represents zero.
//
// BigUInt is immutable after construction: none of its methods mutate the
// receiver's limb slice in place, so a BigUInt may be freely shared across
// goroutines.
type BigUInt struct {
	limbs []uint32
}

// FromUint64 returns a BigUInt with the value of v, using zero, one, or two
// limbs depending on v's magnitude.
func FromUint64(v uint64) BigUInt {
	if v == 0 {
		return BigUInt{}
	}
	lo := uint32(v)
	hi := uint32(v >> 32)
	if hi == 0 {
		return BigUInt{limbs: []uint32{lo}}
	}
	return BigUInt{limbs: []uint32{lo, hi}}
}

// FromBytesBE parses a big-endian ("network byte order") unsigned magnitude
// into a BigUInt. Leading zero bytes are stripped; the remaining bytes are
// grouped into 32-bit limbs from the least-significant end, with a partial
// trailing (most significant) group of 1-3 bytes zero-extended into its
// limb.
func FromBytesBE(be []byte) BigUInt {
	for len(be) > 0 && be[0] == 0 {
		be = be[1:]
	}
	if len(be) == 0 {
		return BigUInt{}
	}
	nLimbs := (len(be) + 3) / 4
	limbs := make([]uint32, nLimbs)
	rest := be
	for i := 0; len(rest) >= 4; i++ {
		n := len(rest)
		limbs[i] = uint32(rest[n-1]) | uint32(rest[n-2])<<8 | uint32(rest[n-3])<<16 | uint32(rest[n-4])<<24
		rest = rest[:n-4]
	}
	if len(rest) != 0 {
		var v uint32
		for _, b := range rest {
			v = v<<8 | uint32(b)
		}
		limbs[nLimbs-1] = v
	}
	u := BigUInt{limbs: limbs}
	u.assertCanonical()
	return u
}

// IsZero reports whether u represents zero.
func (u BigUInt) IsZero() bool {
	return len(u.limbs) == 0
}

// Bits returns the position of the highest set bit plus one, or 0 if u is
// zero.
func (u BigUInt) Bits() int {
	if len(u.limbs) == 0 {
		return 0
	}
	top := u.limbs[len(u.limbs)-1]
	assert(top != 0, "canonical BigUInt has a non-zero trailing limb")
	return (len(u.limbs)-1)*32 + (32 - bits.LeadingZeros32(top))
}

// BytesBE returns the minimal-length big-endian encoding of u: empty for
// zero, otherwise a slice whose first byte is non-zero and whose length is
// ceil(Bits()/8).
func (u BigUInt) BytesBE() []byte {
	n := u.Bits()
	if n == 0 {
		return nil
	}
	size := (n + 7) / 8
	out := make([]byte, size)
	firstLimbSize := size % 4
	if firstLimbSize == 0 {
		firstLimbSize = 4
	}
	pos := size
	for i, limb := range u.limbs {
		width := 4
		if i == len(u.limbs)-1 {
			width = firstLimbSize
		}
		for j := 0; j < width; j++ {
			pos--
			out[pos] = byte(limb >> (8 * j))
		}
	}
	assert(out[0] != 0, "minimal BytesBE must not have a leading zero byte")
	return out
}

// CompareUint64 returns the Sign of u-other.
func (u BigUInt) CompareUint64(other uint64) Sign {
	switch len(u.limbs) {
	case 0:
		return CompareUint64(0, other)
	case 1:
		if d := CompareUint64(0, uint64(uint32(other>>32))); d != EqualTo {
			return d
		}
		return CompareUint64(uint64(u.limbs[0]), uint64(uint32(other)))
	case 2:
		if d := CompareUint64(uint64(u.limbs[1]), uint64(uint32(other>>32))); d != EqualTo {
			return d
		}
		return CompareUint64(uint64(u.limbs[0]), uint64(uint32(other)))
	default:
		return GreaterThan
	}
}

// Compare returns the Sign of u-other.
func (u BigUInt) Compare(other BigUInt) Sign {
	if d := CompareInt(u.Bits(), other.Bits()); d != EqualTo {
		return d
	}
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if d := CompareUint64(uint64(u.limbs[i]), uint64(other.limbs[i])); d != EqualTo {
			return d
		}
	}
	return EqualTo
}

// MulUint32 returns u*factor.
func (u BigUInt) MulUint32(factor uint32) BigUInt {
	if factor == 0 || u.IsZero() {
		return BigUInt{}
	}
	if factor == 1 {
		return u
	}
	out := make([]uint32, 0, len(u.limbs)+1)
	var carry uint64
	for _, limb := range u.limbs {
		work := uint64(limb)*uint64(factor) + carry
		out = append(out, uint32(work))
		carry = work >> 32
	}
	if carry != 0 {
		out = append(out, uint32(carry))
	}
	return canonicalBigUInt(out)
}

// Mul returns u*other using schoolbook multiplication, O(len(u)*len(other)).
// The outer loop always runs over the operand with fewer limbs.
func (u BigUInt) Mul(other BigUInt) BigUInt {
	if u.IsZero() || other.IsZero() {
		return BigUInt{}
	}
	if len(u.limbs) > len(other.limbs) {
		return other.Mul(u)
	}
	if u.Bits() == 1 {
		return other
	}
	if other.Bits() == 1 {
		return u
	}
	resultBits := u.Bits() + other.Bits()
	out := make([]uint32, (resultBits+31)/32)
	for i, a := range u.limbs {
		var carry uint64
		for j, b := range other.limbs {
			k := i + j
			work := uint64(a)*uint64(b) + uint64(out[k]) + carry
			out[k] = uint32(work)
			carry = work >> 32
		}
		for j := len(other.limbs); carry != 0; j++ {
			k := i + j
			work := uint64(out[k]) + carry
			out[k] = uint32(work)
			carry = work >> 32
		}
	}
	return canonicalBigUInt(out)
}

func canonicalBigUInt(limbs []uint32) BigUInt {
	for len(limbs) > 0 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	u := BigUInt{limbs: limbs}
	u.assertCanonical()
	return u
}

func (u BigUInt) assertCanonical() {
	if !Debug {
		return
	}
	assert(len(u.limbs) == 0 || u.limbs[len(u.limbs)-1] != 0, "BigUInt must be canonical")
}

func assert(cond bool, msg string) {
	if Debug && !cond {
		panic("mpint: " + msg)
	}
}
