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

import (
	"math"
	"math/big"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	Debug = true
	os.Exit(m.Run())
}

func TestFromUint64Bits(t *testing.T) {
	tests := []struct {
		v    uint64
		bits int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{math.MaxUint32, 32},
		{math.MaxUint32 + 1, 33},
		{math.MaxUint64, 64},
	}
	for _, tc := range tests {
		u := FromUint64(tc.v)
		if got := u.Bits(); got != tc.bits {
			t.Errorf("FromUint64(%d).Bits() = %d, want %d", tc.v, got, tc.bits)
		}
	}
}

func TestBytesBERoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 255, 256, math.MaxUint32, math.MaxUint32 + 1, math.MaxUint64}
	for _, v := range tests {
		u := FromUint64(v)
		b := u.BytesBE()
		if v == 0 {
			if len(b) != 0 {
				t.Errorf("BytesBE(0) = %v, want empty", b)
			}
			continue
		}
		if b[0] == 0 {
			t.Errorf("BytesBE(%d) has leading zero byte: %v", v, b)
		}
		back := FromBytesBE(b)
		if back.CompareUint64(v) != EqualTo {
			t.Errorf("round trip of %d produced a different value", v)
		}
	}
}

func TestFromBytesBEPartialGroup(t *testing.T) {
	// A single trailing partial group of 1-3 bytes must be accepted and
	// zero-extended into its own limb.
	u := FromBytesBE([]byte{0x01, 0x02, 0x03})
	if u.CompareUint64(0x010203) != EqualTo {
		t.Fatalf("unexpected value for 3-byte input")
	}
	u = FromBytesBE([]byte{0x00, 0x00, 0x01, 0x02, 0x03})
	if u.CompareUint64(0x010203) != EqualTo {
		t.Fatalf("leading zero bytes were not stripped")
	}
}

func TestCompareUint64(t *testing.T) {
	tests := []struct {
		u    BigUInt
		v    uint64
		sign Sign
	}{
		{FromUint64(0), 0, EqualTo},
		{FromUint64(0), 1, LessThan},
		{FromUint64(1), 0, GreaterThan},
		{FromUint64(math.MaxUint64), math.MaxUint64, EqualTo},
		{FromUint64(math.MaxUint64 - 1), math.MaxUint64, LessThan},
	}
	for _, tc := range tests {
		if got := tc.u.CompareUint64(tc.v); got != tc.sign {
			t.Errorf("CompareUint64(%v) = %v, want %v", tc.v, got, tc.sign)
		}
	}

	// A BigUInt with >= 3 limbs must always be GreaterThan a u64.
	big3 := FromBytesBE([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	if got := big3.CompareUint64(math.MaxUint64); got != GreaterThan {
		t.Errorf(">=3-limb BigUInt compared to MaxUint64 = %v, want GreaterThan", got)
	}
}

func TestCompare(t *testing.T) {
	a := FromUint64(100)
	b := FromUint64(200)
	if a.Compare(b) != LessThan {
		t.Errorf("100 vs 200: expected LessThan")
	}
	if b.Compare(a) != GreaterThan {
		t.Errorf("200 vs 100: expected GreaterThan")
	}
	if a.Compare(a) != EqualTo {
		t.Errorf("100 vs 100: expected EqualTo")
	}
}

func TestMulUint32(t *testing.T) {
	tests := []struct {
		a, f, want uint64
	}{
		{0, 5, 0},
		{5, 0, 0},
		{5, 1, 5},
		{1 << 32, 2, 1 << 33},
		{math.MaxUint32, math.MaxUint32, uint64(math.MaxUint32) * uint64(math.MaxUint32)},
	}
	for _, tc := range tests {
		got := FromUint64(tc.a).MulUint32(uint32(tc.f))
		if got.CompareUint64(tc.want) != EqualTo {
			t.Errorf("%d * %d: got != %d", tc.a, tc.f, tc.want)
		}
	}
}

func TestMulAgainstBigInt(t *testing.T) {
	cases := [][2]string{
		{"123456789012345678901234567890", "987654321098765432109876543210"},
		{"0", "123456789"},
		{"1", "99999999999999999999999999999999999"},
		{"340282366920938463463374607431768211455", "2"}, // 2^128-1
	}
	for _, c := range cases {
		ba, _ := new(big.Int).SetString(c[0], 10)
		bb, _ := new(big.Int).SetString(c[1], 10)
		want := new(big.Int).Mul(ba, bb)

		ua := FromBytesBE(ba.Bytes())
		ub := FromBytesBE(bb.Bytes())
		got := ua.Mul(ub)

		if new(big.Int).SetBytes(got.BytesBE()).Cmp(want) != 0 {
			t.Errorf("%s * %s: got %s, want %s", c[0], c[1], new(big.Int).SetBytes(got.BytesBE()), want)
		}
	}
}

func TestPowerOfTen(t *testing.T) {
	for e := uint32(0); e < 40; e++ {
		got := PowerOfTen(e)
		want := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
		if new(big.Int).SetBytes(got.BytesBE()).Cmp(want) != 0 {
			t.Errorf("PowerOfTen(%d): got %s, want %s", e, new(big.Int).SetBytes(got.BytesBE()), want)
		}
	}
}

func TestPowerOfTenConcurrent(t *testing.T) {
	done := make(chan BigUInt, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- PowerOfTen(37)
		}()
	}
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(37), nil)
	for i := 0; i < 8; i++ {
		got := <-done
		if new(big.Int).SetBytes(got.BytesBE()).Cmp(want) != 0 {
			t.Fatalf("concurrent PowerOfTen(37) disagreement")
		}
	}
}

func TestBigUIntCanonicalAfterFromBytes(t *testing.T) {
	for n := uint64(0); n < 2048; n += 37 {
		u := FromBytesBE(FromUint64(n).BytesBE())
		if u.CompareUint64(n) != EqualTo {
			t.Errorf("canonical round trip broke for %d", n)
		}
	}
}
