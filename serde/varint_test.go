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
	"math"
	"testing"
)

func TestVarintSingleByteBoundaries(t *testing.T) {
	tests := []struct {
		v    int64
		want byte
	}{
		{-124, 0x84},
		{127, 0x7F},
		{0, 0x00},
		{-1, 0xFF},
	}
	for _, tc := range tests {
		buf := EncodeVarint(nil, tc.v)
		if len(buf) != 1 {
			t.Fatalf("EncodeVarint(%d) = %v, want single byte", tc.v, buf)
		}
		if buf[0] != tc.want {
			t.Errorf("EncodeVarint(%d) = %#x, want %#x", tc.v, buf[0], tc.want)
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, -124, -125, 127, 128, -129,
		math.MinInt8, math.MaxInt8,
		math.MinInt16, math.MaxInt16,
		math.MinInt32, math.MaxInt32,
		math.MinInt64, math.MaxInt64,
		1 << 20, -(1 << 20),
	}
	for _, v := range values {
		buf := EncodeVarint(nil, v)
		c := NewCursor(buf)
		got := DecodeVarint(c)
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
		if c.Pos != len(buf) {
			t.Errorf("round trip %d: cursor advanced %d, encoded length %d", v, c.Pos, len(buf))
		}
	}
}

func TestVarintSizeFromHeadByte(t *testing.T) {
	for _, v := range []int64{0, -124, 127, 128, -129, math.MinInt32, math.MaxInt64} {
		buf := EncodeVarint(nil, v)
		if got := VarintSize(int8(buf[0])); got != len(buf) {
			t.Errorf("VarintSize for encoding of %d = %d, want %d", v, got, len(buf))
		}
	}
}

func TestVarintDecoderAcceptsAnyDeclaredScale(t *testing.T) {
	// The decoder must accept a scale wider than strictly necessary; only
	// the encoder is obliged to pick the minimal one.
	buf := appendScale(nil, 4, uint64(int64(5)))
	c := NewCursor(buf)
	if got := DecodeVarint(c); got != 5 {
		t.Errorf("over-wide scale decode = %d, want 5", got)
	}
	if c.Pos != len(buf) {
		t.Errorf("cursor did not advance past the full payload")
	}
}
