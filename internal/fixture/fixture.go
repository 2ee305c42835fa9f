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

// Package fixture stands in for the external record-reader producer and
// dispatcher described in the core's interface contract: it builds
// serialized tuples matching the wire formats the core's comparators and
// skippers expect, and walks a fixed schema over pairs of them the way a
// real dispatcher would. It exists only to drive benchmarks and end-to-end
// tests of the serde package against something shaped like a real record.
package fixture

import (
	"math/rand"

	"github.com/shuffledb/recordcmp/serde"
)

// Schema is the fixed field order the fixture encodes into every tuple:
// an int, a string, and a decimal, in that order. A real dispatcher would
// derive this from a generated schema; the fixture hardcodes it because it
// is not the core's job to interpret one.
var Schema = []serde.FieldKind{
	serde.FieldInt,
	serde.FieldString,
	serde.FieldDecimal,
}

// Tuple is one encoded record matching Schema.
type Tuple struct {
	Buf []byte
}

// Generate returns n pseudo-random tuples built from rnd, suitable for
// feeding to Compare or Skip in a benchmark loop.
func Generate(rnd *rand.Rand, n int) []Tuple {
	out := make([]Tuple, n)
	for i := range out {
		out[i] = Tuple{Buf: randomTuple(rnd)}
	}
	return out
}

func randomTuple(rnd *rand.Rand) []byte {
	var buf []byte
	buf = appendInt(buf, rnd.Int31())
	buf = appendString(buf, randomString(rnd, rnd.Intn(32)))
	buf = appendDecimalCompact(buf, rnd.Uint64(), int64(rnd.Intn(20)), rnd.Intn(2) == 0)
	return buf
}

func appendInt(buf []byte, v int32) []byte {
	buf = append(buf, 1)
	for i := 0; i < 4; i++ {
		buf = append(buf, byte(uint32(v)>>(8*i)))
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = serde.EncodeVarint(buf, int64(len(s)))
	return append(buf, s...)
}

func appendDecimalCompact(buf []byte, sig uint64, scale int64, negative bool) []byte {
	head := byte(1<<0 | 1<<2) // PRESENT_MASK | COMPACT_MASK
	if !negative {
		head |= 1 << 1 // PLUS_MASK
	}
	buf = append(buf, head)
	buf = serde.EncodeVarint(buf, scale)
	buf = serde.EncodeVarint(buf, int64(sig))
	return buf
}

func randomString(rnd *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}

// Compare walks Schema over a and b field by field, using serde's
// comparator table, and returns the first non-zero ordering it finds (or 0
// if every field ties). It keeps walking every field after the ordering is
// decided, so each comparator in the table runs on every call.
func Compare(a, b Tuple) int {
	ca := serde.NewCursor(a.Buf)
	cb := serde.NewCursor(b.Buf)
	result := 0
	for _, kind := range Schema {
		cmp := serde.ComparatorFor(kind)(ca, cb)
		if result == 0 {
			result = cmp
		}
	}
	return result
}

// Skip walks Schema over t, advancing a fresh cursor past every field
// without comparing anything, mirroring a dispatcher skipping a record it
// has already decided not to inspect further.
func Skip(t Tuple) {
	c := serde.NewCursor(t.Buf)
	for _, kind := range Schema {
		serde.SkipperFor(kind)(c)
	}
}
