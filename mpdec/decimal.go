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

// Package mpdec implements the two unsigned decimal representations
// (CompactDec, BigDec) and the cross-comparator that orders them without
// always materializing a fully rescaled value.
package mpdec

import "github.com/shuffledb/recordcmp/mpint"

// Sign is re-exported from mpint so callers of this package never need to
// import mpint just to name a comparison result.
type Sign = mpint.Sign

const (
	LessThan    = mpint.LessThan
	EqualTo     = mpint.EqualTo
	GreaterThan = mpint.GreaterThan
)

// CompactDec is an unsigned decimal whose significand fits in 64 bits.
// Represents significand * 10^exponent. Immutable.
type CompactDec struct {
	sig uint64
	exp int32
}

// NewCompactDec returns a CompactDec with the given significand and
// exponent.
func NewCompactDec(significand uint64, exponent int32) CompactDec {
	return CompactDec{sig: significand, exp: exponent}
}

// Significand returns the unsigned significand.
func (d CompactDec) Significand() uint64 { return d.sig }

// Exponent returns the base-10 exponent.
func (d CompactDec) Exponent() int32 { return d.exp }

// BigDec is an unsigned decimal with an arbitrary-precision significand.
// Represents significand * 10^exponent. Immutable.
type BigDec struct {
	sig mpint.BigUInt
	exp int32
}

// NewBigDec returns a BigDec with the given significand and exponent.
func NewBigDec(significand mpint.BigUInt, exponent int32) BigDec {
	return BigDec{sig: significand, exp: exponent}
}

// Significand returns the unsigned significand.
func (d BigDec) Significand() mpint.BigUInt { return d.sig }

// Exponent returns the base-10 exponent.
func (d BigDec) Exponent() int32 { return d.exp }

// Cmp compares d with another CompactDec.
func (d CompactDec) Cmp(other CompactDec) Sign {
	a, b := d.sig, other.sig
	aExp, bExp := d.exp, other.exp
	switch {
	case aExp == bExp:
		return mpint.CompareUint64(a, b)
	case aExp < bExp:
		return compareWithExponentU64U64(a, b, uint32(bExp-aExp))
	default:
		return compareWithExponentU64U64(b, a, uint32(aExp-bExp)).Negate()
	}
}

// CmpBig compares d with a BigDec.
func (d CompactDec) CmpBig(other BigDec) Sign {
	return other.CmpCompact(d).Negate()
}

// CmpCompact compares d with a CompactDec.
func (d BigDec) CmpCompact(other CompactDec) Sign {
	a, b := d.sig, other.sig
	aExp, bExp := d.exp, other.exp
	if aExp == bExp {
		return a.CompareUint64(b)
	}
	if aExp < bExp {
		return compareWithExponentBigU64(a, b, uint32(bExp-aExp))
	}
	return compareWithExponentU64Big(b, a, uint32(aExp-bExp)).Negate()
}

// Cmp compares d with another BigDec.
func (d BigDec) Cmp(other BigDec) Sign {
	a, b := d.sig, other.sig
	aExp, bExp := d.exp, other.exp
	if aExp == bExp {
		return a.Compare(b)
	}
	if aExp < bExp {
		return compareWithExponentBigBig(a, b, uint32(bExp-aExp))
	}
	return compareWithExponentBigBig(b, a, uint32(aExp-bExp)).Negate()
}

// IsZero reports whether d's significand is zero. A zero significand forms
// a single equivalence class regardless of exponent.
func (d CompactDec) IsZero() bool { return d.sig == 0 }

// IsZero reports whether d's significand is zero.
func (d BigDec) IsZero() bool { return d.sig.IsZero() }
