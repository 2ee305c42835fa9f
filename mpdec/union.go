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

// Decimal is the tagged union of CompactDec and BigDec. Callers that don't
// know in advance which flavor they're holding (such as callers of
// ParseDecimal) can hold a Decimal and dispatch through CompareDecimals
// rather than writing the four-way type switch themselves.
type Decimal interface {
	decimal()
}

func (CompactDec) decimal() {}
func (BigDec) decimal() {}

// CompareDecimals compares any pairing of CompactDec/BigDec values.
func CompareDecimals(a, b Decimal) Sign {
	switch av := a.(type) {
	case CompactDec:
		switch bv := b.(type) {
		case CompactDec:
			return av.Cmp(bv)
		case BigDec:
			return av.CmpBig(bv)
		}
	case BigDec:
		switch bv := b.(type) {
		case CompactDec:
			return av.CmpCompact(bv)
		case BigDec:
			return av.Cmp(bv)
		}
	}
	panic("mpdec: unreachable Decimal variant")
}
