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

import (
	"math/big"
	"strconv"
	"strings"
)

// String returns the unsigned decimal text of d, e.g. "123.45" for
// significand 12345, exponent -2. CompactDec and BigDec never carry a sign
// themselves; see serde's decimal field comparator for where the sign bit
// lives on the wire.
func (d CompactDec) String() string {
	return formatUnsigned(strconv.FormatUint(d.sig, 10), d.exp)
}

// String returns the unsigned decimal text of d.
func (d BigDec) String() string {
	s := "0"
	if !d.sig.IsZero() {
		s = new(big.Int).SetBytes(d.sig.BytesBE()).String()
	}
	return formatUnsigned(s, d.exp)
}

func formatUnsigned(digits string, exponent int32) string {
	if exponent >= 0 {
		return digits + strings.Repeat("0", int(exponent))
	}
	point := -int(exponent)
	if left := point - len(digits); left > 0 {
		return "0." + strings.Repeat("0", left) + digits
	} else if left < 0 {
		offset := -left
		return digits[:offset] + "." + digits[offset:]
	}
	return "0." + digits
}
