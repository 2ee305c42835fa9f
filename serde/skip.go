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

// Skipper advances one cursor past a single occurrence of a field without
// comparing it to anything.
type Skipper func(c *Cursor)

// SkipBool advances past a single signed byte.
func SkipBool(c *Cursor) { c.skip(1) }

// SkipByte advances past a null-headed 1-byte field.
func SkipByte(c *Cursor) { skipNullableFixed(c, 1) }

// SkipShort advances past a null-headed 2-byte field.
func SkipShort(c *Cursor) { skipNullableFixed(c, 2) }

// SkipInt advances past a null-headed 4-byte field.
func SkipInt(c *Cursor) { skipNullableFixed(c, 4) }

// SkipLong advances past a null-headed 8-byte field.
func SkipLong(c *Cursor) { skipNullableFixed(c, 8) }

// SkipFloat advances past a null-headed 4-byte field.
func SkipFloat(c *Cursor) { skipNullableFixed(c, 4) }

// SkipDouble advances past a null-headed 8-byte field.
func SkipDouble(c *Cursor) { skipNullableFixed(c, 8) }

// SkipDate advances past a 4-byte sign-flagged field. There is no separate
// null header: the field is always exactly 4 bytes.
func SkipDate(c *Cursor) { c.skip(4) }

// SkipDateTime advances past an 8-byte sign-flagged field.
func SkipDateTime(c *Cursor) { c.skip(8) }

// SkipString advances past a compact-varint length prefix and, if the
// length is non-negative, past that many payload bytes.
func SkipString(c *Cursor) {
	n := DecodeVarint(c)
	if n >= 0 {
		c.skip(int(n))
	}
}

// SkipDecimal advances past a decimal field: the header byte and, if not
// null, the scale varint and either a compact varint or a length-prefixed
// body.
func SkipDecimal(c *Cursor) {
	head := c.byte()
	if head == decimalNull {
		return
	}
	compact := head&decimalCompact != 0
	DecodeVarint(c) // scale
	if compact {
		DecodeVarint(c)
	} else {
		n := DecodeVarint(c)
		c.skip(int(n))
	}
}

func skipNullableFixed(c *Cursor, width int) {
	present := c.byte() != nullHeader
	if present {
		c.skip(width)
	}
}
