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
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// ToBSONDecimal128 converts an unsigned Decimal plus a separate sign into
// MongoDB's Decimal128 wire type, for producers that exchange decimals with
// a BSON-speaking store. This goes through the same text round trip the
// teacher uses in its own serialization.go, rather than a byte-for-byte
// reinterpretation of the Decimal128 layout.
func ToBSONDecimal128(d Decimal, negative bool) (bson.Decimal128, error) {
	s := decimalString(d)
	if negative && s != "0" {
		s = "-" + s
	}
	v, err := bson.ParseDecimal128(s)
	if err != nil {
		return bson.Decimal128{}, errors.Wrapf(err, "convert %s to Decimal128", s)
	}
	return v, nil
}

// FromBSONDecimal128 converts a MongoDB Decimal128 value back into a
// Decimal and its separate sign.
func FromBSONDecimal128(v bson.Decimal128) (d Decimal, negative bool, err error) {
	d, sign, err := ParseDecimal(v.String())
	if err != nil {
		return nil, false, errors.Wrapf(err, "convert Decimal128 %s", v.String())
	}
	return d, sign < 0, nil
}

func decimalString(d Decimal) string {
	switch v := d.(type) {
	case CompactDec:
		return v.String()
	case BigDec:
		return v.String()
	default:
		panic("mpdec: unreachable Decimal variant")
	}
}
