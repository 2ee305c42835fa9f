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

// FieldKind names one of the primitive field types a record's schema can
// declare. The dispatcher (external to this package) maps its own schema
// representation onto these before calling ComparatorFor/SkipperFor; this
// package never interprets a schema itself.
type FieldKind int

const (
	FieldBool FieldKind = iota
	FieldByte
	FieldShort
	FieldInt
	FieldLong
	FieldFloat
	FieldDouble
	FieldDate
	FieldDateTime
	FieldString
	FieldDecimal
)

// String names a FieldKind for diagnostics.
func (k FieldKind) String() string {
	switch k {
	case FieldBool:
		return "bool"
	case FieldByte:
		return "byte"
	case FieldShort:
		return "short"
	case FieldInt:
		return "int"
	case FieldLong:
		return "long"
	case FieldFloat:
		return "float"
	case FieldDouble:
		return "double"
	case FieldDate:
		return "date"
	case FieldDateTime:
		return "datetime"
	case FieldString:
		return "string"
	case FieldDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

var comparators = [...]Comparator{
	FieldBool:     CompareBool,
	FieldByte:     CompareByte,
	FieldShort:    CompareShort,
	FieldInt:      CompareInt,
	FieldLong:     CompareLong,
	FieldFloat:    CompareFloat,
	FieldDouble:   CompareDouble,
	FieldDate:     CompareDate,
	FieldDateTime: CompareDateTime,
	FieldString:   CompareString,
	FieldDecimal:  CompareDecimal,
}

var skippers = [...]Skipper{
	FieldBool:     SkipBool,
	FieldByte:     SkipByte,
	FieldShort:    SkipShort,
	FieldInt:      SkipInt,
	FieldLong:     SkipLong,
	FieldFloat:    SkipFloat,
	FieldDouble:   SkipDouble,
	FieldDate:     SkipDate,
	FieldDateTime: SkipDateTime,
	FieldString:   SkipString,
	FieldDecimal:  SkipDecimal,
}

// ComparatorFor returns the comparator registered for kind. It panics on an
// out-of-range kind, the same contract every other entry point in this
// package has for malformed input: the dispatcher is trusted to pass a
// valid schema-derived kind.
func ComparatorFor(kind FieldKind) Comparator {
	return comparators[kind]
}

// SkipperFor returns the skipper registered for kind.
func SkipperFor(kind FieldKind) Skipper {
	return skippers[kind]
}
