// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verticareader

import (
	"fmt"
	"regexp"
	"strings"
)

// ColumnType identifies the logical type of one column in a native
// binary file. The list is closed: it covers the types Vertica writes
// into native exports, and a types file must name one of them for
// every column.
type ColumnType int

const (
	// Integer is a signed little-endian integer of 1, 2, 4, or 8 bytes.
	Integer ColumnType = iota
	// Float is an 8 byte IEEE-754 double.
	Float
	// Char is fixed width UTF-8 text, space padded.
	Char
	// Varchar is variable width UTF-8 text.
	Varchar
	// Boolean is a single byte, 1 for true.
	Boolean
	// Date counts days relative to 2000-01-01.
	Date
	// Timestamp counts microseconds relative to 2000-01-01 00:00:00.
	Timestamp
	// TimestampTz is a Timestamp rendered with a zone offset suffix.
	TimestampTz
	// Time counts microseconds since midnight.
	Time
	// TimeTz packs microseconds since midnight and a zone into one word.
	TimeTz
	// Varbinary is variable width raw bytes.
	Varbinary
	// Binary is fixed width raw bytes.
	Binary
	// Numeric is a sequence of 8 byte little-endian words.
	Numeric
	// Interval counts elapsed microseconds.
	Interval
)

var columnTypeNames = [...]string{
	Integer:     "integer",
	Float:       "float",
	Char:        "char",
	Varchar:     "varchar",
	Boolean:     "boolean",
	Date:        "date",
	Timestamp:   "timestamp",
	TimestampTz: "timestamptz",
	Time:        "time",
	TimeTz:      "timetz",
	Varbinary:   "varbinary",
	Binary:      "binary",
	Numeric:     "numeric",
	Interval:    "interval",
}

func (t ColumnType) String() string {
	if int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return fmt.Sprintf("columntype(%d)", int(t))
}

// sizeRe matches a parenthesized size qualifier, so declarations like
// varchar(32) or numeric(18,4) resolve to their base type.
var sizeRe = regexp.MustCompile(`\(.+\)`)

// ColumnTypeFromString maps a types file declaration to its
// ColumnType. Matching is case insensitive and ignores any
// parenthesized size qualifier. "int" is accepted for Integer.
func ColumnTypeFromString(s string) (ColumnType, error) {
	switch strings.ToLower(sizeRe.ReplaceAllString(s, "")) {
	case "integer", "int":
		return Integer, nil
	case "float":
		return Float, nil
	case "char":
		return Char, nil
	case "varchar":
		return Varchar, nil
	case "boolean":
		return Boolean, nil
	case "date":
		return Date, nil
	case "timestamp":
		return Timestamp, nil
	case "timestamptz":
		return TimestampTz, nil
	case "time":
		return Time, nil
	case "timetz":
		return TimeTz, nil
	case "varbinary":
		return Varbinary, nil
	case "binary":
		return Binary, nil
	case "numeric":
		return Numeric, nil
	case "interval":
		return Interval, nil
	}
	return 0, fmt.Errorf("verticareader: invalid type: %s", s)
}

// Conversion is an optional rendering applied to Varbinary and Binary
// columns in place of the default hex form.
type Conversion int

const (
	// NoConversion renders binary columns as hex.
	NoConversion Conversion = iota
	// IPAddress renders binary columns as an IPv4 or IPv6 address.
	IPAddress
	// MacAddress renders binary columns as a colon separated MAC address.
	MacAddress
)

func (c Conversion) String() string {
	switch c {
	case NoConversion:
		return "none"
	case IPAddress:
		return "ipaddress"
	case MacAddress:
		return "macaddress"
	}
	return fmt.Sprintf("conversion(%d)", int(c))
}

// ConversionFromString maps a types file conversion name to its
// Conversion. Matching is case insensitive, and an unrecognized name
// maps to NoConversion rather than failing.
func ConversionFromString(s string) Conversion {
	switch strings.ToLower(s) {
	case "ipaddress":
		return IPAddress
	case "macaddress":
		return MacAddress
	}
	return NoConversion
}
