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

// Package values renders the raw column bytes decoded by package file
// as text or as typed JSON values, driven by the column schema.
package values

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/joeygibson/verticareader"
)

// invalidText replaces character column bytes that are not valid
// UTF-8.
const invalidText = "INVALID"

// Formatter renders raw column bytes according to a schema. Text
// produces the CSV facing form of a value; JSON produces a typed value
// for JSON encoding. A nil data slice is a null and renders as empty
// text or a JSON null whatever the column type.
//
// Malformed values degrade instead of failing: invalid text becomes
// INVALID, unparsable addresses become empty strings, and each is
// logged. The one exception is an integer column whose byte count is
// wrong, which is a layout mismatch and fails with ErrIntegerWidth.
type Formatter struct {
	schema    *verticareader.Schema
	tzOffset  int
	hexPrefix bool
	logger    *log.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithTimezoneOffset sets the whole hour offset added to TimestampTz
// values before printing. The same offset becomes the +HH/-HH suffix
// on every TimestampTz value.
func WithTimezoneOffset(hours int) Option {
	return func(f *Formatter) { f.tzOffset = hours }
}

// WithHexPrefix controls the 0x prefix on hex rendered binary columns.
// The prefix is on by default.
func WithHexPrefix(on bool) Option {
	return func(f *Formatter) { f.hexPrefix = on }
}

// WithLogger sets the destination for value level warnings. Defaults
// to the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(f *Formatter) { f.logger = l }
}

// NewFormatter returns a formatter for the given schema.
func NewFormatter(schema *verticareader.Schema, opts ...Option) *Formatter {
	f := &Formatter{
		schema:    schema,
		hexPrefix: true,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Schema returns the schema the formatter renders with.
func (f *Formatter) Schema() *verticareader.Schema { return f.schema }

// Text renders column i's raw bytes as text.
func (f *Formatter) Text(i int, data []byte) (string, error) {
	if data == nil {
		return "", nil
	}

	col := f.schema.Col(i)

	switch col.Type {
	case verticareader.Integer:
		n, err := DecodeInteger(data)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case verticareader.Float:
		return strconv.FormatFloat(DecodeFloat(data), 'g', -1, 64), nil
	case verticareader.Char, verticareader.Varchar:
		return f.text(data), nil
	case verticareader.Boolean:
		return strconv.Itoa(int(data[0])), nil
	case verticareader.Date:
		return formatDate(DecodeInt64(data)), nil
	case verticareader.Timestamp:
		return formatTimestamp(DecodeInt64(data)), nil
	case verticareader.TimestampTz:
		return formatTimestampTz(DecodeInt64(data), f.tzOffset), nil
	case verticareader.Time:
		return formatTime(DecodeInt64(data)), nil
	case verticareader.TimeTz:
		return formatTimeTz(data), nil
	case verticareader.Varbinary, verticareader.Binary:
		return f.binary(data, col.Conversion), nil
	case verticareader.Numeric:
		return formatNumeric(data), nil
	case verticareader.Interval:
		return formatInterval(DecodeInt64(data)), nil
	}
	return "", fmt.Errorf("verticareader/values: unhandled column type %v", col.Type)
}

// JSON returns column i as a value for JSON encoding: int64 for
// Integer, float64 for Float, json.Number for Numeric, bool for
// Boolean, nil for null, and the Text rendering for everything else.
// Floats with no JSON form (NaN, infinities) become null.
func (f *Formatter) JSON(i int, data []byte) (interface{}, error) {
	if data == nil {
		return nil, nil
	}

	col := f.schema.Col(i)

	switch col.Type {
	case verticareader.Integer:
		return DecodeInteger(data)
	case verticareader.Float:
		v := DecodeFloat(data)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			f.logger.Printf("float value %v has no JSON form", v)
			return nil, nil
		}
		return v, nil
	case verticareader.Numeric:
		s := formatNumeric(data)
		if s == "" {
			return nil, nil
		}
		return json.Number(s), nil
	case verticareader.Boolean:
		return data[0] == 1, nil
	}

	return f.Text(i, data)
}

func (f *Formatter) text(data []byte) string {
	if !utf8.Valid(data) {
		f.logger.Printf("couldn't convert %X to a string: invalid UTF-8", data)
		return invalidText
	}
	return strings.TrimSpace(string(data))
}

// binary renders a binary column. Zero bytes are dropped before any
// rendering, conversions included.
func (f *Formatter) binary(data []byte, conv verticareader.Conversion) string {
	filtered := make([]byte, 0, len(data))
	for _, b := range data {
		if b != 0x00 {
			filtered = append(filtered, b)
		}
	}

	switch conv {
	case verticareader.IPAddress:
		return f.ipAddress(filtered)
	case verticareader.MacAddress:
		return macAddress(filtered)
	}

	// Hex digits here are not zero padded: each byte contributes its
	// shortest form.
	var sb strings.Builder
	if f.hexPrefix {
		sb.WriteString("0x")
	}
	for _, b := range filtered {
		fmt.Fprintf(&sb, "%X", b)
	}
	return sb.String()
}

// formatNumeric concatenates the decimal renderings of a numeric
// column's 8 byte little-endian words, skipping leading zero words.
// Trailing bytes that do not fill a word are ignored, and a value of
// all zero words renders as the empty string.
func formatNumeric(data []byte) string {
	var sb strings.Builder
	leading := true
	for i := 0; i+8 <= len(data); i += 8 {
		word := binary.LittleEndian.Uint64(data[i : i+8])
		if leading && word == 0 {
			continue
		}
		leading = false
		sb.WriteString(strconv.FormatUint(word, 10))
	}
	return sb.String()
}
