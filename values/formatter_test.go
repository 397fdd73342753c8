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

package values_test

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeygibson/verticareader"
	"github.com/joeygibson/verticareader/values"
)

func le16(v int16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func le64(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func le64u(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func lef(v float64) []byte {
	return le64u(math.Float64bits(v))
}

// tsMicros converts a civil time to the microsecond count a timestamp
// column stores.
func tsMicros(year int, month time.Month, day, hour, min, sec int) int64 {
	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	epoch := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	return (t.Unix() - epoch.Unix()) * 1_000_000
}

func fmtFor(typ verticareader.ColumnType, opts ...values.Option) *values.Formatter {
	schema := verticareader.NewSchema([]verticareader.Column{{Type: typ}})
	return values.NewFormatter(schema, opts...)
}

func fmtForConv(typ verticareader.ColumnType, conv verticareader.Conversion, opts ...values.Option) *values.Formatter {
	schema := verticareader.NewSchema([]verticareader.Column{{Type: typ, Conversion: conv}})
	return values.NewFormatter(schema, opts...)
}

func text(t *testing.T, f *values.Formatter, data []byte) string {
	t.Helper()
	s, err := f.Text(0, data)
	require.NoError(t, err)
	return s
}

func TestTextInteger(t *testing.T) {
	f := fmtFor(verticareader.Integer)

	tests := []struct {
		data []byte
		want string
	}{
		{[]byte{0x81}, "-127"},
		{[]byte{0x9C}, "-100"},
		{[]byte{0xFF}, "-1"},
		{[]byte{0x00}, "0"},
		{[]byte{0x17}, "23"},
		{[]byte{0x7F}, "127"},
		{le16(-32768), "-32768"},
		{le16(-16600), "-16600"},
		{le16(-1), "-1"},
		{le16(0), "0"},
		{le16(127), "127"},
		{le16(128), "128"},
		{le16(255), "255"},
		{le16(256), "256"},
		{le16(512), "512"},
		{le16(16235), "16235"},
		{le32(-2147483648), "-2147483648"},
		{le32(-65000), "-65000"},
		{le32(-1), "-1"},
		{le32(0), "0"},
		{le32(65534), "65534"},
		{le32(2147483647), "2147483647"},
		{le64(math.MinInt64), "-9223372036854775808"},
		{le64(-2147483649), "-2147483649"},
		{le64(-1), "-1"},
		{le64(0), "0"},
		{le64(1), "1"},
		{le64(math.MaxInt64), "9223372036854775807"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, tc.data))
		})
	}
}

func TestTextIntegerBadWidth(t *testing.T) {
	f := fmtFor(verticareader.Integer)

	for _, n := range []int{0, 3, 5, 6, 7, 9} {
		_, err := f.Text(0, make([]byte, n))
		require.ErrorIs(t, err, values.ErrIntegerWidth, "width %d", n)
	}
}

func TestTextFloat(t *testing.T) {
	f := fmtFor(verticareader.Float)

	tests := []struct {
		v    float64
		want string
	}{
		{-123456.123, "-123456.123"},
		{-23.123, "-23.123"},
		{0, "0"},
		{123.23, "123.23"},
		{123456.123, "123456.123"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := text(t, f, lef(tc.v))
			assert.Equal(t, tc.want, got)

			back, err := strconv.ParseFloat(got, 64)
			require.NoError(t, err)
			assert.Equal(t, tc.v, back)
		})
	}
}

func TestTextChar(t *testing.T) {
	f := fmtFor(verticareader.Char)

	assert.Equal(t, "a", text(t, f, []byte("a")))
	assert.Equal(t, "Z", text(t, f, []byte("Z")))
	assert.Equal(t, "abc", text(t, f, []byte("abc   ")))
}

func TestTextVarchar(t *testing.T) {
	f := fmtFor(verticareader.Varchar)

	assert.Equal(t, "hello", text(t, f, []byte("hello")))
	assert.Equal(t, "🚀", text(t, f, []byte("🚀")))
	assert.Equal(t, "foo, bar, baz", text(t, f, []byte("foo, bar, baz")))
	assert.Equal(t, "", text(t, f, []byte{}))
}

func TestTextVarcharInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	f := fmtFor(verticareader.Varchar, values.WithLogger(log.New(&buf, "", 0)))

	assert.Equal(t, "INVALID", text(t, f, []byte{0xFF, 0xFE}))
	assert.Contains(t, buf.String(), "couldn't convert FFFE to a string")
}

func TestTextBoolean(t *testing.T) {
	f := fmtFor(verticareader.Boolean)

	assert.Equal(t, "1", text(t, f, []byte{1}))
	assert.Equal(t, "0", text(t, f, []byte{0}))
}

func TestTextDate(t *testing.T) {
	f := fmtFor(verticareader.Date)

	tests := []struct {
		days int64
		want string
	}{
		{0, "2000-01-01"},
		{366, "2001-01-01"},
		{2426, "2006-08-23"},
		{-3532, "1990-05-01"},
		{-358, "1999-01-08"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, le64(tc.days)))
		})
	}
}

func TestTextTimestamp(t *testing.T) {
	f := fmtFor(verticareader.Timestamp)

	tests := []struct {
		micros int64
		want   string
	}{
		{0, "2000-01-01 00:00:00"},
		{tsMicros(1980, time.December, 25, 1, 23, 34), "1980-12-25 01:23:34"},
		{tsMicros(1492, time.April, 5, 12, 12, 12), "1492-04-05 12:12:12"},
		{tsMicros(2021, time.July, 4, 17, 0, 1), "2021-07-04 17:00:01"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, le64(tc.micros)))
		})
	}
}

func TestTextTimestampSubsecondTruncated(t *testing.T) {
	f := fmtFor(verticareader.Timestamp)

	micros := tsMicros(2021, time.July, 4, 17, 0, 1) + 999_999
	assert.Equal(t, "2021-07-04 17:00:01", text(t, f, le64(micros)))
}

func TestTextTimestampTz(t *testing.T) {
	micros := tsMicros(2001, time.March, 4, 5, 6, 7)

	tests := []struct {
		offset int
		want   string
	}{
		{0, "2001-03-04 05:06:07+00"},
		{5, "2001-03-04 10:06:07+05"},
		{-5, "2001-03-04 00:06:07-05"},
		{-6, "2001-03-03 23:06:07-06"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			f := fmtFor(verticareader.TimestampTz, values.WithTimezoneOffset(tc.offset))
			assert.Equal(t, tc.want, text(t, f, le64(micros)))
		})
	}
}

func TestTextTimestampTzZeroOffsetMatchesTimestamp(t *testing.T) {
	ts := fmtFor(verticareader.Timestamp)
	tz := fmtFor(verticareader.TimestampTz)

	micros := tsMicros(1980, time.December, 25, 1, 23, 34)
	assert.Equal(t, text(t, ts, le64(micros))+"+00", text(t, tz, le64(micros)))
}

func TestTextTime(t *testing.T) {
	f := fmtFor(verticareader.Time)

	tests := []struct {
		secs int64
		want string
	}{
		{5*3600 + 30*60 + 15, "05:30:15"},
		{11*3600 + 22*60 + 33, "11:22:33"},
		{17*3600 + 15*60 + 16, "17:15:16"},
		{0, "00:00:00"},
		{25 * 3600, "01:00:00"},
		{-3600, "23:00:00"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, le64(tc.secs*1_000_000)))
		})
	}
}

func TestTextTimeTz(t *testing.T) {
	f := fmtFor(verticareader.TimeTz)

	timeTz := func(secs, zoneSecs int64) []byte {
		return le64u(uint64(secs*1_000_000)<<24 | uint64(zoneSecs))
	}

	base := int64(5*3600 + 30*60 + 15) // 05:30:15

	tests := []struct {
		data []byte
		want string
	}{
		{timeTz(base, 24*3600), "05:30:15+00"},
		{timeTz(base, 23*3600), "06:30:15+01"},
		{timeTz(base, 29*3600), "00:30:15-05"},
		// A half hour zone shifts the time by the full offset but is
		// labeled with the truncated hour.
		{timeTz(base, 24*3600-19800), "11:00:15+06"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, tc.data))
		})
	}
}

func TestTextVarbinary(t *testing.T) {
	f := fmtFor(verticareader.Varbinary)

	tests := []struct {
		data []byte
		want string
	}{
		{[]byte{0x01}, "0x1"},
		{[]byte{0x0A}, "0xA"},
		{[]byte{0x7B}, "0x7B"},
		{[]byte{0x90, 0x54, 0x0C, 0x00}, "0x9054C"},
		{[]byte{0x00, 0x00}, "0x"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, tc.data))
		})
	}
}

func TestTextVarbinaryNoHexPrefix(t *testing.T) {
	f := fmtFor(verticareader.Varbinary, values.WithHexPrefix(false))

	assert.Equal(t, "9054C", text(t, f, []byte{0x90, 0x54, 0x0C, 0x00}))
	assert.Equal(t, "", text(t, f, []byte{0x00}))
}

func TestTextBinary(t *testing.T) {
	f := fmtFor(verticareader.Binary)

	assert.Equal(t, "0x7B", text(t, f, []byte{0x7B}))
}

func TestTextNumeric(t *testing.T) {
	f := fmtFor(verticareader.Numeric)

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"single word", le64(123456789), "123456789"},
		{"leading zero word", append(le64(0), le64(123456789123456789)...), "123456789123456789"},
		{"all zero", le64(0), ""},
		{"words concatenate", append(le64(12), le64(34)...), "1234"},
		{"trailing bytes ignored", append(le64(77), 0xAB), "77"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, tc.data))
		})
	}
}

func TestTextMacAddress(t *testing.T) {
	f := fmtForConv(verticareader.Varbinary, verticareader.MacAddress)

	data := []byte{0xF4, 0x0F, 0x1B, 0x28, 0xF2, 0x4C}
	assert.Equal(t, "F4:0F:1B:28:F2:4C", text(t, f, data))

	// Zero bytes drop before conversion.
	assert.Equal(t, "F4:1B", text(t, f, []byte{0xF4, 0x00, 0x1B}))
}

func TestTextIPv4Address(t *testing.T) {
	f := fmtForConv(verticareader.Varbinary, verticareader.IPAddress)

	data := []byte{0xFF, 0xFF, 0xC0, 0xA8, 0x0B, 0x02}
	assert.Equal(t, "192.168.11.2", text(t, f, data))

	// Fewer than four address bytes decode as a small value.
	assert.Equal(t, "0.0.0.192", text(t, f, []byte{0xFF, 0xFF, 0xC0}))
}

func TestTextIPv4AddressOverflow(t *testing.T) {
	var buf bytes.Buffer
	f := fmtForConv(verticareader.Varbinary, verticareader.IPAddress,
		values.WithLogger(log.New(&buf, "", 0)))

	data := []byte{0xFF, 0xFF, 0x01, 0x02, 0x03, 0x04, 0x05}
	assert.Equal(t, "", text(t, f, data))
	assert.Contains(t, buf.String(), "error:")
}

func TestTextIPv6Address(t *testing.T) {
	f := fmtForConv(verticareader.Varbinary, verticareader.IPAddress)

	data := []byte{0x20, 0x01, 0x04, 0x02, 0x04, 0x23, 0xFF, 0xFE, 0x9E, 0xF1, 0x6E}
	assert.Equal(t, "2001:402:423:fffe:9ef1:6e00::", text(t, f, data))
}

func TestTextIPv6AddressTooLong(t *testing.T) {
	var buf bytes.Buffer
	f := fmtForConv(verticareader.Varbinary, verticareader.IPAddress,
		values.WithLogger(log.New(&buf, "", 0)))

	data := bytes.Repeat([]byte{0x11}, 17)
	assert.Equal(t, "", text(t, f, data))
	assert.Contains(t, buf.String(), "error:")
}

func TestTextInterval(t *testing.T) {
	f := fmtFor(verticareader.Interval)

	tests := []struct {
		secs int64
		want string
	}{
		{5*3600 + 30*60 + 15, "05:30:15"},
		{11*3600 + 22*60 + 33, "11:22:33"},
		{17*3600 + 15*60 + 16, "17:15:16"},
		{100*3600 + 75, "100:01:15"},
		{-5, "00:00:-5"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, text(t, f, le64(tc.secs*1_000_000)))
		})
	}
}

func TestTextNull(t *testing.T) {
	for _, typ := range []verticareader.ColumnType{
		verticareader.Integer,
		verticareader.Float,
		verticareader.Char,
		verticareader.Varchar,
		verticareader.Boolean,
		verticareader.Date,
		verticareader.Timestamp,
		verticareader.TimestampTz,
		verticareader.Time,
		verticareader.TimeTz,
		verticareader.Varbinary,
		verticareader.Binary,
		verticareader.Numeric,
		verticareader.Interval,
	} {
		f := fmtFor(typ)
		assert.Equal(t, "", text(t, f, nil), "type %v", typ)
	}
}

func TestJSONValues(t *testing.T) {
	jsonValue := func(t *testing.T, typ verticareader.ColumnType, data []byte, opts ...values.Option) interface{} {
		t.Helper()
		f := fmtFor(typ, opts...)
		v, err := f.JSON(0, data)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, int64(1), jsonValue(t, verticareader.Integer, []byte{0x01}))
	assert.Equal(t, int64(-1), jsonValue(t, verticareader.Integer, le64(-1)))
	assert.Equal(t, 123.25, jsonValue(t, verticareader.Float, lef(123.25)))
	assert.Equal(t, true, jsonValue(t, verticareader.Boolean, []byte{1}))
	assert.Equal(t, false, jsonValue(t, verticareader.Boolean, []byte{0}))
	assert.Equal(t, json.Number("123456789"), jsonValue(t, verticareader.Numeric, le64(123456789)))
	assert.Equal(t, "hello", jsonValue(t, verticareader.Varchar, []byte("hello")))
	assert.Equal(t, "1999-01-08", jsonValue(t, verticareader.Date, le64(-358)))
	assert.Nil(t, jsonValue(t, verticareader.Integer, nil))
	assert.Nil(t, jsonValue(t, verticareader.Numeric, le64(0)))
}

func TestJSONFloatNaN(t *testing.T) {
	var buf bytes.Buffer
	f := fmtFor(verticareader.Float, values.WithLogger(log.New(&buf, "", 0)))

	v, err := f.JSON(0, lef(math.NaN()))
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.NotEmpty(t, buf.String())
}

func TestJSONIntegerBadWidth(t *testing.T) {
	f := fmtFor(verticareader.Integer)

	_, err := f.JSON(0, make([]byte, 3))
	require.ErrorIs(t, err, values.ErrIntegerWidth)
}

func TestDayMicros(t *testing.T) {
	const day = int64(24) * 3600 * 1_000_000

	assert.Equal(t, int64(0), values.DayMicros(0))
	assert.Equal(t, int64(1), values.DayMicros(day+1))
	assert.Equal(t, day-1, values.DayMicros(-1))
}

func TestDecodeTimeTz(t *testing.T) {
	word := uint64(19815000000)<<24 | uint64(23*3600)
	micros, offset := values.DecodeTimeTz(le64u(word))

	assert.Equal(t, int64(1), offset)
	assert.Equal(t, int64(19815000000+3600*1_000_000), micros)
}
