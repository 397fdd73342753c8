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

package values

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/joeygibson/verticareader/internal/debug"
)

// ErrIntegerWidth is returned when an integer column's byte count is
// not 1, 2, 4, or 8. It means the types file and the binary file
// disagree about the column layout, and nothing decoded after the
// mismatch can be trusted.
var ErrIntegerWidth = errors.New("verticareader/values: incorrect integer byte count")

// DecodeInteger decodes a little-endian signed integer of 1, 2, 4, or
// 8 bytes. Any other length fails with ErrIntegerWidth.
func DecodeInteger(data []byte) (int64, error) {
	switch len(data) {
	case 8:
		return int64(binary.LittleEndian.Uint64(data)), nil
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(data))), nil
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(data))), nil
	case 1:
		return int64(int8(data[0])), nil
	}
	return 0, ErrIntegerWidth
}

// DecodeFloat decodes an 8 byte little-endian IEEE-754 double.
func DecodeFloat(data []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(data))
}

// DecodeInt64 reinterprets 8 little-endian bytes as a signed 64 bit
// value, the raw form of date, timestamp, time, and interval columns.
func DecodeInt64(data []byte) int64 {
	debug.Assert(len(data) == 8, "values: fixed width column must hold 8 bytes")
	return int64(binary.LittleEndian.Uint64(data))
}

// DecodeTimeTz splits a timetz column's 8 bytes into microseconds
// since midnight with the embedded zone offset already applied, and
// the whole hour zone label. The offset is applied at minute
// resolution, so zones off the hour boundary still shift the time.
func DecodeTimeTz(data []byte) (micros, offsetHours int64) {
	debug.Assert(len(data) == 8, "values: timetz column must hold 8 bytes")
	word := binary.LittleEndian.Uint64(data)

	// The low 24 bits store the zone as 24 hours minus the offset, in
	// seconds. The rest of the word is the time of day.
	zoneSeconds := int64(word & 0xFFFFFF)
	offsetHours = -(zoneSeconds/3600 - 24)
	offsetMinutes := -(zoneSeconds/60 - 24*60)

	micros = DayMicros(int64(word>>24) + offsetMinutes*60*microsPerSecond)
	return micros, offsetHours
}

// DayMicros wraps a microsecond count into the range of a single day.
func DayMicros(micros int64) int64 {
	micros %= microsPerDay
	if micros < 0 {
		micros += microsPerDay
	}
	return micros
}
