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

package verticareader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeygibson/verticareader"
)

func TestColumnTypeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want verticareader.ColumnType
	}{
		{"integer", verticareader.Integer},
		{"int", verticareader.Integer},
		{"Integer", verticareader.Integer},
		{"INTEGER", verticareader.Integer},
		{"float", verticareader.Float},
		{"char", verticareader.Char},
		{"char(10)", verticareader.Char},
		{"varchar", verticareader.Varchar},
		{"varchar(32)", verticareader.Varchar},
		{"VarChar(32)", verticareader.Varchar},
		{"boolean", verticareader.Boolean},
		{"date", verticareader.Date},
		{"timestamp", verticareader.Timestamp},
		{"timestamptz", verticareader.TimestampTz},
		{"time", verticareader.Time},
		{"timetz", verticareader.TimeTz},
		{"varbinary", verticareader.Varbinary},
		{"varbinary(16)", verticareader.Varbinary},
		{"binary", verticareader.Binary},
		{"numeric", verticareader.Numeric},
		{"numeric(18,4)", verticareader.Numeric},
		{"interval", verticareader.Interval},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := verticareader.ColumnTypeFromString(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColumnTypeFromStringInvalid(t *testing.T) {
	_, err := verticareader.ColumnTypeFromString("ljkgblkfjgb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type: ljkgblkfjgb")
}

func TestColumnTypeString(t *testing.T) {
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
		got, err := verticareader.ColumnTypeFromString(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
}

func TestConversionFromString(t *testing.T) {
	tests := []struct {
		in   string
		want verticareader.Conversion
	}{
		{"ipaddress", verticareader.IPAddress},
		{"IpAddress", verticareader.IPAddress},
		{"macaddress", verticareader.MacAddress},
		{"MacAddress", verticareader.MacAddress},
		{"", verticareader.NoConversion},
		{"bogus", verticareader.NoConversion},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, verticareader.ConversionFromString(tc.in), "input %q", tc.in)
	}
}
