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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Column describes one column of a native binary file. Name may be
// empty; it is required only by output formats that label values (CSV
// headers, JSON keys, Arrow fields). Conversion applies only to
// Varbinary and Binary columns.
type Column struct {
	Type       ColumnType
	Name       string
	Conversion Conversion
}

// Schema is the ordered column list for one file. The binary file
// itself carries only byte widths; the schema supplies the types that
// drive decoding and rendering.
type Schema struct {
	cols []Column
}

// NewSchema returns a schema over the given columns.
func NewSchema(cols []Column) *Schema {
	return &Schema{cols: cols}
}

// ReadSchema parses a types file: one column per line in the form
//
//	type[/name[/conversion]]
//
// Fields are trimmed and anything after the third field is ignored.
// Empty lines are skipped, but a line of only whitespace is a
// malformed declaration and fails. An unknown type name is an error;
// an unknown conversion name is not (see ConversionFromString).
func ReadSchema(r io.Reader) (*Schema, error) {
	var cols []Column

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "/")

		typ, err := ColumnTypeFromString(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, err
		}

		col := Column{Type: typ}
		if len(fields) > 1 {
			col.Name = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			col.Conversion = ConversionFromString(strings.TrimSpace(fields[2]))
		}

		cols = append(cols, col)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("verticareader: reading types: %w", err)
	}

	return &Schema{cols: cols}, nil
}

// NumColumns returns the number of columns.
func (s *Schema) NumColumns() int { return len(s.cols) }

// Col returns the i-th column.
func (s *Schema) Col(i int) Column { return s.cols[i] }

// Names returns the column names in order. Columns declared without a
// name contribute an empty string.
func (s *Schema) Names() []string {
	names := make([]string, len(s.cols))
	for i, c := range s.cols {
		names[i] = c.Name
	}
	return names
}

// HasNames reports whether every column carries a name.
func (s *Schema) HasNames() bool {
	for _, c := range s.cols {
		if c.Name == "" {
			return false
		}
	}
	return true
}
