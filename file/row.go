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

package file

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Row is one decoded row: a null flag per column and the raw bytes of
// every non-null column. Data holds nil for null columns. Rows are
// allocated fresh for each iteration step and never reused.
type Row struct {
	NullValues []bool
	Data       [][]byte
}

// IsNull reports whether column i is null.
func (r *Row) IsNull(i int) bool { return r.NullValues[i] }

func readRow(r io.Reader, widths []uint32) (*Row, error) {
	nulls, err := readNullBitmap(r, len(widths))
	if err != nil {
		return nil, err
	}

	row := &Row{
		NullValues: nulls,
		Data:       make([][]byte, len(widths)),
	}

	for i, width := range widths {
		if nulls[i] {
			continue
		}

		if width == VariableWidth {
			if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
				return nil, fmt.Errorf("verticareader/file: reading width of column %d: %w", i, err)
			}
		}

		data := make([]byte, width)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("verticareader/file: reading column %d: %w", i, err)
		}
		row.Data[i] = data
	}

	return row, nil
}

// readNullBitmap reads ceil(n/8) bytes and unpacks one flag per
// column, most significant bit first within each byte. A set bit marks
// a null. Trailing pad bits in the last byte are consumed and ignored.
func readNullBitmap(r io.Reader, n int) ([]bool, error) {
	bitmap := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, bitmap); err != nil {
		return nil, fmt.Errorf("verticareader/file: reading null bitmap: %w", err)
	}

	nulls := make([]bool, n)
	for i := range nulls {
		nulls[i] = bitmap[i/8]&(1<<(7-i%8)) != 0
	}
	return nulls, nil
}
