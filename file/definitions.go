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
	"math"
)

// VariableWidth is the header width for columns whose byte length is
// written per row instead of being fixed for the whole file.
const VariableWidth = math.MaxUint32

// ColumnDefinitions is the fixed header that follows the signature:
// the format version, the column count, and one declared width per
// column. HeaderLength is carried in the file but not validated
// against the bytes actually consumed.
type ColumnDefinitions struct {
	HeaderLength uint32
	Version      uint16
	NumColumns   uint16
	Widths       []uint32
}

func readDefinitions(r io.Reader) (*ColumnDefinitions, error) {
	var hdr struct {
		HeaderLength uint32
		Version      uint16
		Filler       uint8
		NumColumns   uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("verticareader/file: reading column definitions: %w", err)
	}

	widths := make([]uint32, hdr.NumColumns)
	if err := binary.Read(r, binary.LittleEndian, widths); err != nil {
		return nil, fmt.Errorf("verticareader/file: reading column widths: %w", err)
	}

	return &ColumnDefinitions{
		HeaderLength: hdr.HeaderLength,
		Version:      hdr.Version,
		NumColumns:   hdr.NumColumns,
		Widths:       widths,
	}, nil
}
