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

// Package file decodes the Vertica native binary container: the file
// signature, the column definition header, and the row stream. It
// deals only in raw bytes; interpreting column values is left to
// package values.
package file

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/joeygibson/verticareader/internal/debug"
)

// Reader reads rows from a Vertica native binary file. NewReader
// validates the signature and parses the column definition header;
// rows are then pulled one at a time:
//
//	r, err := file.NewReader(f)
//	if err != nil { ... }
//	for r.Next() {
//		row := r.Row()
//		...
//	}
//	if err := r.Err(); err != nil { ... }
//
// The reader owns its position in the stream. Rows are consumed
// strictly in order, there is no seeking, and a Reader is not safe for
// concurrent use.
type Reader struct {
	r    *bufio.Reader
	defs *ColumnDefinitions

	row  *Row
	err  error
	done bool
}

// NewReader validates the file signature, reads the column definition
// header, and returns a reader positioned at the first row.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	if err := checkSignature(br); err != nil {
		return nil, err
	}

	defs, err := readDefinitions(br)
	if err != nil {
		return nil, err
	}

	return &Reader{r: br, defs: defs}, nil
}

// Definitions returns the parsed column definition header.
func (r *Reader) Definitions() *ColumnDefinitions { return r.defs }

// NumColumns returns the column count declared in the header.
func (r *Reader) NumColumns() int { return int(r.defs.NumColumns) }

// Next advances to the next row, returning false when the stream ends.
// After Next returns false, Err distinguishes a clean end of stream
// from a row decode failure. A decode failure is terminal: the format
// has no resynchronization point, so no later row can be located once
// one row is bad.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}

	// Each row is preceded by its byte length. The value does not
	// bound decoding (the declared widths drive consumption); a zero
	// length or a failed read is the normal end of the stream.
	var rowLen uint32
	if err := binary.Read(r.r, binary.LittleEndian, &rowLen); err != nil {
		r.done = true
		return false
	}
	if rowLen == 0 {
		r.done = true
		return false
	}

	row, err := readRow(r.r, r.defs.Widths)
	if err != nil {
		r.done = true
		r.err = err
		return false
	}

	r.row = row
	return true
}

// Row returns the row read by the last successful call to Next. The
// caller owns the returned row.
func (r *Reader) Row() *Row {
	debug.Assert(r.row != nil, "file: Row called before Next")
	return r.row
}

// Err returns the error that ended iteration, or nil if the stream
// ended normally.
func (r *Reader) Err() error { return r.err }
