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

package convert

import (
	"encoding/csv"
	"io"

	"github.com/joeygibson/verticareader/file"
	"github.com/joeygibson/verticareader/internal/debug"
	"github.com/joeygibson/verticareader/values"
)

// CSVWriter writes rows as CSV records, one record per row, with an
// optional leading header of column names.
type CSVWriter struct {
	w      *csv.Writer
	f      *values.Formatter
	header bool
}

// WithComma sets the CSV field delimiter. Defaults to ','.
func WithComma(c rune) Option {
	return func(cfg config) {
		w, ok := cfg.(*CSVWriter)
		if !ok {
			unknownConfig("WithComma", cfg)
		}
		w.w.Comma = c
	}
}

// WithHeader makes the first record a header of column names. Off by
// default.
func WithHeader(on bool) Option {
	return func(cfg config) {
		w, ok := cfg.(*CSVWriter)
		if !ok {
			unknownConfig("WithHeader", cfg)
		}
		w.header = on
	}
}

// NewCSVWriter returns a writer that renders rows with f. Requesting a
// header over a schema with unnamed columns fails with
// ErrMissingColumnNames; the header itself is written up front, so an
// empty row stream still produces it.
func NewCSVWriter(w io.Writer, f *values.Formatter, opts ...Option) (*CSVWriter, error) {
	cw := &CSVWriter{
		w: csv.NewWriter(w),
		f: f,
	}
	for _, opt := range opts {
		opt(cw)
	}

	if cw.header {
		if !f.Schema().HasNames() {
			return nil, ErrMissingColumnNames
		}
		if err := cw.w.Write(f.Schema().Names()); err != nil {
			return nil, err
		}
	}
	return cw, nil
}

// Write renders one row as a CSV record.
func (w *CSVWriter) Write(row *file.Row) error {
	schema := w.f.Schema()
	debug.Assert(len(row.Data) == schema.NumColumns(), "convert: row and schema column counts differ")

	record := make([]string, schema.NumColumns())
	for i := range record {
		text, err := w.f.Text(i, row.Data[i])
		if err != nil {
			return err
		}
		record[i] = text
	}
	return w.w.Write(record)
}

// Close flushes buffered records.
func (w *CSVWriter) Close() error {
	w.w.Flush()
	return w.w.Error()
}
