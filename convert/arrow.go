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
	"errors"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/joeygibson/verticareader"
	"github.com/joeygibson/verticareader/file"
	"github.com/joeygibson/verticareader/values"
)

// Offsets from the Unix epoch to the native format's 2000-01-01 epoch.
const (
	epochDays   = 10957
	epochMicros = 946684800000000
)

const defaultChunk = 1024

// ArrowWriter writes rows as an Arrow IPC file, one record batch per
// chunk of rows. Temporal columns are rebased onto the Unix epoch;
// timestamps carry UTC; numeric columns, whose decimal rendering does
// not map onto a fixed Arrow decimal width, are written as strings.
type ArrowWriter struct {
	fw    *ipc.FileWriter
	bld   *array.RecordBuilder
	f     *values.Formatter
	mem   memory.Allocator
	chunk int
	rows  int
}

// WithChunk sets the number of rows per record batch. A value of zero
// or less batches the whole stream into a single record.
func WithChunk(n int) Option {
	return func(cfg config) {
		w, ok := cfg.(*ArrowWriter)
		if !ok {
			unknownConfig("WithChunk", cfg)
		}
		w.chunk = n
	}
}

// WithAllocator sets the allocator backing record construction.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg config) {
		w, ok := cfg.(*ArrowWriter)
		if !ok {
			unknownConfig("WithAllocator", cfg)
		}
		w.mem = mem
	}
}

// seekCounter adapts the destination io.Writer to the io.WriteSeeker
// that ipc.NewFileWriter demands. The library writes the IPC file
// layout append-only and only ever seeks with (0, io.SeekCurrent) to
// learn the current offset, so a running count of the bytes written
// stands in for a real file position.
type seekCounter struct {
	w io.Writer
	n int64
}

func (s *seekCounter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	return n, err
}

func (s *seekCounter) Seek(offset int64, whence int) (int64, error) {
	if offset != 0 || whence != io.SeekCurrent {
		return 0, errors.New("verticareader/convert: arrow destination does not support repositioning")
	}
	return s.n, nil
}

// NewArrowWriter returns a writer that renders rows with f. Every
// column must be named, since names become the Arrow field names. The
// column definitions fix the width of integer columns.
func NewArrowWriter(w io.Writer, f *values.Formatter, defs *file.ColumnDefinitions, opts ...Option) (*ArrowWriter, error) {
	schema := f.Schema()
	if !schema.HasNames() {
		return nil, ErrMissingColumnNames
	}

	aw := &ArrowWriter{
		f:     f,
		mem:   memory.DefaultAllocator,
		chunk: defaultChunk,
	}
	for _, opt := range opts {
		opt(aw)
	}

	fields := make([]arrow.Field, schema.NumColumns())
	for i := range fields {
		width := uint32(file.VariableWidth)
		if i < len(defs.Widths) {
			width = defs.Widths[i]
		}
		fields[i] = arrow.Field{
			Name:     schema.Col(i).Name,
			Type:     arrowType(schema.Col(i).Type, width),
			Nullable: true,
		}
	}
	arrowSchema := arrow.NewSchema(fields, nil)

	fw, err := ipc.NewFileWriter(&seekCounter{w: w}, ipc.WithSchema(arrowSchema), ipc.WithAllocator(aw.mem))
	if err != nil {
		return nil, err
	}

	aw.fw = fw
	aw.bld = array.NewRecordBuilder(aw.mem, arrowSchema)
	return aw, nil
}

func arrowType(typ verticareader.ColumnType, width uint32) arrow.DataType {
	switch typ {
	case verticareader.Integer:
		switch width {
		case 1:
			return arrow.PrimitiveTypes.Int8
		case 2:
			return arrow.PrimitiveTypes.Int16
		case 4:
			return arrow.PrimitiveTypes.Int32
		}
		return arrow.PrimitiveTypes.Int64
	case verticareader.Float:
		return arrow.PrimitiveTypes.Float64
	case verticareader.Boolean:
		return arrow.FixedWidthTypes.Boolean
	case verticareader.Date:
		return arrow.FixedWidthTypes.Date32
	case verticareader.Timestamp, verticareader.TimestampTz:
		return arrow.FixedWidthTypes.Timestamp_us
	case verticareader.Time, verticareader.TimeTz:
		return arrow.FixedWidthTypes.Time64us
	case verticareader.Varbinary, verticareader.Binary:
		return arrow.BinaryTypes.Binary
	case verticareader.Interval:
		return arrow.FixedWidthTypes.Duration_us
	}
	// Char, Varchar, and Numeric render as text.
	return arrow.BinaryTypes.String
}

// Write appends one row to the pending record batch, flushing it to
// the file once it reaches the chunk size.
func (w *ArrowWriter) Write(row *file.Row) error {
	for i := 0; i < w.f.Schema().NumColumns(); i++ {
		if err := w.appendValue(i, row.Data[i]); err != nil {
			return err
		}
	}

	w.rows++
	if w.chunk > 0 && w.rows >= w.chunk {
		return w.flush()
	}
	return nil
}

func (w *ArrowWriter) appendValue(i int, data []byte) error {
	bld := w.bld.Field(i)
	if data == nil {
		bld.AppendNull()
		return nil
	}

	switch w.f.Schema().Col(i).Type {
	case verticareader.Integer:
		n, err := values.DecodeInteger(data)
		if err != nil {
			return err
		}
		switch b := bld.(type) {
		case *array.Int8Builder:
			b.Append(int8(n))
		case *array.Int16Builder:
			b.Append(int16(n))
		case *array.Int32Builder:
			b.Append(int32(n))
		case *array.Int64Builder:
			b.Append(n)
		}
	case verticareader.Float:
		bld.(*array.Float64Builder).Append(values.DecodeFloat(data))
	case verticareader.Boolean:
		bld.(*array.BooleanBuilder).Append(data[0] == 1)
	case verticareader.Date:
		days := values.DecodeInt64(data)
		bld.(*array.Date32Builder).Append(arrow.Date32(days + epochDays))
	case verticareader.Timestamp, verticareader.TimestampTz:
		micros := values.DecodeInt64(data)
		bld.(*array.TimestampBuilder).Append(arrow.Timestamp(micros + epochMicros))
	case verticareader.Time:
		micros := values.DayMicros(values.DecodeInt64(data))
		bld.(*array.Time64Builder).Append(arrow.Time64(micros))
	case verticareader.TimeTz:
		micros, _ := values.DecodeTimeTz(data)
		bld.(*array.Time64Builder).Append(arrow.Time64(micros))
	case verticareader.Varbinary, verticareader.Binary:
		bld.(*array.BinaryBuilder).Append(data)
	case verticareader.Interval:
		bld.(*array.DurationBuilder).Append(arrow.Duration(values.DecodeInt64(data)))
	default:
		s, err := w.f.Text(i, data)
		if err != nil {
			return err
		}
		bld.(*array.StringBuilder).Append(s)
	}
	return nil
}

func (w *ArrowWriter) flush() error {
	if w.rows == 0 {
		return nil
	}

	rec := w.bld.NewRecord()
	defer rec.Release()

	w.rows = 0
	return w.fw.Write(rec)
}

// Close flushes the pending record batch and writes the file footer.
func (w *ArrowWriter) Close() error {
	err := w.flush()
	w.bld.Release()
	if cerr := w.fw.Close(); err == nil {
		err = cerr
	}
	return err
}
