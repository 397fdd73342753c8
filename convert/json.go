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
	"bufio"
	"io"

	"github.com/goccy/go-json"

	"github.com/joeygibson/verticareader/file"
	"github.com/joeygibson/verticareader/values"
)

// JSONWriter writes rows as one JSON array of objects, or with
// WithJSONLines as one object per line. Object keys are the column
// names, values the typed forms produced by values.Formatter.JSON.
type JSONWriter struct {
	w     *bufio.Writer
	f     *values.Formatter
	lines bool
	wrote bool
}

// WithJSONLines switches the writer to JSON Lines framing: no
// enclosing array, one object per line.
func WithJSONLines(on bool) Option {
	return func(cfg config) {
		w, ok := cfg.(*JSONWriter)
		if !ok {
			unknownConfig("WithJSONLines", cfg)
		}
		w.lines = on
	}
}

// NewJSONWriter returns a writer that renders rows with f. Every
// column must be named, since names become the object keys.
func NewJSONWriter(w io.Writer, f *values.Formatter, opts ...Option) (*JSONWriter, error) {
	if !f.Schema().HasNames() {
		return nil, ErrMissingColumnNames
	}

	jw := &JSONWriter{
		w: bufio.NewWriter(w),
		f: f,
	}
	for _, opt := range opts {
		opt(jw)
	}
	return jw, nil
}

// Write renders one row as a JSON object.
func (w *JSONWriter) Write(row *file.Row) error {
	schema := w.f.Schema()

	record := make(map[string]interface{}, schema.NumColumns())
	for i := 0; i < schema.NumColumns(); i++ {
		v, err := w.f.JSON(i, row.Data[i])
		if err != nil {
			return err
		}
		record[schema.Col(i).Name] = v
	}

	buf, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if w.lines {
		if _, err := w.w.Write(buf); err != nil {
			return err
		}
		return w.w.WriteByte('\n')
	}

	sep := byte(',')
	if !w.wrote {
		sep = '['
		w.wrote = true
	}
	if err := w.w.WriteByte(sep); err != nil {
		return err
	}
	_, err = w.w.Write(buf)
	return err
}

// Close terminates the array framing and flushes. An empty stream
// still produces a complete document: [] followed by a newline.
func (w *JSONWriter) Close() error {
	if !w.lines {
		if !w.wrote {
			if err := w.w.WriteByte('['); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString("]\n"); err != nil {
			return err
		}
	}
	return w.w.Flush()
}
