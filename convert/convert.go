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

// Package convert writes decoded rows out as CSV, JSON, JSON Lines, or
// Arrow IPC files.
package convert

import (
	"errors"
	"fmt"

	"github.com/joeygibson/verticareader/file"
)

// ErrMissingColumnNames is returned when an output format that labels
// values (CSV headers, JSON keys, Arrow fields) is requested over a
// schema whose columns are not all named.
var ErrMissingColumnNames = errors.New("verticareader/convert: output format requires column names in the types file")

// Writer consumes decoded rows. Close flushes whatever framing the
// format needs (buffered CSV records, the closing JSON bracket, the
// Arrow footer) and must be called exactly once; it does not close the
// underlying stream.
type Writer interface {
	Write(row *file.Row) error
	Close() error
}

// Option configures a writer. Options are shared across writer types;
// applying one to a writer that cannot use it panics.
type Option func(config)

type config interface{}

// Copy pumps every remaining row from src to dst and returns the
// number of rows written. A row decode failure ends the copy, and the
// reader's error is returned after the rows before it have been
// written. Copy does not Close dst.
func Copy(dst Writer, src *file.Reader) (n int64, err error) {
	for src.Next() {
		if err = dst.Write(src.Row()); err != nil {
			return n, err
		}
		n++
	}
	return n, src.Err()
}

// CopyN pumps at most max rows from src to dst, stopping early when
// the stream ends.
func CopyN(dst Writer, src *file.Reader, max int64) (n int64, err error) {
	for n < max && src.Next() {
		if err = dst.Write(src.Row()); err != nil {
			return n, err
		}
		n++
	}
	if n == max {
		return n, nil
	}
	return n, src.Err()
}

func unknownConfig(opt string, cfg config) {
	panic(fmt.Errorf("verticareader/convert: %s: unknown config type %T", opt, cfg))
}
