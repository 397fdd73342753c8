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

// Package compress contains the interfaces and implementations for
// compressing and decompressing output streams. Codecs are selected by
// name and register themselves at init time.
package compress

import (
	"fmt"
	"io"
	"strings"
)

// Compression identifies an output codec.
type Compression int

const (
	// Uncompressed passes bytes through untouched.
	Uncompressed Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is Zstandard.
	Zstd
	// Xz is the xz container around LZMA2.
	Xz
)

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	}
	return fmt.Sprintf("compression(%d)", int(c))
}

// Extension returns the file name extension for files written with the
// codec, empty for Uncompressed.
func (c Compression) Extension() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case Xz:
		return ".xz"
	}
	return ""
}

// FromString maps a codec name to its Compression. The empty string
// and "none" both mean Uncompressed.
func FromString(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return Uncompressed, nil
	case "gzip":
		return Gzip, nil
	case "zstd":
		return Zstd, nil
	case "xz":
		return Xz, nil
	}
	return Uncompressed, fmt.Errorf("verticareader/compress: unknown codec %q", name)
}

// Codec wraps streams of one compression format.
type Codec interface {
	// NewReader wraps r for decompression.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter wraps w for compression. Closing the returned writer
	// flushes the codec framing but does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var codecs = map[Compression]Codec{}

// GetCodec returns the codec registered for c.
func GetCodec(c Compression) (Codec, error) {
	codec, ok := codecs[c]
	if !ok {
		return nil, fmt.Errorf("verticareader/compress: no codec registered for %s", c)
	}
	return codec, nil
}

type nopCodec struct{}

func (nopCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (nopCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func init() {
	codecs[Uncompressed] = nopCodec{}
}
