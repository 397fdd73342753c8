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

// Command verticareader converts Vertica native binary files to CSV,
// JSON, JSON Lines, or Arrow IPC.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/docopt/docopt-go"

	"github.com/joeygibson/verticareader"
	"github.com/joeygibson/verticareader/compress"
	"github.com/joeygibson/verticareader/convert"
	"github.com/joeygibson/verticareader/file"
	"github.com/joeygibson/verticareader/internal/debug"
	"github.com/joeygibson/verticareader/values"
)

const version = "verticareader 2.0.0"

const usage = `Vertica Reader.
Converts Vertica native binary files to CSV, JSON, JSON Lines, or Arrow IPC.

The types file lists the input columns, one per line, in the form
type[/name[/conversion]]. Names become CSV headers, JSON keys, and
Arrow field names; the conversion (ipaddress or macaddress) applies to
varbinary and binary columns.

Usage:
  verticareader --types=TYPES [options] <file>
  verticareader -h | --help
  verticareader --version

Options:
  -h --help                    Show this screen.
  -t TYPES --types=TYPES       File with the list of column types, names, and conversions.
  -o OUT --output=OUT          Output file name, - for stdout. Defaults to a name derived from the input file.
  -j --json                    Output JSON instead of CSV.
  -J --json-lines              Output JSON Lines instead of CSV.
  -a --arrow                   Output an Arrow IPC file instead of CSV.
  -d DELIM --delimiter=DELIM   Field delimiter for CSV [default: ,].
  -n --no-header               Don't write the column header row in CSV.
  -z HOURS --tz-offset=HOURS   +/- hours to shift timestamptz values by.
  -l N --limit=N               Only take the first N rows.
  -g --gzip                    Compress the output with gzip.
  -c CODEC --compress=CODEC    Compress the output with gzip, zstd, or xz.
  -H --no-hex-prefix           Don't prefix hex strings with 0x.
  --version                    Show the version.`

type config struct {
	File        string `docopt:"<file>"`
	Types       string `docopt:"--types"`
	Output      string `docopt:"--output"`
	JSON        bool   `docopt:"--json"`
	JSONLines   bool   `docopt:"--json-lines"`
	Arrow       bool   `docopt:"--arrow"`
	Delimiter   string `docopt:"--delimiter"`
	NoHeader    bool   `docopt:"--no-header"`
	TzOffset    string `docopt:"--tz-offset"`
	Limit       int    `docopt:"--limit"`
	Gzip        bool   `docopt:"--gzip"`
	Compress    string `docopt:"--compress"`
	NoHexPrefix bool   `docopt:"--no-hex-prefix"`
}

func main() {
	log.SetPrefix("verticareader: ")
	log.SetFlags(0)

	opts, _ := docopt.ParseArgs(usage, os.Args[1:], version)

	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	in, err := os.Open(cfg.File)
	if err != nil {
		return err
	}
	defer in.Close()

	schema, err := readSchemaFile(cfg.Types)
	if err != nil {
		return err
	}

	r, err := file.NewReader(in)
	if err != nil {
		return err
	}

	codec, err := outputCodec(cfg)
	if err != nil {
		return err
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = outputName(cfg.File, outputExt(cfg), codec)
	}
	debug.Log("writing " + outPath)

	fopts := []values.Option{values.WithTimezoneOffset(tzOffset(cfg.TzOffset))}
	if cfg.NoHexPrefix {
		fopts = append(fopts, values.WithHexPrefix(false))
	}
	formatter := values.NewFormatter(schema, fopts...)

	var (
		out     io.Writer = os.Stdout
		closers []io.Closer
	)
	if outPath != "-" {
		if outPath == cfg.File {
			return errors.New("can't overwrite input file")
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		closers = append(closers, f)
		out = f
	}

	if codec != compress.Uncompressed {
		c, err := compress.GetCodec(codec)
		if err != nil {
			return err
		}
		zw, err := c.NewWriter(out)
		if err != nil {
			return err
		}
		// The codec writer must flush its framing before the file
		// underneath closes.
		closers = append([]io.Closer{zw}, closers...)
		out = zw
	}

	w, err := newRowWriter(cfg, out, formatter, r.Definitions())
	if err != nil {
		return err
	}

	if cfg.Limit > 0 {
		_, err = convert.CopyN(w, r, int64(cfg.Limit))
	} else {
		_, err = convert.Copy(w, r)
	}
	if err != nil {
		if r.Err() == nil {
			return err
		}
		// A bad row ends the stream; the rows before it are kept.
		log.Printf("reading data: %v", r.Err())
	}

	if err := w.Close(); err != nil {
		return err
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

func readSchemaFile(path string) (*verticareader.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	schema, err := verticareader.ReadSchema(f)
	if err != nil {
		return nil, fmt.Errorf("parsing column types: %w", err)
	}
	return schema, nil
}

func newRowWriter(cfg config, out io.Writer, f *values.Formatter, defs *file.ColumnDefinitions) (convert.Writer, error) {
	switch {
	case cfg.JSONLines:
		return convert.NewJSONWriter(out, f, convert.WithJSONLines(true))
	case cfg.JSON:
		return convert.NewJSONWriter(out, f)
	case cfg.Arrow:
		return convert.NewArrowWriter(out, f, defs)
	}

	opts := []convert.Option{convert.WithComma(delimiter(cfg.Delimiter))}
	if !cfg.NoHeader && f.Schema().HasNames() {
		opts = append(opts, convert.WithHeader(true))
	}
	return convert.NewCSVWriter(out, f, opts...)
}

// outputCodec resolves the compression flags. --gzip is shorthand for
// --compress=gzip; naming two different codecs is an error.
func outputCodec(cfg config) (compress.Compression, error) {
	c, err := compress.FromString(cfg.Compress)
	if err != nil {
		return c, err
	}
	if cfg.Gzip {
		if c != compress.Uncompressed && c != compress.Gzip {
			return c, fmt.Errorf("--gzip conflicts with --compress=%s", c)
		}
		c = compress.Gzip
	}
	return c, nil
}

func outputExt(cfg config) string {
	switch {
	case cfg.JSONLines:
		return ".jsonl"
	case cfg.JSON:
		return ".json"
	case cfg.Arrow:
		return ".arrow"
	}
	return ".csv"
}

// outputName derives the output file name from the input name: the
// input extension is replaced by the format's, plus the codec's.
func outputName(input, ext string, c compress.Compression) string {
	base := input[:len(input)-len(filepath.Ext(input))]
	return base + ext + c.Extension()
}

// tzOffset parses the timestamptz hour shift. An unparsable or absent
// offset counts as zero.
func tzOffset(s string) int {
	n, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0
	}
	return int(n)
}

// delimiter takes the first byte of the flag value, so a multi byte
// argument quietly degrades rather than failing.
func delimiter(s string) rune {
	if s == "" {
		return ','
	}
	return rune(s[0])
}
