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

// Package verticareader decodes Vertica native binary files.
//
// A native binary file carries an 11 byte signature, a header of
// per-column byte widths, and a stream of length prefixed rows. The
// file does not name or type its columns, so callers supply a types
// file describing each column: its logical type, an optional name, and
// an optional byte conversion for binary columns.
//
// This package holds the column vocabulary shared by the others:
// package file decodes the binary stream into rows, package values
// renders raw column bytes as text or JSON values, and package convert
// writes whole files as CSV, JSON, JSON Lines, or Arrow IPC.
package verticareader
