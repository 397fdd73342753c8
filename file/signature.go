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
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Signature is the 11 byte sequence that opens every Vertica native
// binary file.
var Signature = []byte{'N', 'A', 'T', 'I', 'V', 'E', '\n', 0xFF, '\r', '\n', 0x00}

// ErrNotNativeFile is returned by NewReader when the input does not
// begin with Signature.
var ErrNotNativeFile = errors.New("verticareader/file: not a vertica native binary file")

func checkSignature(r io.Reader) error {
	sig := make([]byte, len(Signature))
	if _, err := io.ReadFull(r, sig); err != nil {
		return fmt.Errorf("verticareader/file: reading signature: %w", err)
	}
	if !bytes.Equal(sig, Signature) {
		return ErrNotNativeFile
	}
	return nil
}
