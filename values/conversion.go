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

package values

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// macAddress renders bytes as a colon separated MAC address, two hex
// digits per byte.
func macAddress(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}

// ipAddress renders bytes as an IP address. Two leading 0xFF bytes
// mark an IPv4 address held in the remaining bytes; anything else is
// the leading bytes of an IPv6 address. The marker is the only
// discriminator the column carries.
func (f *Formatter) ipAddress(data []byte) string {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFF {
		return f.ipv4Address(data[2:])
	}
	return f.ipv6Address(data)
}

func (f *Formatter) ipv4Address(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		fmt.Fprintf(&sb, "%02X", b)
	}

	v, err := strconv.ParseUint(sb.String(), 16, 32)
	if err != nil {
		f.logger.Printf("error: %v", err)
		return ""
	}
	return net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v)).String()
}

// ipv6Address right-pads short values with zero bytes to the full 16.
func (f *Formatter) ipv6Address(data []byte) string {
	if len(data) > net.IPv6len {
		f.logger.Printf("error: %d bytes do not fit an IPv6 address", len(data))
		return ""
	}

	addr := make(net.IP, net.IPv6len)
	copy(addr, data)
	return addr.String()
}
