// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpgasim

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const fdtMagic = 0xd00dfeed

var (
	syncWord = []byte{0xaa, 0x99, 0x55, 0x66}

	errNoVersionTag = errors.New("missing /dts-v1/ tag")
	errNoSyncWord   = errors.New("no sync word in configuration data")
	errTruncated    = errors.New("truncated bitstream header")
)

// CompileDts turns device tree source into a blob that carries the
// flattened device tree magic and total size followed by the source.
// It checks the version tag and nothing else.
func CompileDts(src string) ([]byte, error) {
	if !strings.Contains(src, "/dts-v1/") {
		return nil, errNoVersionTag
	}
	b := make([]byte, 8, 8+len(src))
	binary.BigEndian.PutUint32(b[0:4], fdtMagic)
	binary.BigEndian.PutUint32(b[4:8], uint32(8+len(src)))
	return append(b, src...), nil
}

// BitToBin converts a Xilinx .bit file into the byte swapped .bin layout
// the Linux FPGA manager loads. Input without a .bit header is taken as
// raw configuration data. The data must contain the sync word.
func BitToBin(bit []byte) ([]byte, error) {
	data, err := bitPayload(bit)
	if err != nil {
		return nil, err
	}
	if !bytes.Contains(data, syncWord) {
		return nil, errNoSyncWord
	}
	out := make([]byte, (len(data)+3)&^3)
	copy(out, data)
	for i := 0; i < len(out); i += 4 {
		binary.LittleEndian.PutUint32(out[i:], binary.BigEndian.Uint32(out[i:]))
	}
	return out, nil
}

// bitPayload strips the .bit header. The header is a 9 byte preamble
// followed by fields a to d with 16 bit lengths and field e, the payload,
// with a 32 bit length.
func bitPayload(bit []byte) ([]byte, error) {
	if len(bit) < 2 || binary.BigEndian.Uint16(bit) != 9 {
		return bit, nil
	}
	// length, preamble and the 0x0001 that follows it
	off := 2 + 9 + 2
	for {
		if off >= len(bit) {
			return nil, errTruncated
		}
		key := bit[off]
		off++
		if key == 'e' {
			if off+4 > len(bit) {
				return nil, errTruncated
			}
			n := int(binary.BigEndian.Uint32(bit[off:]))
			off += 4
			if n > len(bit)-off {
				return nil, fmt.Errorf("%w: payload of %d bytes, %d present", errTruncated, n, len(bit)-off)
			}
			return bit[off : off+n], nil
		}
		if key < 'a' || key > 'd' {
			return nil, fmt.Errorf("unknown bitstream header field %q", key)
		}
		if off+2 > len(bit) {
			return nil, errTruncated
		}
		off += 2 + int(binary.BigEndian.Uint16(bit[off:]))
	}
}
