// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func checkWidth(op string, width uint64) error {
	switch width {
	case 1, 2, 4, 8:
		return nil
	}
	return fmt.Errorf("%s: %w, got %d", op, ErrInvalidWidth, width)
}

// truncate keeps the low width bytes of v. width must be valid.
func truncate(v uint64, width uint64) uint64 {
	if width >= 8 {
		return v
	}
	return v & (1<<(8*width) - 1)
}

// signExtend reads the low width bytes of v as a two's complement number.
// width must be valid.
func signExtend(v uint64, width uint64) int64 {
	shift := 64 - 8*width
	return int64(v<<shift) >> shift
}

func widthOf[T constraints.Integer]() uint64 {
	var v T
	return uint64(unsafe.Sizeof(v))
}
