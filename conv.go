// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx

package ktx

import (
	"fmt"
	"math/bits"
)

const maxUint32 = uint64(^uint32(0))

// intFromU64 converts a uint64 size to an int.
func intFromU64(n uint64) (int, error) {
	if n > uint64(int(^uint(0)>>1)) {
		return 0, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, n)
	}

	return int(n), nil
}

// padding4 returns the number of bytes needed to round n up to a 4-byte boundary.
func padding4(n uint64) uint64 {
	return (4 - n%4) % 4
}

// align4 rounds n up to a 4-byte boundary.
func align4(n uint64) uint64 {
	return n + padding4(n)
}

// mulU64 returns a*b and whether the product fits in 64 bits.
func mulU64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// addU64 returns a+b and whether the sum fits in 64 bits.
func addU64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
