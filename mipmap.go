package ktx

import "math/bits"

// maxLevelCount returns the length of the full mip chain for a dimension:
// the number of halvings down to 1, plus the base level.
func maxLevelCount(maxDimension uint32) uint32 {
	n := uint32(bits.Len32(maxDimension))
	if n == 0 {
		return 1
	}

	return n
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level uint32) uint32 {
	if level >= 32 {
		return 1
	}

	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}

// atLeastOne applies the format rule that a zero count or dimension means one.
func atLeastOne(v uint32) uint32 {
	if v == 0 {
		return 1
	}

	return v
}

// ceilDiv divides rounding up; d must be non-zero.
func ceilDiv(n, d uint32) uint64 {
	return (uint64(n) + uint64(d) - 1) / uint64(d)
}
