//
// schedule.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Message schedule expansion, FIPS 180-4 Section 6.2.2 step 1.

package sha256

import (
	"encoding/binary"
	"math/bits"
)

// expand computes the 64-word message schedule of one block. Words
// 0-15 are the block's 16 big-endian 32-bit words; words 16-63 are
// derived with the sigma recurrence. All additions wrap modulo 2^32.
func expand(block []byte) [64]uint32 {
	var w [64]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = sig1(w[i-2]) + w[i-7] + sig0(w[i-15]) + w[i-16]
	}

	return w
}

// sig0 is the small sigma-0 schedule function.
func sig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

// sig1 is the small sigma-1 schedule function.
func sig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}
