//
// compress.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Compression function, FIPS 180-4 Section 6.2.2 steps 2-4.

package sha256

import (
	"math/bits"
)

// compress folds one message schedule into the hash state and returns
// the next state. The eight working registers start as a copy of the
// state, run 64 rounds, and are added back into the state words at the
// end (the Davies-Meyer feed-forward; omitting it would destroy
// collision resistance). All arithmetic wraps modulo 2^32.
func compress(state [8]uint32, w *[64]uint32) [8]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := bigSig1(e) + ch(e, f, g) + h + roundK[i] + w[i]
		t2 := bigSig0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h

	return state
}

// bigSig0 is the big sigma-0 round function.
func bigSig0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^
		bits.RotateLeft32(x, -22)
}

// bigSig1 is the big sigma-1 round function.
func bigSig1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^
		bits.RotateLeft32(x, -25)
}

// ch is the choose function: each result bit picks y or z depending
// on the corresponding bit of x.
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj is the majority function over the bits of x, y, and z.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}
