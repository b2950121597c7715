//
// padding.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Message padding and block segmentation, FIPS 180-4 Section 5.1.1.

package sha256

import (
	"encoding/binary"
	"fmt"
)

// pad appends the message padding to data and returns the padded
// buffer: a single 0x80 terminator byte, zero fill until the length
// is 56 mod 64, and the original message length in bits as a 64-bit
// big-endian integer. The result length is always a positive multiple
// of BlockSize; an empty message pads to exactly one block. A message
// whose last block has fewer than 9 free bytes spills into an extra
// block of zero fill before the length.
//
// Messages whose bit length does not fit in 64 bits would wrap the
// length field. Such inputs are beyond what a []byte can hold on any
// supported platform and are not defended against.
func pad(data []byte) []byte {
	n := len(data)
	fill := (55 - n%BlockSize + BlockSize) % BlockSize

	buf := make([]byte, 0, n+1+fill+8)
	buf = append(buf, data...)
	buf = append(buf, 0x80)
	buf = append(buf, make([]byte, fill)...)

	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(n)*8)

	return append(buf, length[:]...)
}

// segment splits the padded buffer into consecutive BlockSize-byte
// blocks in message order. The blocks are sub-slices of padded, not
// copies. The buffer length must be a multiple of BlockSize; pad
// guarantees this, so a violation means the padder is broken and
// segment panics.
func segment(padded []byte) [][]byte {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha256: padded length %d is not a multiple of %d",
			len(padded), BlockSize))
	}

	blocks := make([][]byte, 0, len(padded)/BlockSize)
	for i := 0; i < len(padded); i += BlockSize {
		blocks = append(blocks, padded[i:i+BlockSize])
	}

	return blocks
}
