//
// sha256.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

// Size is the length of a SHA-256 digest in bytes.
const Size = 32

// BlockSize is the SHA-256 block size in bytes.
const BlockSize = 64

// Digest is a SHA-256 digest.
type Digest [Size]byte

// Bytes returns the digest as a byte slice.
func (d Digest) Bytes() []byte {
	return d[:]
}

// String returns the digest as a 64-character lowercase hexadecimal
// string, most significant byte first.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Sum computes the SHA-256 digest of data. The input is treated as
// opaque octets; callers hashing text choose the byte encoding before
// calling. Sum is a pure function and safe for concurrent use.
func Sum(data []byte) Digest {
	state := initHash
	for _, block := range segment(pad(data)) {
		w := expand(block)
		state = compress(state, &w)
	}

	return encode(state)
}

// SumHex computes the SHA-256 digest of data and returns it as a
// lowercase hexadecimal string.
func SumHex(data []byte) string {
	return Sum(data).String()
}

// encode serializes the final hash state: each state word becomes 4
// big-endian bytes, in word order.
func encode(state [8]uint32) Digest {
	var d Digest
	for i, word := range state {
		binary.BigEndian.PutUint32(d[i*4:], word)
	}

	return d
}
