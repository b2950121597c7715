//
// schedule_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"testing"
)

// TestExpandABC checks the schedule of the single padded block of
// "abc" against hand-computed words.
func TestExpandABC(t *testing.T) {
	blocks := segment(pad([]byte("abc")))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, expected 1", len(blocks))
	}
	w := expand(blocks[0])

	if w[0] != 0x61626380 {
		t.Errorf("w[0] = %#08x, expected 0x61626380", w[0])
	}
	for i := 1; i < 15; i++ {
		if w[i] != 0 {
			t.Errorf("w[%d] = %#08x, expected 0", i, w[i])
		}
	}
	// 24 bits of message.
	if w[15] != 0x18 {
		t.Errorf("w[15] = %#08x, expected 0x18", w[15])
	}

	// w[16] = sig1(0) + w[9] + sig0(0) + w[0] = w[0].
	if w[16] != 0x61626380 {
		t.Errorf("w[16] = %#08x, expected 0x61626380", w[16])
	}
	// w[17] = sig1(w[15]) with all other terms zero.
	if w[17] != 0x000f0000 {
		t.Errorf("w[17] = %#08x, expected 0x000f0000", w[17])
	}
}

// TestSigmaFunctions checks the rotation helpers on hand-computed
// values.
func TestSigmaFunctions(t *testing.T) {
	cases := []struct {
		name string
		fn   func(uint32) uint32
		in   uint32
		out  uint32
	}{
		{"sig0", sig0, 1, 0x02004000},
		{"sig1", sig1, 1, 0x0000a000},
		{"bigSig0", bigSig0, 1, 0x40080400},
		{"bigSig1", bigSig1, 1, 0x04200080},
		{"sig0-zero", sig0, 0, 0},
		{"sig1-zero", sig1, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.in); got != tc.out {
				t.Errorf("%s(%#x) = %#08x, expected %#08x",
					tc.name, tc.in, got, tc.out)
			}
		})
	}
}
