// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package deflate

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReversalIsSelfInverse(t *testing.T) {
	for _, b := range []byte{0x00, 0xFF, 0x01, 0x80, 0xC0, 0x3E} {
		require.Equal(t, b, bits.Reverse8(bits.Reverse8(b)))
	}
}

func TestBitWriterPacksMSBFirstThenReverses(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0b101, 3)
	w.WriteBits(0b1, 1)
	w.Flush()

	out := w.Bytes()
	require.Len(t, out, 1)

	// Un-reversing the emitted byte must restore MSB-first production
	// order: 1,0,1,1 followed by zero padding.
	restored := bits.Reverse8(out[0])
	require.Equal(t, byte(0b10110000), restored)
}

func TestEncodeStaticBlockEmptyStartsWithStaticHeader(t *testing.T) {
	block := EncodeStaticBlock(nil)
	require.NotEmpty(t, block)
	// First 3 bits after restoring MSB-first order must be BFINAL=1,
	// BTYPE=01 (110 in the unreversed accumulator, before any
	// per-field reversal is applied by a header reader).
	first := bits.Reverse8(block[0])
	require.Equal(t, byte(1), first>>7)
	require.Equal(t, byte(0b10), (first>>5)&0b11)
}
