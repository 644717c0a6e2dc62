// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tables holds the RFC 1951 fixed alphabets shared by the
// encoder (internal/deflate) and the decoder (flate), so both sides
// build identical static codes from a single source of truth.
package tables

import "github.com/fyflxl/vecflate/internal/huffman"

const (
	EndOfBlock  = 256
	NumLitSyms  = 288
	NumDistSyms = 30
)

// LengthBase and LengthExtraBits give, for length symbol index s
// (0-based from literal/length symbol 257), the minimum match length
// it encodes and how many extra bits follow it (RFC 1951 Table
// 3.2.5). Built generically so raising the encoder's maximum match
// length past 32 up to the RFC ceiling of 258 needs no change here.
var LengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var LengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// DistBase and DistExtraBits give, for distance symbol s, the minimum
// offset it encodes and its extra-bit count (RFC 1951 Table 3.2.5).
var DistBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var DistExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// LengthSymbol decomposes a match length into its length symbol (as a
// full literal/length alphabet symbol, 257..285), extra-bit count,
// and extra value.
func LengthSymbol(length int) (sym int, extraBits uint8, extraVal uint32) {
	for i := len(LengthBase) - 1; i >= 0; i-- {
		if length >= LengthBase[i] {
			return 257 + i, LengthExtraBits[i], uint32(length - LengthBase[i])
		}
	}
	return 257, 0, 0
}

// DistSymbol decomposes a back-reference offset into its distance
// symbol, extra-bit count, and extra value.
func DistSymbol(offset int) (sym int, extraBits uint8, extraVal uint32) {
	for i := len(DistBase) - 1; i >= 0; i-- {
		if offset >= DistBase[i] {
			return i, DistExtraBits[i], uint32(offset - DistBase[i])
		}
	}
	return 0, 0, 0
}

// StaticLitLenCodes and StaticDistCodes are built once from the fixed
// RFC 1951 3.2.6 code-length assignment, reusing the same canonical
// code builder the dynamic-header path uses, since a static code is
// simply a dynamic code whose lengths never change block to block.
var (
	StaticLitLenCodes = buildStaticLitLen()
	StaticDistCodes   = buildStaticDist()
)

func buildStaticLitLen() []huffman.Code {
	lens := make([]uint8, NumLitSyms)
	for i := 0; i <= 143; i++ {
		lens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lens[i] = 8
	}
	return huffman.BuildCanonical(lens)
}

func buildStaticDist() []huffman.Code {
	lens := make([]uint8, NumDistSyms)
	for i := range lens {
		lens[i] = 5
	}
	return huffman.BuildCanonical(lens)
}
