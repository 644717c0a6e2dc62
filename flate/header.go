// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package flate

import "github.com/fyflxl/vecflate/internal/huffman"

// hclenOrder is the RFC 1951 3.2.7 permutation applied to the 19
// code-length-code lengths as they appear on the wire.
var hclenOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

const (
	numRepeatPrev     = 16
	zeroRepeat3to10   = 17
	zeroRepeat11to138 = 18
	numCCLSyms        = 19
)

// dynamicTables holds the literal/length and distance decode tables
// readDynamicHeader builds for the rest of the block. The code-length
// table it also builds is used only while parsing the header and is
// not kept here.
type dynamicTables struct {
	litLen *twoLevelTable
	dist   *twoLevelTable
}

// readDynamicHeader parses a dynamic block's header: HLIT/HDIST/HCLEN,
// the code-length alphabet, and the literal/length and distance
// code-length sequences (including repeat codes 16/17/18), then builds
// the two-level decode tables for both alphabets.
func readDynamicHeader(r *bitReader) (*dynamicTables, error) {
	hlit := int(r.readHeaderField(5)) + 257
	hdist := int(r.readHeaderField(5)) + 1
	hclen := int(r.readHeaderField(4)) + 4

	var cclLens [numCCLSyms]uint8
	for i := 0; i < hclen; i++ {
		cclLens[hclenOrder[i]] = uint8(r.readHeaderField(3))
	}
	cclCodes := huffman.BuildCanonical(cclLens[:])
	cclTable := buildTable(cclCodes, 7)

	total := hlit + hdist
	lens := make([]uint8, total)
	i := 0
	for i < total {
		sym, ok := cclTable.decode(r)
		if !ok {
			return nil, corrupt(r.offset(), ErrInvalidCode)
		}
		switch {
		case sym <= 15:
			lens[i] = uint8(sym)
			i++
		case sym == numRepeatPrev:
			if i == 0 {
				return nil, corrupt(r.offset(), ErrInvalidCode)
			}
			count := 3 + int(r.readHeaderField(2))
			prev := lens[i-1]
			for n := 0; n < count && i < total; n++ {
				lens[i] = prev
				i++
			}
		case sym == zeroRepeat3to10:
			count := 3 + int(r.readHeaderField(3))
			for n := 0; n < count && i < total; n++ {
				lens[i] = 0
				i++
			}
		case sym == zeroRepeat11to138:
			count := 11 + int(r.readHeaderField(7))
			for n := 0; n < count && i < total; n++ {
				lens[i] = 0
				i++
			}
		default:
			return nil, corrupt(r.offset(), ErrInvalidCode)
		}
	}

	litLenCodes := huffman.BuildCanonical(lens[:hlit])
	distCodes := huffman.BuildCanonical(lens[hlit:])

	return &dynamicTables{
		litLen: buildTable(litLenCodes, 9),
		dist:   buildTable(distCodes, 6),
	}, nil
}
