// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package flate

import "github.com/fyflxl/vecflate/internal/lz77"

// decodeBlocks reads one or more DEFLATE blocks from r and returns the
// intermediate token stream. Only static (BTYPE=01) and dynamic
// (BTYPE=10) Huffman blocks are supported. A stored (BTYPE=00) block
// is well-formed DEFLATE but not implemented by this decoder, and is
// rejected as ErrUnsupportedBlockType; BTYPE=11 is the genuinely
// reserved value and is rejected as ErrInvalidBlockType.
func decodeBlocks(r *bitReader) ([]lz77.Token, error) {
	var tokens []lz77.Token
	for {
		if r.avail() < 3 {
			return nil, corrupt(r.offset(), ErrTruncatedInput)
		}
		bfinal := r.readHeaderField(1)
		btype := r.readHeaderField(2)

		var litLenTable, distTable *twoLevelTable
		dynamic := false
		switch btype {
		case 0:
			return nil, corrupt(r.offset(), ErrUnsupportedBlockType)
		case 1:
			litLenTable, distTable = staticLitLenTable, staticDistTable
		case 2:
			dyn, err := readDynamicHeader(r)
			if err != nil {
				return nil, err
			}
			litLenTable, distTable = dyn.litLen, dyn.dist
			dynamic = true
		default:
			return nil, corrupt(r.offset(), ErrInvalidBlockType)
		}

		if err := decodeOneBlock(r, litLenTable, distTable, dynamic, &tokens); err != nil {
			return nil, err
		}
		if bfinal == 1 {
			break
		}
	}
	return tokens, nil
}

func decodeOneBlock(r *bitReader, litLenTable, distTable *twoLevelTable, dynamic bool, tokens *[]lz77.Token) error {
	for {
		if r.avail() < 1 {
			return corrupt(r.offset(), ErrTruncatedInput)
		}
		sym, ok := litLenTable.decode(r)
		if !ok {
			return corrupt(r.offset(), ErrInvalidCode)
		}
		switch {
		case sym < 256:
			*tokens = append(*tokens, lz77.Literal(byte(sym)))
		case sym == endOfBlock:
			return nil
		case int(sym) <= 285:
			length, err := decodeLength(r, sym, dynamic)
			if err != nil {
				return err
			}
			distSym, ok := distTable.decode(r)
			if !ok || distSym > 29 {
				return corrupt(r.offset(), ErrInvalidDistance)
			}
			offset, err := decodeDistance(r, int(distSym), dynamic)
			if err != nil {
				return err
			}
			*tokens = append(*tokens, lz77.BackRef(offset, length))
		default:
			return corrupt(r.offset(), ErrInvalidLength)
		}
	}
}

// extraBits reads an n-bit extra-bit field for a length or distance
// code. Static blocks preserve the reference hardware's deviation
// from RFC 1951 and read extra bits MSB-first without the wire-order
// reversal applied elsewhere; the static encoder in internal/deflate
// writes them the same way, so the two stay symmetric. Dynamic
// blocks, which this implementation only ever decodes (never
// produces), follow the RFC's LSB-first convention like every other
// dynamic-header field.
func extraBits(r *bitReader, n uint8, dynamic bool) uint32 {
	if n == 0 {
		return 0
	}
	if dynamic {
		return r.readHeaderField(n)
	}
	return r.readBits(n)
}

func decodeLength(r *bitReader, sym uint16, dynamic bool) (int, error) {
	idx := int(sym) - 257
	if idx < 0 || idx >= len(lengthBase) {
		return 0, corrupt(r.offset(), ErrInvalidLength)
	}
	extra := extraBits(r, lengthExtraBits[idx], dynamic)
	return lengthBase[idx] + int(extra), nil
}

func decodeDistance(r *bitReader, sym int, dynamic bool) (int, error) {
	if sym < 0 || sym >= len(distBase) {
		return 0, corrupt(r.offset(), ErrInvalidDistance)
	}
	extra := extraBits(r, distExtraBits[sym], dynamic)
	return distBase[sym] + int(extra), nil
}
