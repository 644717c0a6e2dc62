// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package lz77

// lane records the best candidate match found for one position within
// a cycle, before the lazy-selection sweep picks a winner.
type lane struct {
	length int
	pos    int
}

// Encode runs the parallel dictionary match search over plain and
// returns the intermediate token stream: a sequence of Literal and
// BackRef tokens that LZ77 Decode inverts back into plain. opts bounds
// the window size and match length the search will consider; callers
// not tuning those should pass DefaultOptions().
//
// Each cycle probes NumDict dictionaries over up to Vec lanes starting
// at the current position. A chosen match can advance pos past the
// end of this cycle's lanes; every position the cycle covers, whether
// it was searched as a lane or only skipped over by the match it fed,
// still gets inserted into its dictionary before the next cycle
// starts, so no byte goes uninserted — the reference hardware's
// UPDATE_DICT step runs unconditionally every cycle, independent of
// how far a match advanced the output position.
func Encode(plain []byte, opts Options) []Token {
	if len(plain) == 0 {
		return nil
	}

	var dicts [NumDict]*dict
	for i := range dicts {
		dicts[i] = newDict()
	}

	tokens := make([]Token, 0, len(plain))

	// The reference primes its window with one unmatched word before
	// searching begins; first_valid_position = 4 preserves that.
	pos := 0
	if len(plain) > Vec {
		for i := 0; i < Vec; i++ {
			tokens = append(tokens, Literal(plain[i]))
			updateDictAtPosition(dicts, plain, i, opts.MaxLen)
		}
		pos = Vec
	}

	for pos < len(plain) {
		cycleStart := pos
		end := cycleStart + Vec
		if end > len(plain) {
			end = len(plain)
		}
		nLanes := end - cycleStart

		var best [Vec]lane
		for i := 0; i < nLanes; i++ {
			start := cycleStart + i
			if start+4 > len(plain) {
				continue
			}
			best[i] = bestMatch(dicts, plain, start, opts.MaxLen)
		}

		chosenLane, chosenEnd := -1, -1
		for i := 0; i < nLanes; i++ {
			if best[i].length < MinLen {
				continue
			}
			offset := (cycleStart + i) - best[i].pos
			if offset < 1 || offset > opts.MaxOffset {
				continue
			}
			if reach := i + best[i].length; reach > chosenEnd {
				chosenLane, chosenEnd = i, reach
			}
		}

		var nextPos int
		if chosenLane >= 0 {
			for i := 0; i < chosenLane; i++ {
				tokens = append(tokens, Literal(plain[cycleStart+i]))
			}
			offset := (cycleStart + chosenLane) - best[chosenLane].pos
			tokens = append(tokens, BackRef(offset, best[chosenLane].length))
			nextPos = cycleStart + chosenLane + best[chosenLane].length
		} else {
			for i := 0; i < nLanes; i++ {
				tokens = append(tokens, Literal(plain[cycleStart+i]))
			}
			nextPos = end
		}

		// A match can make nextPos reach past end, the cycle's own
		// nLanes lanes; every position up to nextPos — searched lane
		// or skipped-over match byte alike — still needs a dictionary
		// entry, or later cycles could never find it as a match
		// source.
		for p := cycleStart; p < nextPos; p++ {
			updateDictAtPosition(dicts, plain, p, opts.MaxLen)
		}
		pos = nextPos
	}

	return tokens
}

func bestMatch(dicts [NumDict]*dict, plain []byte, start, maxLen int) lane {
	var best lane
	for d := 0; d < NumDict; d++ {
		data, spos, ok := dicts[d].lookup(plain[start:])
		if !ok {
			continue
		}
		l := matchLen(data[:], plain[start:], maxLen)
		if l > best.length {
			best = lane{length: l, pos: spos}
		}
	}
	return best
}

func matchLen(dictData, src []byte, maxLen int) int {
	max := maxLen
	if len(src) < max {
		max = len(src)
	}
	n := 0
	for n < max && dictData[n] == src[n] {
		n++
	}
	return n
}

// updateDictAtPosition inserts the bytes at pos into the dictionary
// owned by pos%NumDict. Indexing by absolute position rather than a
// cycle-relative lane keeps every dictionary's associativity
// well-defined even after a match has made a cycle's span of covered
// positions larger than Vec.
func updateDictAtPosition(dicts [NumDict]*dict, plain []byte, pos, maxLen int) {
	if pos+4 > len(plain) {
		return
	}
	window := plain[pos:]
	if len(window) > maxLen {
		window = window[:maxLen]
	}
	dicts[pos%NumDict].update(window, pos)
}
