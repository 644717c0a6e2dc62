// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package lz77

import "github.com/pkg/errors"

// ErrInvalidDistance is returned when a BackRef token's offset reaches
// before the start of the output produced so far.
var ErrInvalidDistance = errors.New("lz77: back-reference distance exceeds output produced so far")

// ErrOutputLimitExceeded is returned when expanding the token stream
// would produce more than maxOutputSize bytes, guarding a caller
// against a corrupt or adversarial bitstream whose back-references
// expand to unbounded output.
var ErrOutputLimitExceeded = errors.New("lz77: decoded output exceeds caller-supplied limit")

// Decode expands a token stream produced by Encode back into plaintext.
// maxOutputSize caps the size of the returned buffer; a value <= 0
// means unlimited. An empty token stream decodes to nil, mirroring
// Encode's nil result for empty input.
func Decode(tokens []Token, maxOutputSize int) ([]byte, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]byte, 0, len(tokens))
	grow := func(n int) error {
		if maxOutputSize > 0 && len(out)+n > maxOutputSize {
			return errors.Wrapf(ErrOutputLimitExceeded, "limit=%d", maxOutputSize)
		}
		return nil
	}
	for _, t := range tokens {
		switch t.Kind {
		case KindLiteral:
			if err := grow(1); err != nil {
				return nil, err
			}
			out = append(out, t.Lit)
		case KindBackRef:
			if t.Offset > len(out) {
				return nil, errors.Wrapf(ErrInvalidDistance, "offset=%d output_len=%d", t.Offset, len(out))
			}
			if err := grow(t.Length); err != nil {
				return nil, err
			}
			src := len(out) - t.Offset
			// Byte-by-byte, never a block copy: when Offset < Length
			// the bytes just appended become the source for later
			// bytes in this same back-reference (run-length
			// extension), which a slice-based bulk copy would not
			// reproduce correctly.
			for i := 0; i < t.Length; i++ {
				out = append(out, out[src+i])
			}
		}
	}
	return out, nil
}
