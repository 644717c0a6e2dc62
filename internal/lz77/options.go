// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package lz77

import "github.com/pkg/errors"

// Options configures the encoder's window size and maximum match
// length, the two knobs the reference hardware exposes as tunable
// constants. The CLI's --window and --max-match flags thread down to
// this struct.
type Options struct {
	// MaxOffset caps how far back a back-reference may point.
	MaxOffset int
	// MaxLen caps the longest match Encode will emit.
	MaxLen int
}

// DefaultOptions returns the codec's standard window size and maximum
// match length.
func DefaultOptions() Options {
	return Options{MaxOffset: DefaultMaxOffset, MaxLen: DefaultMaxLen}
}

// Validate rejects an Options value the dictionary slot storage or the
// RFC 1951 length/distance alphabets cannot represent.
func (o Options) Validate() error {
	if o.MaxLen < MinLen || o.MaxLen > absMaxLen {
		return errors.Errorf("lz77: max match length must be in [%d, %d], got %d", MinLen, absMaxLen, o.MaxLen)
	}
	if o.MaxOffset < 1 || o.MaxOffset > maxRFCDistance {
		return errors.Errorf("lz77: window size must be in [1, %d], got %d", maxRFCDistance, o.MaxOffset)
	}
	return nil
}
