// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package flate

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrKind classifies why a bitstream was rejected as corrupt, so
// callers can branch on the failure mode instead of parsing an error
// string.
type ErrKind int

const (
	// ErrInvalidBlockType is returned for BTYPE == 3, the reserved
	// DEFLATE block type.
	ErrInvalidBlockType ErrKind = iota
	// ErrInvalidCode is returned when a decoded bit pattern does not
	// correspond to any assigned symbol.
	ErrInvalidCode
	// ErrInvalidDistance is returned for a distance symbol above 29,
	// or a back-reference whose offset reaches before the output
	// produced so far.
	ErrInvalidDistance
	// ErrInvalidLength is returned for a length symbol above 285.
	ErrInvalidLength
	// ErrTruncatedInput is returned when the bitstream ends before an
	// end-of-block symbol is reached.
	ErrTruncatedInput
	// ErrUnsupportedBlockType is returned for BTYPE == 0, a
	// well-formed stored (non-compressed) block. Stored blocks are a
	// valid DEFLATE block type that this decoder does not implement,
	// distinct from the truly reserved BTYPE == 3.
	ErrUnsupportedBlockType
	// ErrOutputOverflow is returned when expanding the token stream
	// would produce more bytes than DecompressLimit's or
	// NewReaderLimit's maxOutputSize allows.
	ErrOutputOverflow
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidBlockType:
		return "invalid block type"
	case ErrInvalidCode:
		return "invalid code"
	case ErrInvalidDistance:
		return "invalid distance"
	case ErrInvalidLength:
		return "invalid length"
	case ErrTruncatedInput:
		return "truncated input"
	case ErrUnsupportedBlockType:
		return "unsupported block type (stored block)"
	case ErrOutputOverflow:
		return "output overflow"
	default:
		return "unknown error"
	}
}

// CorruptInputError reports a bitstream that could not be decoded,
// with the byte offset at which decoding failed and the kind of
// failure, so a wrapped error retrieved with errors.As still exposes
// both.
type CorruptInputError struct {
	Offset int64
	Kind   ErrKind
}

func (e *CorruptInputError) Error() string {
	return "flate: corrupt input at offset " + strconv.FormatInt(e.Offset, 10) + ": " + e.Kind.String()
}

func corrupt(offset int64, kind ErrKind) error {
	return errors.WithStack(&CorruptInputError{Offset: offset, Kind: kind})
}
