// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package flate

import (
	"bytes"
	"io"

	"github.com/fyflxl/vecflate/internal/lz77"
	"github.com/pkg/errors"
)

// DefaultMaxOutputSize bounds Decompress and NewReader's output when
// the caller does not supply its own limit via DecompressLimit or
// NewReaderLimit. It guards against a corrupt or adversarial
// bitstream whose back-references expand to unbounded output.
const DefaultMaxOutputSize = 64 << 20 // 64 MiB

// Reader decompresses a complete DEFLATE bitstream. It reads all of
// its source on construction rather than streaming block by block,
// consistent with this codec's fixed-buffer scope.
type Reader struct {
	r *bytes.Reader
}

// NewReader reads r to completion and decodes it, rejecting output
// larger than DefaultMaxOutputSize.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderLimit(r, DefaultMaxOutputSize)
}

// NewReaderLimit is NewReader with an explicit maximum output size; a
// limit <= 0 means unlimited.
func NewReaderLimit(r io.Reader, maxOutputSize int) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "flate: read compressed input")
	}
	out, err := DecompressLimit(data, maxOutputSize)
	if err != nil {
		return nil, err
	}
	return &Reader{r: bytes.NewReader(out)}, nil
}

func (rd *Reader) Read(p []byte) (int, error) {
	return rd.r.Read(p)
}

// Close is a no-op; Reader holds no resources beyond its decoded
// buffer.
func (rd *Reader) Close() error { return nil }

// Decompress decodes a complete static- or dynamic-Huffman DEFLATE
// bitstream into plaintext, rejecting output larger than
// DefaultMaxOutputSize.
func Decompress(data []byte) ([]byte, error) {
	return DecompressLimit(data, DefaultMaxOutputSize)
}

// DecompressLimit is Decompress with an explicit maximum output size;
// a limit <= 0 means unlimited. Exceeding it surfaces as a
// CorruptInputError with Kind == ErrOutputOverflow.
func DecompressLimit(data []byte, maxOutputSize int) ([]byte, error) {
	br := newBitReader(data)
	tokens, err := decodeBlocks(br)
	if err != nil {
		return nil, err
	}
	out, err := lz77.Decode(tokens, maxOutputSize)
	if err != nil {
		if errors.Is(err, lz77.ErrOutputLimitExceeded) {
			return nil, corrupt(br.offset(), ErrOutputOverflow)
		}
		if errors.Is(err, lz77.ErrInvalidDistance) {
			return nil, corrupt(br.offset(), ErrInvalidDistance)
		}
		return nil, errors.Wrap(err, "flate: expand back-references")
	}
	return out, nil
}
