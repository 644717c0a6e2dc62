// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package deflate

import (
	"io"

	"github.com/fyflxl/vecflate/internal/lz77"
	"github.com/pkg/errors"
)

// Writer buffers everything written to it and, on Close, runs the
// full pipeline once: LZ77 match search, then static Huffman coding,
// then a single write of the resulting block to the underlying
// io.Writer. This mirrors the reference hardware's batch-oriented
// Deflate() entry point rather than a block-per-flush streaming
// writer, matching the non-streaming scope this codec targets.
type Writer struct {
	w      io.Writer
	buffer []byte
	opts   lz77.Options
	err    error
}

// NewWriter returns a Writer that accumulates plaintext written to it
// and emits one compressed block, encoded with lz77.DefaultOptions(),
// to w on Close.
func NewWriter(w io.Writer) *Writer {
	return NewWriterOptions(w, lz77.DefaultOptions())
}

// NewWriterOptions is NewWriter with an explicit window size and
// maximum match length; opts is validated on Close, not here, so
// construction stays infallible like NewWriter.
func NewWriterOptions(w io.Writer, opts lz77.Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// Write accumulates p; it never fails unless a previous Write or Close
// already failed.
func (wr *Writer) Write(p []byte) (int, error) {
	if wr.err != nil {
		return 0, wr.err
	}
	wr.buffer = append(wr.buffer, p...)
	return len(p), nil
}

// Reset discards buffered data and directs future output at w.
func (wr *Writer) Reset(w io.Writer) {
	wr.w = w
	wr.buffer = wr.buffer[:0]
	wr.err = nil
}

// Close runs the LZ77 + static Huffman pipeline over everything
// accumulated and writes the resulting block. Close must be called
// exactly once; Writer does not support incremental flushing.
func (wr *Writer) Close() error {
	if wr.err != nil {
		return wr.err
	}
	if err := wr.opts.Validate(); err != nil {
		wr.err = errors.Wrap(err, "deflate: invalid encoder options")
		return wr.err
	}
	tokens := lz77.Encode(wr.buffer, wr.opts)
	block := EncodeStaticBlock(tokens)
	if _, err := wr.w.Write(block); err != nil {
		wr.err = errors.Wrap(err, "deflate: write compressed block")
		return wr.err
	}
	return nil
}
