// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package flate

import (
	"bytes"
	"io"

	"github.com/fyflxl/vecflate/internal/deflate"
	"github.com/fyflxl/vecflate/internal/lz77"
)

// Options configures the encoder's window size and maximum match
// length, exposed at this layer so callers (notably the CLI's
// --window and --max-match flags) can tune them without reaching into
// internal/lz77 directly.
type Options struct {
	// MaxOffset caps how far back a back-reference may point.
	MaxOffset int
	// MaxLen caps the longest match the encoder will emit.
	MaxLen int
}

// DefaultOptions returns the codec's standard window size and maximum
// match length.
func DefaultOptions() Options {
	d := lz77.DefaultOptions()
	return Options{MaxOffset: d.MaxOffset, MaxLen: d.MaxLen}
}

func (o Options) toLZ77() lz77.Options {
	return lz77.Options{MaxOffset: o.MaxOffset, MaxLen: o.MaxLen}
}

// Writer compresses everything written to it into a single static
// Huffman DEFLATE block, emitted on Close. See internal/deflate.Writer
// for why this is batch-oriented rather than a streaming block writer.
type Writer struct {
	w *deflate.Writer
}

// NewWriter returns a Writer that writes its compressed output to w,
// encoded with DefaultOptions().
func NewWriter(w io.Writer) *Writer {
	return NewWriterOptions(w, DefaultOptions())
}

// NewWriterOptions is NewWriter with an explicit window size and
// maximum match length; an invalid opts value surfaces as an error
// from Close, not here.
func NewWriterOptions(w io.Writer, opts Options) *Writer {
	return &Writer{w: deflate.NewWriterOptions(w, opts.toLZ77())}
}

func (wr *Writer) Write(p []byte) (int, error) { return wr.w.Write(p) }

// Reset discards any buffered input and directs future output at w.
func (wr *Writer) Reset(w io.Writer) { wr.w.Reset(w) }

// Close runs the compression pipeline and flushes the resulting block.
func (wr *Writer) Close() error { return wr.w.Close() }

// Compress encodes p as a complete static Huffman DEFLATE bitstream
// using DefaultOptions().
func Compress(p []byte) ([]byte, error) {
	return CompressOptions(p, DefaultOptions())
}

// CompressOptions is Compress with an explicit window size and
// maximum match length.
func CompressOptions(p []byte, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriterOptions(&buf, opts)
	if _, err := w.Write(p); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
