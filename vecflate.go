// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package vecflate is the top-level driver: it wires the flate codec
// to file-oriented compress/decompress operations and to structured
// logging, so both the CLI and library callers share one entry point
// instead of talking to flate.Reader/flate.Writer directly.
package vecflate

import (
	"context"
	"io"
	"os"

	"github.com/fyflxl/vecflate/flate"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CompressFile reads src, compresses it as a single DEFLATE bitstream,
// and writes the result to dst. log receives progress diagnostics; a
// nil log defaults to logrus.StandardLogger() so callers can omit it
// without nil-checking themselves. opts tunes the encoder's window
// size and maximum match length; pass flate.DefaultOptions() for the
// codec's standard limits.
func CompressFile(ctx context.Context, log *logrus.Logger, src, dst string, opts flate.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "vecflate: open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "vecflate: create %s", dst)
	}
	defer out.Close()

	log.WithFields(logrus.Fields{"src": src, "window": opts.MaxOffset, "max_match": opts.MaxLen}).Debug("compressing")
	w := flate.NewWriterOptions(out, opts)
	n, err := io.Copy(w, in)
	if err != nil {
		return errors.Wrap(err, "vecflate: read input")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "vecflate: flush compressed output")
	}
	log.WithFields(logrus.Fields{"src": src, "dst": dst, "bytes_in": n}).Info("compressed")
	return nil
}

// DecompressFile is CompressFile's inverse.
func DecompressFile(ctx context.Context, log *logrus.Logger, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "vecflate: open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "vecflate: create %s", dst)
	}
	defer out.Close()

	log.WithField("src", src).Debug("decompressing")
	r, err := flate.NewReader(in)
	if err != nil {
		return errors.Wrap(err, "vecflate: decode input")
	}
	n, err := io.Copy(out, r)
	if err != nil {
		return errors.Wrap(err, "vecflate: write output")
	}
	log.WithFields(logrus.Fields{"src": src, "dst": dst, "bytes_out": n}).Info("decompressed")
	return nil
}
