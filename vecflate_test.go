// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package vecflate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fyflxl/vecflate/flate"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompressFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	compressed := filepath.Join(dir, "input.vfl")
	roundTripped := filepath.Join(dir, "output.txt")

	content := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")
	require.NoError(t, os.WriteFile(src, content, 0o600))

	log := logrus.New()
	log.SetOutput(os.Stderr)

	require.NoError(t, CompressFile(context.Background(), log, src, compressed, flate.DefaultOptions()))
	require.NoError(t, DecompressFile(context.Background(), log, compressed, roundTripped))

	out, err := os.ReadFile(roundTripped)
	require.NoError(t, err)
	require.Equal(t, content, out)
}

func TestCompressFileRejectsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := CompressFile(ctx, nil, filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.vfl"), flate.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
