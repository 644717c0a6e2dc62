// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestCLICompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	compressed := filepath.Join(dir, "input.vfl")
	roundTripped := filepath.Join(dir, "output.txt")

	content := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")
	require.NoError(t, os.WriteFile(src, content, 0o600))

	log := logrus.New()
	var logOutput bytes.Buffer
	log.SetOutput(&logOutput)
	log.SetLevel(logrus.DebugLevel)

	root := newRootCmd(log)
	root.SetArgs([]string{"--verbose", "compress", src, "--out", compressed})
	require.NoError(t, root.Execute())

	root = newRootCmd(log)
	root.SetArgs([]string{"decompress", compressed, "--out", roundTripped})
	require.NoError(t, root.Execute())

	out, err := os.ReadFile(roundTripped)
	require.NoError(t, err)
	require.Equal(t, content, out)

	// --verbose raises the logger to debug level and logs go to their
	// own writer, never to the files compress/decompress produce.
	require.NotEmpty(t, logOutput.String())
	require.Contains(t, logOutput.String(), "compress")
}

func TestCLICompressRespectsWindowAndMaxMatchFlags(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	compressed := filepath.Join(dir, "input.vfl")
	roundTripped := filepath.Join(dir, "output.txt")

	content := bytes.Repeat([]byte("abcabcabcabc"), 10)
	require.NoError(t, os.WriteFile(src, content, 0o600))

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	root := newRootCmd(log)
	root.SetArgs([]string{"compress", src, "--out", compressed, "--window", "64", "--max-match", "4"})
	require.NoError(t, root.Execute())

	root = newRootCmd(log)
	root.SetArgs([]string{"decompress", compressed, "--out", roundTripped})
	require.NoError(t, root.Execute())

	out, err := os.ReadFile(roundTripped)
	require.NoError(t, err)
	require.Equal(t, content, out)
}

func TestCLICompressRejectsInvalidMaxMatch(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	root := newRootCmd(log)
	root.SetArgs([]string{"compress", src, "--out", filepath.Join(dir, "out.vfl"), "--max-match", "0"})
	require.Error(t, root.Execute())
}
