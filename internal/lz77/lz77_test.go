// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package lz77

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()
	tokens := Encode(input, DefaultOptions())
	out, err := Decode(tokens, 0)
	require.NoError(t, err)
	require.True(t, bytes.Equal(input, out), "round trip mismatch: got %q want %q", out, input)
	return out
}

func TestRoundTripEmpty(t *testing.T) {
	roundTrip(t, nil)
}

func TestRoundTripMinimumMatch(t *testing.T) {
	roundTrip(t, []byte("ababab"))
}

func TestRoundTripRunLengthOverlap(t *testing.T) {
	roundTrip(t, []byte("aaaaaaaa"))
}

func TestRoundTripBoundaryAtMaxLen(t *testing.T) {
	unique := []byte("0123456789abcdefghijklmnopqrstuv") // 32 bytes
	input := append([]byte("X"), unique...)
	input = append(input, unique...)
	roundTrip(t, input)
}

func TestRoundTripNoRepeats(t *testing.T) {
	input := []byte("the quick brown fox jumps over 13 lazy dogs!")
	out := roundTrip(t, input)
	tokens := Encode(input, DefaultOptions())
	for _, tok := range tokens {
		require.Equal(t, KindLiteral, tok.Kind)
	}
	require.Equal(t, input, out)
}

func TestBackRefInvariants(t *testing.T) {
	input := bytes.Repeat([]byte("abcд"), 64)
	opts := DefaultOptions()
	for _, tok := range Encode(input, opts) {
		if tok.Kind != KindBackRef {
			continue
		}
		require.GreaterOrEqual(t, tok.Offset, 1)
		require.LessOrEqual(t, tok.Offset, opts.MaxOffset)
		require.GreaterOrEqual(t, tok.Length, MinLen)
		require.LessOrEqual(t, tok.Length, opts.MaxLen)
	}
}

func TestDecodeRejectsOutOfRangeDistance(t *testing.T) {
	_, err := Decode([]Token{BackRef(5, 3)}, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidDistance)
}

func TestDecodeRejectsOutputOverLimit(t *testing.T) {
	tokens := []Token{Literal('a'), Literal('b'), Literal('c')}
	_, err := Decode(tokens, 2)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOutputLimitExceeded)
}

func TestHelloWorld(t *testing.T) {
	roundTrip(t, []byte("Hello, world!"))
}

func TestEncodeRespectsCustomMaxMatch(t *testing.T) {
	input := append([]byte("0123456789"), []byte("0123456789")...)
	opts := Options{MaxOffset: 4096, MaxLen: 5}
	for _, tok := range Encode(input, opts) {
		if tok.Kind == KindBackRef {
			require.LessOrEqual(t, tok.Length, opts.MaxLen)
		}
	}

	out, err := Decode(Encode(input, opts), 0)
	require.NoError(t, err)
	require.Equal(t, input, out)
}
