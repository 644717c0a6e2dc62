// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package flate implements a DEFLATE-compatible (RFC 1951) compressor
// and decompressor built around a parallel dictionary match search
// and a table-driven Huffman codec. The encoder produces static
// Huffman blocks; the decoder handles both static and dynamic blocks.
package flate
