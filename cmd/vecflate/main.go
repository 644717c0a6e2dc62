// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"strings"

	"github.com/fyflxl/vecflate"
	"github.com/fyflxl/vecflate/flate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.StandardLogger()
	if err := newRootCmd(log).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "vecflate",
		Short: "A DEFLATE-compatible compressor with a parallel dictionary encoder",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newCompressCmd(log), newDecompressCmd(log))
	return root
}

func newCompressCmd(log *logrus.Logger) *cobra.Command {
	defaults := flate.DefaultOptions()
	var out string
	var window, maxMatch int
	cmd := &cobra.Command{
		Use:   "compress <input>",
		Short: "Compress a file into a DEFLATE bitstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := out
			if dst == "" {
				dst = args[0] + ".vfl"
			}
			opts := flate.Options{MaxOffset: window, MaxLen: maxMatch}
			return vecflate.CompressFile(context.Background(), log, args[0], dst, opts)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default: <input>.vfl)")
	cmd.Flags().IntVar(&window, "window", defaults.MaxOffset, "maximum back-reference distance")
	cmd.Flags().IntVar(&maxMatch, "max-match", defaults.MaxLen, "maximum back-reference length")
	return cmd
}

func newDecompressCmd(log *logrus.Logger) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decompress <input>",
		Short: "Decompress a DEFLATE bitstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := out
			if dst == "" {
				dst = strings.TrimSuffix(args[0], ".vfl")
			}
			return vecflate.DecompressFile(context.Background(), log, args[0], dst)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default: <input> with .vfl stripped)")
	return cmd
}
