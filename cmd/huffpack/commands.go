package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffpack"
)

const version = "0.1.0"

func newCompressCmd(flags *rootFlags, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file",
		Long:  "Compress the whole of <input> into the artifact <output>. The output is replaced only if compression succeeds.",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(logger)
			if err != nil {
				return err
			}
			in, out := args[0], args[1]
			if _, err := huffman.CompressFile(in, out, opts); err != nil {
				return errors.Wrapf(err, "compressing %s into %s", in, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "File compressed successfully!")
			return nil
		},
	}
}

func newDecompressCmd(flags *rootFlags, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a file",
		Long:  "Restore the original bytes of the artifact <input> into <output>. A corrupt or truncated artifact is rejected and <output> is left untouched.",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(logger)
			if err != nil {
				return err
			}
			in, out := args[0], args[1]
			if _, err := huffman.DecompressFile(in, out, opts); err != nil {
				return errors.Wrapf(err, "decompressing %s into %s", in, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "File decompressed successfully!")
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "inspect <artifact>",
		Short: "Describe an artifact",
		Long:  "Print the header, tree and code book of an artifact without decoding its payload.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open input")
			}
			defer f.Close()

			info, err := huffman.Inspect(f)
			if err != nil {
				return errors.Wrapf(err, "inspecting %s", args[0])
			}
			if quiet {
				fmt.Fprintln(cmd.OutOrStdout(), info.Stats)
				return nil
			}
			_, err = info.Dump(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the one-line summary")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "huffpack version %s\n", version)
			return nil
		},
	}
}
