// Command huffpack compresses and decompresses files with a static Huffman
// code.
//
//     huffpack compress <input> <output>
//     huffpack decompress <input> <output>
//     huffpack inspect <artifact>
//     huffpack version
//
// Any other invocation is a usage error and exits with status 1, as does any
// failed operation.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffpack"
)

// usageError marks errors caused by the shape of the command line rather
// than by the operation itself.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

type rootFlags struct {
	verbose bool
	mode    string
}

// options turns the global flags into library options.
func (flags *rootFlags) options(logger *log.Logger) (huffman.Options, error) {
	perm, err := strconv.ParseUint(flags.mode, 8, 32)
	if err != nil || perm > 0o777 {
		return huffman.Options{}, usageError{errors.Errorf("invalid --mode %q: want octal permission bits such as 0644", flags.mode)}
	}
	opts := huffman.Options{Perm: os.FileMode(perm)}
	if flags.verbose {
		opts.Logger = logger
	}
	return opts, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	logger := log.New(stderr, "huffpack: ", 0)

	rootCmd := &cobra.Command{
		Use:           "huffpack",
		Short:         "Static Huffman file compressor",
		Long:          "huffpack compresses a file with a Huffman code built from its own byte frequencies, and restores it losslessly.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageError{errors.New("missing mode: use compress or decompress")}
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log statistics for each run")
	rootCmd.PersistentFlags().StringVarP(&flags.mode, "mode", "m", "0644", "Permission bits of created output files (octal)")

	rootCmd.AddCommand(newCompressCmd(flags, logger))
	rootCmd.AddCommand(newDecompressCmd(flags, logger))
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
