package huffman

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

// DefaultPerm is the permission given to output files when Options.Perm is
// zero.
const DefaultPerm os.FileMode = 0o644

// Options configures CompressFile and DecompressFile.
type Options struct {
	// Logger receives one line per completed run.  Nil disables logging.
	Logger *log.Logger

	// Perm is the permission of the created output file.
	Perm os.FileMode
}

func (opts Options) perm() os.FileMode {
	if opts.Perm == 0 {
		return DefaultPerm
	}
	return opts.Perm
}

func (opts Options) logf(format string, args ...interface{}) {
	if opts.Logger != nil {
		opts.Logger.Printf(format, args...)
	}
}

// CompressFile reads all of inPath and writes its artifact to outPath.
//
// The artifact is first written to a temporary file in the directory of
// outPath, synced, and renamed over outPath only once complete, so a failed
// run never leaves a partial artifact behind and never disturbs an existing
// outPath.
//
func CompressFile(inPath, outPath string, opts Options) (Stats, error) {
	data, err := readInput(inPath)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	err = writeOutput(outPath, opts.perm(), func(w io.Writer) error {
		var err error
		stats, err = Encode(w, data)
		return err
	})
	if err != nil {
		return stats, err
	}
	opts.logf("compressed %s -> %s: %v", inPath, outPath, stats)
	return stats, nil
}

// DecompressFile reads the artifact at inPath and writes the original bytes
// to outPath, with the same no-partial-output guarantee as CompressFile.
//
// A corrupt artifact is reported with an error for which IsCorrupt is true.
//
func DecompressFile(inPath, outPath string, opts Options) (Stats, error) {
	artifact, err := readInput(inPath)
	if err != nil {
		return Stats{}, err
	}

	data, stats, err := decode(bytes.NewReader(artifact))
	if err != nil {
		return Stats{}, err
	}

	err = writeOutput(outPath, opts.perm(), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return Stats{}, err
	}
	opts.logf("decompressed %s -> %s: %v", inPath, outPath, stats)
	return stats, nil
}

func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", path)
	}
	return data, nil
}

// writeOutput streams fn's output into a pending file beside path, which
// replaces path only after it has been synced and closed.  On any failure
// the pending file is removed and path is left as it was.
func writeOutput(path string, perm os.FileMode, fn func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithStaticPermissions(perm))
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() { _ = pf.Cleanup() }()

	bw := bufio.NewWriter(pf)
	if err := fn(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "write output %s", path)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "replace output %s", path)
	}
	return nil
}
