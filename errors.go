package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrCorrupt is reported when an artifact is truncated or malformed.
	ErrCorrupt error = Error("artifact is corrupted")

	// ErrCodeTooLong is reported when a tree is too deep for its codes to
	// fit in a Code.
	ErrCodeTooLong error = Error("code exceeds 64 bits")

	// ErrMissingCode is reported when asked to encode a symbol that the
	// CodeBook has no code for.
	ErrMissingCode error = Error("symbol has no code")
)

// IsCorrupt returns true iff err was caused by a corrupt or truncated
// artifact.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}

// corruptf reports a malformed artifact, keeping ErrCorrupt as the cause.
func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorrupt, format, args...)
}

// readError maps running out of input into ErrCorrupt: every read in this
// package happens at a point where the format promises more data.
func readError(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return corruptf("unexpected end of input reading %s", what)
	}
	return errors.Wrapf(err, "reading %s", what)
}
