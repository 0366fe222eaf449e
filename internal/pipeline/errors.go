package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a single-file conversion failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInputNotFound: the source path does not exist.
	KindInputNotFound
	// KindUnsupportedInput: the source extension is not in the input set.
	KindUnsupportedInput
	// KindUnsupportedOutput: the requested format has no capability entry.
	KindUnsupportedOutput
	// KindDecode: the codec could not parse the source bytes.
	KindDecode
	// KindEncode: the codec could not produce or write the destination.
	KindEncode
	// KindIO: generic filesystem failure (directory creation, stat).
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInputNotFound:
		return "input not found"
	case KindUnsupportedInput:
		return "unsupported input format"
	case KindUnsupportedOutput:
		return "unsupported output format"
	case KindDecode:
		return "decode error"
	case KindEncode:
		return "encode error"
	case KindIO:
		return "io error"
	default:
		return "unknown error"
	}
}

// Error is a single-file conversion failure. It never aborts a batch; the
// worker records it and moves on to the next file.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf extracts the failure kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
