package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the kind of a load failure.
// Use errors.Is against a returned error to classify it.
var (
	ErrNotFound = errors.New("log file not found")
	ErrDecode   = errors.New("log file is not valid " + Encoding)
	ErrIO       = errors.New("log file read failed")
)

// ErrorKind categorizes a LoadError.
type ErrorKind int

const (
	// KindIO covers every read failure that is not one of the other kinds.
	KindIO ErrorKind = iota
	// KindNotFound means the path does not exist.
	KindNotFound
	// KindDecode means the content is not valid text in the expected encoding.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDecode:
		return "decode"
	default:
		return "io"
	}
}

// LoadError describes why a log file could not be loaded.
type LoadError struct {
	Kind ErrorKind
	Path string

	// Line is the 1-based line of the first undecodable byte (decode errors only).
	Line int

	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: %v", e.Path, ErrNotFound)
	case KindDecode:
		return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, ErrDecode)
	default:
		if e.Err == nil {
			return fmt.Sprintf("%s: %v", e.Path, ErrIO)
		}
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}
