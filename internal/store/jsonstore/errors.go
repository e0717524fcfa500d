package jsonstore

import (
	"errors"
	"fmt"
)

var (
	ErrCorruptData   = errors.New("corrupt data")
	ErrIO            = errors.New("i/o failure")
	ErrInvalidIndex  = errors.New("invalid index")
	ErrInvalidWindow = errors.New("invalid window")
)

// CorruptError reports the first line of the backing file that could not be
// decoded into a record.
type CorruptError struct {
	Line int
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt data at line %d: %v", e.Line, e.Err)
}

func (e *CorruptError) Unwrap() []error { return []error{ErrCorruptData, e.Err} }

// IOError wraps a filesystem failure with the operation that hit it.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// IndexError is returned by CheckAt when the index falls outside today's view.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrInvalidIndex }
