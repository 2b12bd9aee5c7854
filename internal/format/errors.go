package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrTooDeep indicates node nesting exceeded MaxDepth.
	ErrTooDeep = errors.New("format: node nesting too deep")
)
