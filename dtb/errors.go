package dtb

import (
	"errors"

	"github.com/MrMan314/dtbkit/internal/format"
)

var (
	// ErrShortBuffer indicates the destination buffer cannot hold the
	// serialized tree. Size the buffer with SerializedSize.
	ErrShortBuffer = errors.New("dtb: buffer too small for serialized tree")

	// ErrTruncated indicates a blob ended before a complete node or
	// property record.
	ErrTruncated = format.ErrTruncated

	// ErrTooDeep indicates a blob nests nodes beyond the supported depth.
	ErrTooDeep = format.ErrTooDeep
)
