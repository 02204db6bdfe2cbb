package decoder

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLibrary    = errors.New("unknown decoder library")
	ErrUnsupportedOutput = errors.New("unsupported output")
)

// InsufficientBufferError tells the caller that dst is not big enough to hold
// the decoded data. For streams RequiredSize is a lower bound.
type InsufficientBufferError struct {
	RequiredSize int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("provided buffer doesn't meet the size requirement of length, %d", e.RequiredSize)
}
