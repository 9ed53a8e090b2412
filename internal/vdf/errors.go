package vdf

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every decoding failure.
var ErrMalformed = errors.New("malformed KeyValue input")

// MalformedInputError reports where a document could not be tokenized.
type MalformedInputError struct {
	Format Format
	Offset int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s KeyValue input at offset %d: %s", e.Format, e.Offset, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformed
}

func malformed(f Format, offset int, reason string, args ...any) error {
	return &MalformedInputError{
		Format: f,
		Offset: offset,
		Reason: fmt.Sprintf(reason, args...),
	}
}
