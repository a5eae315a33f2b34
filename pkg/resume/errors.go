package resume

import (
	"errors"
	"fmt"
)

// ErrEmptyText means the document was read but contained no usable text,
// e.g. an image-only PDF.
var ErrEmptyText = errors.New("could not extract text from the file")

// DecodeError means the document could not be converted to text at all.
type DecodeError struct {
	Filename string
	Format   string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to read %s file %q: %v", e.Format, e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
