package adjacency

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError reports an input file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	// *fs.PathError already names the file
	var perr *fs.PathError
	if errors.As(e.Err, &perr) {
		return e.Err.Error()
	}

	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// FormatError reports a line that does not hold the expected fields.
// Line is 1-based, 0 when unknown.
type FormatError struct {
	Line   int
	Text   string
	Fields int
	Reason string
}

func (e *FormatError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = fmt.Sprintf("expected %d fields, got %d", edgeFields, e.Fields)
	}

	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, reason, e.Text)
	}

	return fmt.Sprintf("%s: %q", reason, e.Text)
}
