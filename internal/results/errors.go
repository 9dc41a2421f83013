package results

import "fmt"

// MissingFieldError reports a required key path absent from an input document.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("results: missing required field %q", e.Path)
}

// MalformedFieldError reports a key path present with the wrong shape or an
// out-of-range value.
type MalformedFieldError struct {
	Path   string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("results: malformed field %q: %s", e.Path, e.Reason)
}

func missing(path string) error {
	return &MissingFieldError{Path: path}
}

func malformed(path, format string, args ...any) error {
	return &MalformedFieldError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
