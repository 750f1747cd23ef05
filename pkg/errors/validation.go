package errors

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ValidationErrors aggregates several validation failures into one error so
// callers can report every problem with an options payload at once instead
// of fixing them one by one.
type ValidationErrors struct {
	Errors []*Error
}

// Add appends a validation failure. Nil errors are ignored.
func (v *ValidationErrors) Add(err *Error) {
	if err != nil {
		v.Errors = append(v.Errors, err)
	}
}

// Addf appends a new validation failure with the given code and message.
func (v *ValidationErrors) Addf(code Code, format string, args ...any) {
	v.Add(New(code, format, args...))
}

// Empty reports whether no failures were recorded.
func (v *ValidationErrors) Empty() bool { return len(v.Errors) == 0 }

// Err returns the aggregate as an error, or nil when empty. A single
// recorded failure is returned directly so its code stays inspectable.
func (v *ValidationErrors) Err() error {
	switch len(v.Errors) {
	case 0:
		return nil
	case 1:
		return v.Errors[0]
	}
	return v
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.Message
	}
	return fmt.Sprintf("%d validation errors: %s", len(v.Errors), strings.Join(msgs, "; "))
}

// ValidateName validates a device, pad, or port name for safety and
// correctness. Names end up in filenames, cache keys, and store documents,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "%s name too long (max 256 characters)", kind)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "%s name contains invalid characters: %q", kind, pattern)
		}
	}

	return nil
}

// ValidatePath validates an output file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// layoutIDRegex matches store layout IDs (UUIDs or short hex handles).
var layoutIDRegex = regexp.MustCompile(`^[a-fA-F0-9-]{8,64}$`)

// ValidateLayoutID validates a stored-layout identifier before it reaches
// the store, keeping arbitrary strings out of query filters.
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "layout id cannot be empty")
	}
	if !layoutIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid layout id: %q", id)
	}
	return nil
}
