package errors

import (
	"strings"
	"unicode"
)

// ValidateID validates a spec identifier (axis, series, group or annotation id).
// The kind is used only for the error message.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No "|" separator (reserved for series keys)
//   - Maximum length of 256 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidSpec, "%s id cannot be empty", kind)
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidSpec, "%s id too long (max 256 characters)", kind)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSpec, "%s id %q contains invalid control characters", kind, id)
		}
	}

	if strings.Contains(id, "|") {
		return New(ErrCodeInvalidSpec, "%s id %q cannot contain %q", kind, id, "|")
	}

	return nil
}

// ValidateRotation validates a chart rotation in degrees.
// Only the four fixed rotations 0, 90, 180 and -90 are supported.
func ValidateRotation(degrees int) error {
	switch degrees {
	case 0, 90, 180, -90:
		return nil
	}
	return New(ErrCodeInvalidRotation, "unsupported chart rotation %d (want 0, 90, 180 or -90)", degrees)
}

// ValidatePosition validates an axis position name.
func ValidatePosition(axisID, position string) error {
	switch position {
	case "top", "bottom", "left", "right":
		return nil
	case "":
		return Axis(axisID).New(ErrCodeInvalidAxis, "position cannot be empty")
	}
	return Axis(axisID).New(ErrCodeInvalidAxis, "unknown position %q", position)
}

// ValidatePath validates a fixture file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
