package messages

import (
	"fmt"
	"strings"

	"github.com/aatumaykin/agesweep/internal/constants"
)

// FormatError formats a general error message with error prefix.
func FormatError(err error) string {
	return fmt.Sprintf(constants.MsgErrorFormat, err)
}

// FormatConfigLoadError formats a configuration loading error message.
func FormatConfigLoadError(err error) string {
	return fmt.Sprintf(constants.MsgConfigLoadError, err)
}

// FormatValidationErrors formats a list of validation errors with numbering.
//
// Parameters:
//   - errs: Slice of validation errors to format
//
// Returns:
//   - Formatted string with all validation errors numbered (1, 2, 3...),
//     or "" when errs is empty
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	builder := &strings.Builder{}
	builder.WriteString(constants.MsgConfigValidationError)

	for i, err := range errs {
		builder.WriteString(fmt.Sprintf(constants.MsgConfigValidatePrefix, fmt.Sprintf("%d. %v", i+1, err)))
	}

	return builder.String()
}
