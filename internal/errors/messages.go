// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"fmt"
	"strings"
)

// FormatUserError converts an error into a message suitable for CLI output.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	switch GetErrorType(err) {
	case ErrorTypeTargetMissing:
		return fmt.Sprintf("%v. The page may not declare a region with that ID.", err)
	case ErrorTypePage:
		return fmt.Sprintf("could not load page: %v", unwrapMessage(err))
	case ErrorTypeValidation:
		return err.Error()
	default:
		return err.Error()
	}
}

func unwrapMessage(err error) string {
	msg := err.Error()
	// Trim repeated "page <path>:" prefixes from nested wrapping
	if idx := strings.LastIndex(msg, ": "); idx > 0 && strings.Count(msg, "page ") > 1 {
		return msg[idx+2:]
	}
	return msg
}
