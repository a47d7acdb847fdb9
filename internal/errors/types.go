// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeTargetMissing
	ErrorTypePage
	ErrorTypeValidation
)

// TargetError reports a target region that never appeared in the document.
type TargetError struct {
	TargetID string
	Attempts int
}

func (e *TargetError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("target region %q not found after %d attempts", e.TargetID, e.Attempts)
	}
	return fmt.Sprintf("target region %q not found", e.TargetID)
}

func (e *TargetError) Is(target error) bool {
	t, ok := target.(*TargetError)
	if !ok {
		return false
	}
	return t.TargetID == "" || t.TargetID == e.TargetID
}

// PageError wraps a failure to read or parse a page file.
type PageError struct {
	Path string
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %s: %v", e.Path, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// ValidationError reports invalid page structure or configuration values.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// IsTargetMissing returns true if err is a TargetError.
func IsTargetMissing(err error) bool {
	var te *TargetError
	return errors.As(err, &te)
}

// IsPageError returns true if err is a PageError.
func IsPageError(err error) bool {
	var pe *PageError
	return errors.As(err, &pe)
}

// IsValidationError returns true if err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GetErrorType classifies err for message formatting.
func GetErrorType(err error) ErrorType {
	switch {
	case IsTargetMissing(err):
		return ErrorTypeTargetMissing
	case IsPageError(err):
		return ErrorTypePage
	case IsValidationError(err):
		return ErrorTypeValidation
	default:
		return ErrorTypeUnknown
	}
}
