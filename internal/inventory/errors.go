// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace  = errorx.NewNamespace("inventory")
	NotFoundError    = ErrorsNamespace.NewType("not_found", errorx.NotFound())
	ParseError       = ErrorsNamespace.NewType("parse_error")
	ValidationError  = ErrorsNamespace.NewType("validation_error")
	filePathProperty = errorx.RegisterPrintableProperty("file_path")
	fieldProperty    = errorx.RegisterPrintableProperty("field")
)

func NewNotFoundError(cause error, filePath string) *errorx.Error {
	return NotFoundError.New("failed to read inventory file '%s'", filePath).
		WithProperty(filePathProperty, filePath).
		WithProperty(errorx.PropertyPayload(), filePath).
		WithUnderlyingErrors(cause)
}

func NewParseError(cause error, filePath string) *errorx.Error {
	return ParseError.New("failed to parse inventory file '%s'", filePath).
		WithProperty(filePathProperty, filePath).
		WithUnderlyingErrors(cause)
}

func NewValidationError(field string, format string, args ...interface{}) *errorx.Error {
	return ValidationError.New(format, args...).
		WithProperty(fieldProperty, field)
}
