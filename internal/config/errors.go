// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/joomcode/errorx"

var (
	ErrNamespace  = errorx.NewNamespace("config")
	NotFoundError = ErrNamespace.NewType("not_found", errorx.NotFound())
	InvalidError  = ErrNamespace.NewType("invalid")

	configFileProperty = errorx.RegisterPrintableProperty("config_file")
)

// NewNotFoundError reports a config file that cannot be read.
func NewNotFoundError(cause error, path string) *errorx.Error {
	return NotFoundError.Wrap(cause, "failed to read config file: %s", path).
		WithProperty(configFileProperty, path).
		WithProperty(errorx.PropertyPayload(), path)
}

// NewInvalidError reports a config file whose values fail validation.
func NewInvalidError(cause error, path string) *errorx.Error {
	return InvalidError.Wrap(cause, "invalid configuration in %s", path).
		WithProperty(configFileProperty, path).
		WithProperty(errorx.PropertyPayload(), path)
}
