// SPDX-License-Identifier: Apache-2.0

package jvm

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace = errorx.NewNamespace("jvm")
	NotFoundError   = ErrorsNamespace.NewType("not_found", errorx.NotFound())
	ProbeError      = ErrorsNamespace.NewType("probe_error")
	VersionError    = ErrorsNamespace.NewType("version_error")
	homeProperty    = errorx.RegisterPrintableProperty("jdk_home")
	versionProperty = errorx.RegisterPrintableProperty("java_version")
)

func NewNotFoundError(home string) *errorx.Error {
	return NotFoundError.New("no release file or bundle Info.plist found in '%s'", home).
		WithProperty(homeProperty, home)
}

func NewProbeError(cause error, home string) *errorx.Error {
	return ProbeError.New("failed to probe jdk at '%s'", home).
		WithProperty(homeProperty, home).
		WithUnderlyingErrors(cause)
}

func NewVersionError(cause error, version string) *errorx.Error {
	err := VersionError.New("invalid java version %q", version).
		WithProperty(versionProperty, version)
	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}
	return err
}
