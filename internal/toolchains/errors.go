// SPDX-License-Identifier: Apache-2.0

package toolchains

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace  = errorx.NewNamespace("toolchains")
	UnknownFormat    = ErrorsNamespace.NewType("unknown_format")
	EncodeError      = ErrorsNamespace.NewType("encode_error")
	DecodeError      = ErrorsNamespace.NewType("decode_error")
	DeleteError      = ErrorsNamespace.NewType("delete_error")
	WriteError       = ErrorsNamespace.NewType("write_error")
	ReadError        = ErrorsNamespace.NewType("read_error")
	filePathProperty = errorx.RegisterPrintableProperty("file_path")
	formatProperty   = errorx.RegisterPrintableProperty("format")
	nodeNameProperty = errorx.RegisterPrintableProperty("node_name")
)

const (
	unknownFormatMsg = "unknown output format %q, supported formats are %v"
	encodeErrorMsg   = "failed to encode %s document for node '%s'"
	decodeErrorMsg   = "failed to decode '%s'"
	deleteErrorMsg   = "failed to delete existing file '%s'"
	writeErrorMsg    = "failed to write file '%s'"
	readErrorMsg     = "failed to read file '%s'"
)

func NewUnknownFormatError(format string) *errorx.Error {
	return UnknownFormat.New(unknownFormatMsg, format, SupportedFormats()).
		WithProperty(formatProperty, format)
}

func NewEncodeError(cause error, format Format, nodeName string) *errorx.Error {
	return EncodeError.New(encodeErrorMsg, format, nodeName).
		WithProperty(formatProperty, string(format)).
		WithProperty(nodeNameProperty, nodeName).
		WithUnderlyingErrors(cause)
}

func NewDecodeError(cause error, filePath string) *errorx.Error {
	return DecodeError.New(decodeErrorMsg, filePath).
		WithProperty(filePathProperty, filePath).
		WithUnderlyingErrors(cause)
}

func NewDeleteError(cause error, filePath string) *errorx.Error {
	return DeleteError.New(deleteErrorMsg, filePath).
		WithProperty(filePathProperty, filePath).
		WithUnderlyingErrors(cause)
}

func NewWriteError(cause error, filePath string) *errorx.Error {
	return WriteError.New(writeErrorMsg, filePath).
		WithProperty(filePathProperty, filePath).
		WithUnderlyingErrors(cause)
}

func NewReadError(cause error, filePath string) *errorx.Error {
	return ReadError.New(readErrorMsg, filePath).
		WithProperty(filePathProperty, filePath).
		WithUnderlyingErrors(cause)
}
