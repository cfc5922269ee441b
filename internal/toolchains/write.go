// SPDX-License-Identifier: Apache-2.0

package toolchains

import (
	"strings"

	"github.com/joomcode/errorx"
	"github.com/spf13/afero"
)

const outputFilePerm = 0o644

// Encode renders nt in the given format.
func Encode(nt NodeToolchains, format Format) ([]byte, error) {
	switch format {
	case FormatProperties:
		return encodeProperties(nt), nil
	case FormatToolchains:
		data, err := encodeToolchains(nt)
		if err != nil {
			return nil, NewEncodeError(err, format, nt.NodeName)
		}
		return data, nil
	default:
		return nil, NewUnknownFormatError(string(format))
	}
}

// Write serializes nt into <nodeName><suffix> at the root of the workspace and
// returns the file name. A file already present at that path is deleted first,
// so the result never carries entries of a previous run.
func Write(workspace afero.Fs, nt NodeToolchains, format Format, suffix string) (string, error) {
	if workspace == nil {
		return "", errorx.IllegalArgument.New("workspace is required")
	}

	name := FileName(nt.NodeName, suffix, format)
	payload, err := Encode(nt, format)
	if err != nil {
		return "", err
	}

	exists, err := afero.Exists(workspace, name)
	if err != nil {
		return "", NewDeleteError(err, name)
	}
	if exists {
		if err = workspace.Remove(name); err != nil {
			return "", NewDeleteError(err, name)
		}
	}

	if err = afero.WriteFile(workspace, name, payload, outputFilePerm); err != nil {
		return "", NewWriteError(err, name)
	}

	return name, nil
}

// Read loads the entries of a file previously produced by Write. The format is
// derived from the file extension: ".properties" files are read as properties,
// everything else as a toolchains document.
func Read(workspace afero.Fs, name string) ([]Entry, error) {
	data, err := afero.ReadFile(workspace, name)
	if err != nil {
		return nil, NewReadError(err, name)
	}

	if strings.HasSuffix(name, ".properties") {
		entries, err := decodeProperties(data)
		if err != nil {
			return nil, NewDecodeError(err, name)
		}
		return entries, nil
	}

	doc, err := decodeToolchains(data)
	if err != nil {
		return nil, NewDecodeError(err, name)
	}
	return doc.Entries(), nil
}
