// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joomcode/errorx"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Encoding is the serialization of an inventory file.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
	EncodingJSON Encoding = "json"
)

// EncodingFor derives the encoding from a file extension.
func EncodingFor(filePath string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return EncodingYAML, nil
	case ".toml":
		return EncodingTOML, nil
	case ".json":
		return EncodingJSON, nil
	default:
		return "", errorx.IllegalArgument.New("unsupported inventory file extension %q, expected one of [.yaml .yml .toml .json]",
			filepath.Ext(filePath)).WithProperty(filePathProperty, filePath)
	}
}

// Parse decodes an inventory document.
func Parse(data []byte, encoding Encoding) (Spec, error) {
	var spec Spec
	switch encoding {
	case EncodingYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
			return Spec{}, err
		}
	case EncodingTOML:
		md, err := toml.Decode(string(data), &spec)
		if err != nil {
			return Spec{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Spec{}, errorx.IllegalFormat.New("unknown inventory keys %v", undecoded)
		}
	case EncodingJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&spec); err != nil {
			return Spec{}, err
		}
	default:
		return Spec{}, errorx.IllegalArgument.New("unsupported inventory encoding %q", encoding)
	}
	return spec, nil
}

// LoadFile reads, parses and validates the inventory stored at filePath.
func LoadFile(fs afero.Fs, filePath string, opts ...Option) (*Inventory, error) {
	encoding, err := EncodingFor(filePath)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return nil, NewNotFoundError(err, filePath)
	}

	spec, err := Parse(data, encoding)
	if err != nil {
		return nil, NewParseError(err, filePath)
	}

	inv, err := New(spec, opts...)
	if err != nil {
		return nil, errorx.Decorate(err, "invalid inventory file '%s'", filePath)
	}
	return inv, nil
}
