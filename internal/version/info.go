// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

const binaryName = "jdkpathfinder"

// Info describes the running binary.
type Info struct {
	Number    string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildMode string `json:"buildMode" yaml:"buildMode"`
	GoVersion string `json:"go" yaml:"go"`
	Platform  string `json:"platform" yaml:"platform"`
}

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
)

// String is the one line banner printed by the text format.
func (v Info) String() string {
	return fmt.Sprintf("%s %s (%s, commit %s, %s, %s)", binaryName, v.Number, v.BuildMode, v.Commit, v.GoVersion, v.Platform)
}

// Format renders the info as yaml, json or a single text line.
func (v Info) Format(format string) (string, error) {
	var (
		output []byte
		err    error
	)

	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case FormatText:
		return v.String(), nil
	case FormatJSON:
		output, err = json.Marshal(v)
	case FormatYAML:
		output, err = yaml.Marshal(v)
	default:
		return "", errorx.IllegalArgument.New("unsupported format %q, expected one of %s|%s|%s", format, FormatYAML, FormatJSON, FormatText).
			WithProperty(errorx.PropertyPayload(), "--output")
	}
	if err != nil {
		return "", errorx.IllegalFormat.Wrap(err, "failed to render version info as %s", f)
	}

	return strings.TrimRight(string(output), "\n"), nil
}

var versionInfo = Info{
	Number:    Number(),
	Commit:    Commit(),
	BuildMode: BuildMode(),
	GoVersion: runtime.Version(),
	Platform:  runtime.GOOS + "/" + runtime.GOARCH,
}

// Get returns the info of the running binary.
func Get() Info {
	return versionInfo
}
