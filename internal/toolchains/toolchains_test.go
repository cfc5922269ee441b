// SPDX-License-Identifier: Apache-2.0

package toolchains

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "empty defaults to toolchains", input: "", want: FormatToolchains},
		{name: "toolchains", input: "toolchains", want: FormatToolchains},
		{name: "xml alias", input: "XML", want: FormatToolchains},
		{name: "properties", input: " properties ", want: FormatProperties},
		{name: "unknown", input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errorx.IsOfType(err, UnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		node   string
		suffix string
		format Format
		want   string
	}{
		{name: "toolchains default", node: "agentA", format: FormatToolchains, want: "agentA-toolchains.xml"},
		{name: "properties default", node: "agentA", format: FormatProperties, want: "agentA-jdk-paths.properties"},
		{name: "custom suffix", node: "linux", suffix: "-jdks.xml", format: FormatToolchains, want: "linux-jdks.xml"},
		{name: "custom suffix ignores format", node: "linux", suffix: ".txt", format: FormatProperties, want: "linux.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.node, tt.suffix, tt.format))
		})
	}
}

func TestNodeToolchains_Add(t *testing.T) {
	nt := NodeToolchains{NodeName: "agentA"}
	nt.Add("jdk11", "/home/foo/jdk11")
	nt.Add("jdk16", "/home/foo/jdk16")
	nt.Add("jdk11", "/home/foo/jdk11")

	require.Equal(t, 3, nt.Len())
	assert.Equal(t, []Entry{
		{JDKName: "jdk11", Home: "/home/foo/jdk11"},
		{JDKName: "jdk16", Home: "/home/foo/jdk16"},
		{JDKName: "jdk11", Home: "/home/foo/jdk11"},
	}, nt.Entries)
}
