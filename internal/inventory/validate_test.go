// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec_Validate(t *testing.T) {
	jdks := DescriptorSpec{ID: "jdk", Installations: []InstallationSpec{{Name: "jdk11", Home: "/opt/jdk11", Version: "11.0.2"}}}

	tests := []struct {
		name      string
		spec      Spec
		wantField string
	}{
		{
			name: "valid",
			spec: Spec{Nodes: []NodeSpec{{Name: "agentA", OS: OSLinux}}, Tools: []DescriptorSpec{jdks}},
		},
		{
			name: "empty",
			spec: Spec{},
		},
		{
			name:      "node without name",
			spec:      Spec{Nodes: []NodeSpec{{Labels: "linux"}}},
			wantField: "nodes[0]",
		},
		{
			name:      "duplicate node",
			spec:      Spec{Nodes: []NodeSpec{{Name: "a"}, {Name: "a"}}},
			wantField: "nodes[1]",
		},
		{
			name:      "unknown os",
			spec:      Spec{Nodes: []NodeSpec{{Name: "a", OS: "plan9"}}},
			wantField: "nodes[0]",
		},
		{
			name:      "incomplete tool location",
			spec:      Spec{Nodes: []NodeSpec{{Name: "a", ToolLocations: []ToolLocation{{Type: "jdk"}}}}},
			wantField: "nodes[0].toolLocations[0]",
		},
		{
			name:      "controller os",
			spec:      Spec{Controller: &NodeSpec{OS: "beos"}},
			wantField: "controller",
		},
		{
			name:      "descriptor without id",
			spec:      Spec{Tools: []DescriptorSpec{{Installations: jdks.Installations}}},
			wantField: "tools[0]",
		},
		{
			name:      "duplicate descriptor",
			spec:      Spec{Tools: []DescriptorSpec{jdks, jdks}},
			wantField: "tools[1]",
		},
		{
			name: "installation without name",
			spec: Spec{Tools: []DescriptorSpec{
				{ID: "jdk", Installations: []InstallationSpec{{Home: "/opt/jdk"}}},
			}},
			wantField: "tools[0].installations[0]",
		},
		{
			name: "invalid version",
			spec: Spec{Tools: []DescriptorSpec{
				{ID: "jdk", Installations: []InstallationSpec{{Name: "jdk", Version: "eleven"}}},
			}},
			wantField: "tools[0].installations[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errorx.IsOfType(err, ValidationError))

			field, ok := errorx.ExtractProperty(err, fieldProperty)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}
