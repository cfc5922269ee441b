// SPDX-License-Identifier: Apache-2.0

package host

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVars_Expand(t *testing.T) {
	env := EnvVars{
		"JAVA_ROOT": "/opt/java",
		"jdk.dir":   "jdk-17",
		"EMPTY":     "",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no reference", input: "/usr/lib/jvm/jdk11", want: "/usr/lib/jvm/jdk11"},
		{name: "empty", input: "", want: ""},
		{name: "bare reference", input: "$JAVA_ROOT/jdk11", want: "/opt/java/jdk11"},
		{name: "braced reference", input: "${JAVA_ROOT}/jdk11", want: "/opt/java/jdk11"},
		{name: "dotted braced reference", input: "${JAVA_ROOT}/${jdk.dir}", want: "/opt/java/jdk-17"},
		{name: "unknown reference is kept", input: "$MISSING/jdk11", want: "$MISSING/jdk11"},
		{name: "unknown braced reference is kept", input: "${MISSING}/jdk11", want: "${MISSING}/jdk11"},
		{name: "empty value", input: "/x${EMPTY}/y", want: "/x/y"},
		{name: "lone dollar", input: "/opt/$/jdk", want: "/opt/$/jdk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, env.Expand(tt.input))
		})
	}
}

func TestEnvVars_Overlay(t *testing.T) {
	base := EnvVars{"A": "1", "B": "2"}
	merged := base.Overlay(EnvVars{"B": "3", "C": "4"})

	assert.Equal(t, EnvVars{"A": "1", "B": "3", "C": "4"}, merged)
	assert.Equal(t, EnvVars{"A": "1", "B": "2"}, base, "overlay must not modify the receiver")

	var empty EnvVars
	assert.Equal(t, EnvVars{"X": "y"}, empty.Overlay(EnvVars{"X": "y"}))
}

func TestFromEnviron(t *testing.T) {
	env := FromEnviron([]string{"HOME=/home/ci", "EMPTY=", "BROKEN", "=nokey", "EQ=a=b"})

	assert.Equal(t, EnvVars{"HOME": "/home/ci", "EMPTY": "", "EQ": "a=b"}, env)
}

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    EnvVars
		wantErr bool
	}{
		{name: "valid", pairs: []string{"JAVA_ROOT=/opt/java", " K =v"}, want: EnvVars{"JAVA_ROOT": "/opt/java", "K": "v"}},
		{name: "nil", pairs: nil, want: EnvVars{}},
		{name: "missing separator", pairs: []string{"JAVA_ROOT"}, wantErr: true},
		{name: "missing key", pairs: []string{"=value"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
