// SPDX-License-Identifier: Apache-2.0

package toolchains

import (
	"testing"
	"time"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) {
	t.Helper()
	saved := now
	now = func() time.Time { return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { now = saved })
}

func TestEncodeProperties(t *testing.T) {
	fixedClock(t)

	nt := NodeToolchains{NodeName: "agentA"}
	nt.Add("jdk11", "/home/foo/jdk11")
	nt.Add("jdk16", "/home/foo/jdk16")

	want := "#paths of node jdks\n" +
		"#Tue Jan 02 03:04:05 UTC 2024\n" +
		"jdk11=/home/foo/jdk11\n" +
		"jdk16=/home/foo/jdk16\n"
	assert.Equal(t, want, string(encodeProperties(nt)))
}

func TestEncodeProperties_Empty(t *testing.T) {
	fixedClock(t)

	got := encodeProperties(NodeToolchains{NodeName: "agentA"})
	assert.Equal(t, "#paths of node jdks\n#Tue Jan 02 03:04:05 UTC 2024\n", string(got))
}

func TestEscapeProperty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isKey bool
		want  string
	}{
		{name: "plain", input: "/usr/lib/jvm/jdk11", want: "/usr/lib/jvm/jdk11"},
		{name: "key spaces", input: "jdk 11", isKey: true, want: `jdk\ 11`},
		{name: "value inner space", input: "/opt/my jdk", want: "/opt/my jdk"},
		{name: "value leading space", input: " /opt", want: `\ /opt`},
		{name: "windows path", input: `C:\jdk`, want: `C\:\\jdk`},
		{name: "separators and comments", input: "a=b#c!d", want: `a\=b\#c\!d`},
		{name: "control characters", input: "a\tb\nc", want: `a\tb\nc`},
		{name: "latin", input: "/opt/é", want: `/opt/\u00E9`},
		{name: "surrogate pair", input: "😀", want: `\uD83D\uDE00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeProperty(tt.input, tt.isKey))
		})
	}
}

func TestDecodeProperties_RoundTrip(t *testing.T) {
	fixedClock(t)

	nt := NodeToolchains{NodeName: "win"}
	nt.Add("jdk 11", `C:\Program Files\Java\jdk-11`)
	nt.Add("jdk=17", " /opt/é/jdk17")
	nt.Add("jdk😀", "/opt/#!:")

	got, err := decodeProperties(encodeProperties(nt))
	require.NoError(t, err)
	assert.Equal(t, nt.Entries, got)
}

func TestDecodeProperties(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Entry
		wantErr bool
	}{
		{
			name:  "comments and blank lines",
			input: "# comment\n! other\n\n  jdk11=/a\n",
			want:  []Entry{{JDKName: "jdk11", Home: "/a"}},
		},
		{
			name:  "colon and whitespace separators",
			input: "jdk11:/a\njdk16 /b\njdk17 = /c\n",
			want: []Entry{
				{JDKName: "jdk11", Home: "/a"},
				{JDKName: "jdk16", Home: "/b"},
				{JDKName: "jdk17", Home: "/c"},
			},
		},
		{
			name:  "continuation",
			input: "jdk11=/opt/\\\n    java/jdk11\n",
			want:  []Entry{{JDKName: "jdk11", Home: "/opt/java/jdk11"}},
		},
		{
			name:  "key without value",
			input: "jdk11\n",
			want:  []Entry{{JDKName: "jdk11", Home: ""}},
		},
		{
			name:    "malformed unicode escape",
			input:   "jdk11=/opt/\\u00\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeProperties([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errorx.IsOfType(err, errorx.IllegalFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
