// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Number)
	assert.NotContains(t, info.Number, "\n")
	assert.Equal(t, Commit(), info.Commit)
	assert.Equal(t, "dev", info.BuildMode)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfo_Format(t *testing.T) {
	info := Info{Number: "0.1.0", Commit: "abc123", BuildMode: "dev", GoVersion: "go1.25.2", Platform: "linux/amd64"}

	out, err := info.Format("json")
	require.NoError(t, err)
	var fromJSON Info
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, info, fromJSON)

	out, err = info.Format("YAML")
	require.NoError(t, err)
	var fromYAML Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, info, fromYAML)

	out, err = info.Format("text")
	require.NoError(t, err)
	assert.Equal(t, "jdkpathfinder 0.1.0 (dev, commit abc123, go1.25.2, linux/amd64)", out)

	_, err = info.Format("xml")
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
}
