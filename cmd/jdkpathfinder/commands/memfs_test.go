// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"testing"

	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	saved := common.Fs
	common.Fs = afero.NewMemMapFs()
	t.Cleanup(func() { common.Fs = saved })
	return common.Fs
}

func TestRunCmd_MemFs(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/cluster.yaml", []byte(clusterYAML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/etc/step.json", []byte(`{"nodes":["agentA"],"jdkNames":["jdk11","jdk16"]}`), 0o644))

	_, _, err := execute(t, "run", "-i", "/etc/cluster.yaml", "-w", "/ws", "/etc/step.json")
	require.NoError(t, err)

	entries, err := toolchains.Read(afero.NewBasePathFs(fs, "/ws"), "agentA-toolchains.xml")
	require.NoError(t, err)
	require.Equal(t, []toolchains.Entry{
		{JDKName: "jdk11", Home: "/home/foo/jdk11"},
		{JDKName: "jdk16", Home: "/home/foo/jdk16"},
	}, entries)
}

func TestShowCmd_MemFs(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/ws/agentA-jdk-paths.properties",
		[]byte("#paths of node jdks\n#Tue Jan 02 03:04:05 UTC 2024\njdk11=/opt/jdk11\n"), 0o644))

	stdout, _, err := execute(t, "show", "/ws/agentA-jdk-paths.properties", "-o", "json")
	require.NoError(t, err)

	var entries []toolchains.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Equal(t, []toolchains.Entry{{JDKName: "jdk11", Home: "/opt/jdk11"}}, entries)
}
