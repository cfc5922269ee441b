// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/jetty-project/jdkpathfinder/internal/version"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const clusterYAML = `controller:
  labels: controller
  os: linux
environment:
  JAVA_ROOT: /opt/java
nodes:
  - name: agentA
    labels: linux jdk
    os: linux
    env:
      TOOLS: /home/foo
    toolLocations:
      - type: jdk
        name: jdk11
        home: $TOOLS/jdk11
  - name: mac-1
    labels: macos arm64
    os: darwin
tools:
  - id: jdk
    installations:
      - name: jdk11
        home: ${JAVA_ROOT}/jdk11
        version: 11.0.22
      - name: jdk16
        home: /home/foo/jdk16
        version: "16"
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.Reset)

	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_Help(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)
	require.Contains(t, stdout, "jdkpathfinder")
	require.Contains(t, stdout, "find")
	require.Contains(t, stdout, "tools")
}

func TestRoot_VersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version", "-o", "json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	require.Equal(t, version.Get(), info)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &info))
	require.Equal(t, version.Get(), info)

	_, _, err = execute(t, "version", "-o", "toml")
	require.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	inv := writeFile(t, dir, "cluster.yaml", clusterYAML)
	ws := filepath.Join(dir, "ws")
	cfg := writeFile(t, dir, "config.yaml", "inventory: "+inv+"\nworkspace: "+ws+"\nformat: properties\n")

	_, _, err := execute(t, "find", "-c", cfg, "-n", "agentA", "-j", "jdk11")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(ws, "agentA-jdk-paths.properties"))
}

func TestRoot_ConfigFileNotFound(t *testing.T) {
	_, _, err := execute(t, "nodes", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.True(t, errorx.IsOfType(err, config.NotFoundError))
}
