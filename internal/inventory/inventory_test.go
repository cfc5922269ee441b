// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCluster(t *testing.T) *Inventory {
	t.Helper()

	spec := Spec{
		Controller:  &NodeSpec{Labels: "controller", OS: OSLinux},
		Environment: map[string]string{"JAVA_ROOT": "/opt/java"},
		Nodes: []NodeSpec{
			{
				Name:   "agentA",
				Labels: "linux jdk",
				OS:     OSLinux,
				Env:    map[string]string{"TOOLS": "/home/foo"},
				ToolLocations: []ToolLocation{
					{Type: "jdk", Name: "jdk11", Home: "$TOOLS/jdk11"},
				},
			},
			{Name: "mac-1", Labels: "macos arm64", OS: OSDarwin},
			{Name: "mac-2", Labels: "macos x86", OS: OSDarwin, ToolLocations: []ToolLocation{
				{Type: "jdk", Name: "jdk16", Home: "/Library/Java/jdk16.jdk/Contents/Home"},
			}},
		},
		Tools: []DescriptorSpec{
			{
				ID:      "jdk",
				Symbols: []string{"java"},
				Installations: []InstallationSpec{
					{Name: "jdk11", Home: "${JAVA_ROOT}/jdk11", Version: "11.0.22"},
					{Name: "jdk16", Home: "/home/foo/jdk16", Version: "16"},
				},
			},
			{
				ID:            "maven",
				Installations: []InstallationSpec{{Name: "mvn3", Home: "/opt/maven"}},
			},
		},
	}

	inv, err := New(spec)
	require.NoError(t, err)
	return inv
}

func TestInventory_Nodes(t *testing.T) {
	inv := loadCluster(t)

	require.NotNil(t, inv.FindNodeByName("agentA"))
	assert.Equal(t, "linux jdk", inv.FindNodeByName("agentA").LabelString())
	assert.Nil(t, inv.FindNodeByName("agent"), "lookup by name is exact")
	assert.Nil(t, inv.FindNodeByName(controllerName), "the controller is not an agent")

	var names []string
	for _, n := range inv.ListNodesWithLabels() {
		names = append(names, n.Name())
	}
	assert.Equal(t, []string{"agentA", "mac-1", "mac-2"}, names)

	require.NotNil(t, inv.Controller())
	assert.Equal(t, controllerName, inv.Controller().Name())
	assert.Len(t, inv.Nodes(), 4)
}

func TestInventory_WithoutController(t *testing.T) {
	inv, err := New(Spec{Nodes: []NodeSpec{{Name: "a"}}})
	require.NoError(t, err)

	assert.Nil(t, inv.Controller())
	assert.Len(t, inv.Nodes(), 1)
}

func TestInventory_ListToolDescriptorsOfType(t *testing.T) {
	inv := loadCluster(t)

	tests := []struct {
		kind string
		want int
	}{
		{kind: "jdk", want: 1},
		{kind: "java", want: 1},
		{kind: "maven", want: 1},
		{kind: "ant", want: 0},
		{kind: "jd", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Len(t, inv.ListToolDescriptorsOfType(tt.kind), tt.want)
		})
	}

	desc := inv.ListToolDescriptorsOfType("jdk")[0]
	assert.Equal(t, "jdk", desc.ID())
	assert.Equal(t, []string{"java"}, desc.Symbols())
	require.Len(t, desc.Installations(), 2)
	assert.Equal(t, "jdk11", desc.Installations()[0].Name())
	assert.Equal(t, "jdk", desc.Installations()[0].Type())
}

func TestInventory_AdaptToolToNode(t *testing.T) {
	inv := loadCluster(t)
	jdk11 := inv.Installations("jdk")[0]
	jdk16 := inv.Installations("jdk")[1]

	tests := []struct {
		name string
		tool host.ToolInstallation
		node host.Node
		want string
	}{
		{name: "node location expands node env", tool: jdk11, node: inv.FindNodeByName("agentA"), want: "/home/foo/jdk11"},
		{name: "no location keeps global home", tool: jdk16, node: inv.FindNodeByName("agentA"), want: "/home/foo/jdk16"},
		{name: "unknown refs survive node adaptation", tool: jdk11, node: inv.Controller(), want: "${JAVA_ROOT}/jdk11"},
		{name: "darwin bundle", tool: jdk16, node: inv.FindNodeByName("mac-1"), want: "/home/foo/jdk16/Contents/Home"},
		{name: "darwin bundle already pointing at home", tool: jdk16, node: inv.FindNodeByName("mac-2"), want: "/Library/Java/jdk16.jdk/Contents/Home"},
		{name: "node outside the inventory", tool: jdk16, node: NewNode("ghost", "", OSDarwin), want: "/home/foo/jdk16/Contents/Home"},
		{name: "nil node", tool: jdk16, node: nil, want: "/home/foo/jdk16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapted, err := inv.AdaptToolToNode(tt.tool, tt.node, nil)
			require.NoError(t, err)
			require.NotNil(t, adapted)
			assert.Equal(t, tt.want, adapted.Home())
			assert.Equal(t, tt.tool.Name(), adapted.Name())
		})
	}

	assert.Equal(t, "${JAVA_ROOT}/jdk11", jdk11.Home(), "adaptation must not modify the registered installation")
}

func TestInventory_AdaptToolToNode_ForeignTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inv := loadCluster(t)

	tool := host.NewMockToolInstallation(ctrl)
	tool.EXPECT().Name().Return("jdk11").AnyTimes()
	tool.EXPECT().Type().Return("jdk").AnyTimes()
	tool.EXPECT().Home().Return("/opt/other/jdk11").AnyTimes()

	node := host.NewMockNode(ctrl)
	node.EXPECT().Name().Return("agentA").AnyTimes()
	node.EXPECT().OS().Return(OSLinux).AnyTimes()

	adapted, err := inv.AdaptToolToNode(tool, node, nil)
	require.NoError(t, err)
	assert.Equal(t, "/home/foo/jdk11", adapted.Home(), "nodes are matched by name")
	assert.Equal(t, "jdk11", adapted.Name())
	assert.Equal(t, "jdk", adapted.Type())
}

func TestInventory_AdaptToolToEnvironment(t *testing.T) {
	inv := loadCluster(t)
	jdk11 := inv.Installations("jdk")[0]

	tests := []struct {
		name string
		env  host.EnvVars
		want string
	}{
		{name: "inventory environment", env: inv.Environment(), want: "/opt/java/jdk11"},
		{name: "run environment wins", env: inv.Environment().Overlay(host.EnvVars{"JAVA_ROOT": "/ci/java"}), want: "/ci/java/jdk11"},
		{name: "unresolved", env: host.EnvVars{}, want: "${JAVA_ROOT}/jdk11"},
		{name: "nil env", env: nil, want: "${JAVA_ROOT}/jdk11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapted := inv.AdaptToolToEnvironment(jdk11, tt.env)
			require.NotNil(t, adapted)
			assert.Equal(t, tt.want, adapted.Home())
		})
	}

	assert.Nil(t, inv.AdaptToolToEnvironment(nil, inv.Environment()))
}

func TestInventory_DarwinAfterEnvironment(t *testing.T) {
	inv := loadCluster(t)
	jdk11 := inv.Installations("jdk")[0]

	adapted, err := inv.AdaptToolToNode(jdk11, inv.FindNodeByName("mac-1"), nil)
	require.NoError(t, err)

	adapted = inv.AdaptToolToEnvironment(adapted, inv.Environment())
	assert.Equal(t, "/opt/java/jdk11/Contents/Home", adapted.Home())
}
