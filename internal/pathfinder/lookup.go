// SPDX-License-Identifier: Apache-2.0

package pathfinder

import (
	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
)

// ToolKindJDK is the descriptor id or symbol of JDK installations.
const ToolKindJDK = "jdk"

// ToolRecord is the outcome of looking up one JDK on one node. An empty Home
// means the JDK could not be found.
type ToolRecord struct {
	JDKName string
	Home    string
}

// Found reports whether the record carries a home.
func (r ToolRecord) Found() bool {
	return r.Home != ""
}

// FindHome scans every JDK descriptor for installations named jdkName, adapts
// them to node and then to env and returns the first non-empty home. An empty
// string is returned when no installation resolves.
func FindHome(registry host.ToolRegistry, jdkName string, node host.Node, env host.EnvVars, listener host.TaskListener) (string, error) {
	for _, desc := range registry.ListToolDescriptorsOfType(ToolKindJDK) {
		for _, tool := range desc.Installations() {
			if tool == nil || tool.Name() != jdkName {
				continue
			}

			adapted, err := registry.AdaptToolToNode(tool, node, listener)
			if err != nil {
				return "", NewAdaptationError(err, jdkName, nodeName(node))
			}
			if adapted == nil {
				continue
			}

			adapted = registry.AdaptToolToEnvironment(adapted, env)
			if adapted == nil {
				continue
			}

			if home := adapted.Home(); home != "" {
				return home, nil
			}
		}
	}

	return "", nil
}

// Accumulate keeps the found records of one node in the order given.
func Accumulate(nodeName string, records []ToolRecord) toolchains.NodeToolchains {
	nt := toolchains.NodeToolchains{NodeName: nodeName, Entries: []toolchains.Entry{}}
	for _, r := range records {
		if r.Found() {
			nt.Add(r.JDKName, r.Home)
		}
	}
	return nt
}

func nodeName(node host.Node) string {
	if node == nil {
		return ""
	}
	return node.Name()
}
