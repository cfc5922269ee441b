// SPDX-License-Identifier: Apache-2.0

package pathfinder

import (
	"strings"

	"github.com/jetty-project/jdkpathfinder/internal/host"
)

// controllerAliases are the names that select the controller when no node is
// registered under them.
var controllerAliases = map[string]bool{
	"master":   true,
	"built-in": true,
}

// ResolveNode finds the node for name: an exact name match wins, then the
// controller aliases, then the first node whose label string contains name.
// When several nodes carry a matching label the first one in the cluster's
// enumeration order is used. Returns nil when nothing matches.
func ResolveNode(cluster host.ClusterState, name string) host.Node {
	if cluster == nil {
		return nil
	}

	if node := cluster.FindNodeByName(name); node != nil {
		return node
	}

	if controllerAliases[name] {
		if cp, ok := cluster.(host.ControllerProvider); ok {
			if c := cp.Controller(); c != nil {
				return c
			}
		}
	}

	for _, node := range cluster.ListNodesWithLabels() {
		if node != nil && strings.Contains(node.LabelString(), name) {
			return node
		}
	}

	return nil
}
