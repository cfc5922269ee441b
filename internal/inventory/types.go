// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"github.com/jetty-project/jdkpathfinder/internal/host"
)

const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Node is a build node known to the inventory.
type Node struct {
	name          string
	labels        string
	os            string
	env           host.EnvVars
	toolLocations []ToolLocation
}

// NewNode returns a node without environment or tool locations.
func NewNode(name string, labels string, os string) *Node {
	return &Node{name: name, labels: labels, os: os, env: host.EnvVars{}}
}

func newNode(spec NodeSpec) *Node {
	n := NewNode(spec.Name, spec.Labels, spec.OS)
	for k, v := range spec.Env {
		n.env[k] = v
	}
	n.toolLocations = append(n.toolLocations, spec.ToolLocations...)
	return n
}

func (n *Node) Name() string        { return n.name }
func (n *Node) LabelString() string { return n.labels }
func (n *Node) OS() string          { return n.os }

// Env returns the node level environment.
func (n *Node) Env() host.EnvVars { return n.env }

// ToolHome returns the node specific home of the installation identified by
// toolType and name.
func (n *Node) ToolHome(toolType string, name string) (string, bool) {
	for _, loc := range n.toolLocations {
		if loc.Type == toolType && loc.Name == name {
			return loc.Home, true
		}
	}
	return "", false
}

// Installation is a tool installation bound to a descriptor type.
type Installation struct {
	name     string
	toolType string
	home     string
	version  string
}

// newInstallation returns an installation of the given type.
func newInstallation(toolType string, name string, home string) *Installation {
	return &Installation{name: name, toolType: toolType, home: home}
}

func (i *Installation) Name() string { return i.name }
func (i *Installation) Type() string { return i.toolType }
func (i *Installation) Home() string { return i.home }

// Version returns the declared version, possibly empty.
func (i *Installation) Version() string { return i.version }

// withHome returns a copy of i pointing at home.
func (i *Installation) withHome(home string) *Installation {
	c := *i
	c.home = home
	return &c
}

type descriptor struct {
	id            string
	symbols       []string
	installations []host.ToolInstallation
}

func (d *descriptor) ID() string                             { return d.id }
func (d *descriptor) Symbols() []string                      { return d.symbols }
func (d *descriptor) Installations() []host.ToolInstallation { return d.installations }

func (d *descriptor) denotes(kind string) bool {
	if d.id == kind {
		return true
	}
	for _, s := range d.symbols {
		if s == kind {
			return true
		}
	}
	return false
}
