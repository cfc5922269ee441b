// SPDX-License-Identifier: Apache-2.0

// Package inventory is a file backed model of a build cluster: its nodes with
// their labels and per-node tool locations, and the registered tool
// installations. It implements host.ClusterState and host.ToolRegistry.
package inventory

import (
	"path"
	"strings"

	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/rs/zerolog"
)

// controllerName is the name the controller answers to.
const controllerName = "built-in"

// macBundleHome is the home directory of a JDK inside a macOS bundle.
const macBundleHome = "Contents/Home"

// Inventory answers node and tool queries from a Spec.
type Inventory struct {
	controller  *Node
	nodes       []*Node
	byName      map[string]*Node
	descriptors []*descriptor
	env         host.EnvVars
	logger      *zerolog.Logger
}

// Option customizes an Inventory.
type Option func(*Inventory)

// WithLogger sets the logger used for adaptation diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(inv *Inventory) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// New validates spec and builds an Inventory from it.
func New(spec Spec, opts ...Option) (*Inventory, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	nop := zerolog.Nop()
	inv := &Inventory{
		byName: make(map[string]*Node, len(spec.Nodes)),
		env:    host.EnvVars{}.Overlay(spec.Environment),
		logger: &nop,
	}
	for _, opt := range opts {
		opt(inv)
	}

	if spec.Controller != nil {
		c := *spec.Controller
		if c.Name == "" {
			c.Name = controllerName
		}
		inv.controller = newNode(c)
	}

	for _, ns := range spec.Nodes {
		n := newNode(ns)
		inv.nodes = append(inv.nodes, n)
		inv.byName[n.name] = n
	}

	for _, ds := range spec.Tools {
		d := &descriptor{id: ds.ID, symbols: append([]string(nil), ds.Symbols...)}
		for _, is := range ds.Installations {
			d.installations = append(d.installations, &Installation{
				name:     is.Name,
				toolType: ds.ID,
				home:     is.Home,
				version:  is.Version,
			})
		}
		inv.descriptors = append(inv.descriptors, d)
	}

	return inv, nil
}

// FindNodeByName returns the agent registered under name, or nil.
func (inv *Inventory) FindNodeByName(name string) host.Node {
	if n, ok := inv.byName[name]; ok {
		return n
	}
	return nil
}

// ListNodesWithLabels returns the agents in inventory order.
func (inv *Inventory) ListNodesWithLabels() []host.Node {
	nodes := make([]host.Node, 0, len(inv.nodes))
	for _, n := range inv.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Controller returns the controller node, or nil when the inventory has none.
func (inv *Inventory) Controller() host.Node {
	if inv.controller == nil {
		return nil
	}
	return inv.controller
}

// Environment returns the controller-wide environment.
func (inv *Inventory) Environment() host.EnvVars {
	return inv.env
}

// ListToolDescriptorsOfType returns descriptors whose id or one of whose symbols equals kind.
func (inv *Inventory) ListToolDescriptorsOfType(kind string) []host.ToolDescriptor {
	var out []host.ToolDescriptor
	for _, d := range inv.descriptors {
		if d.denotes(kind) {
			out = append(out, d)
		}
	}
	return out
}

// AdaptToolToNode applies the node's tool location override, expands node
// environment references and, on macOS nodes, points the home at the JDK inside
// the bundle. A nil node leaves the installation as configured.
func (inv *Inventory) AdaptToolToNode(tool host.ToolInstallation, node host.Node, listener host.TaskListener) (host.ToolInstallation, error) {
	if tool == nil || node == nil {
		return tool, nil
	}

	home := tool.Home()
	if n := inv.lookup(node); n != nil {
		if override, ok := n.ToolHome(tool.Type(), tool.Name()); ok {
			inv.logger.Debug().
				Str("node", n.name).
				Str("tool", tool.Name()).
				Str("home", override).
				Msg("Using node specific tool location")
			home = override
		}
		home = n.env.Expand(home)
	}

	if node.OS() == OSDarwin && home != "" && !strings.HasSuffix(path.Clean(home), "/"+macBundleHome) {
		home = path.Join(home, macBundleHome)
	}

	return installationWithHome(tool, home), nil
}

// AdaptToolToEnvironment expands $VAR and ${VAR} references in the home.
func (inv *Inventory) AdaptToolToEnvironment(tool host.ToolInstallation, env host.EnvVars) host.ToolInstallation {
	if tool == nil {
		return nil
	}
	return installationWithHome(tool, env.Expand(tool.Home()))
}

// Installations returns every installation of the given kind in inventory order.
func (inv *Inventory) Installations(kind string) []*Installation {
	var out []*Installation
	for _, d := range inv.descriptors {
		if !d.denotes(kind) {
			continue
		}
		for _, t := range d.installations {
			out = append(out, t.(*Installation))
		}
	}
	return out
}

// Nodes returns the agents followed by the controller, if any.
func (inv *Inventory) Nodes() []*Node {
	out := append([]*Node(nil), inv.nodes...)
	if inv.controller != nil {
		out = append(out, inv.controller)
	}
	return out
}

func (inv *Inventory) lookup(node host.Node) *Node {
	if n, ok := node.(*Node); ok {
		return n
	}
	if n, ok := inv.byName[node.Name()]; ok {
		return n
	}
	if inv.controller != nil && inv.controller.name == node.Name() {
		return inv.controller
	}
	return nil
}

func installationWithHome(tool host.ToolInstallation, home string) host.ToolInstallation {
	if i, ok := tool.(*Installation); ok {
		return i.withHome(home)
	}
	return newInstallation(tool.Type(), tool.Name(), home)
}
