// SPDX-License-Identifier: Apache-2.0

// Package host defines the collaborators the JDK path resolver needs from the
// build cluster it runs in: the node registry, the tool-installation registry and
// the build log of the invoking job.
//
// Implementations are injected; nothing in this module reaches for a process-wide
// host instance.
package host

//go:generate mockgen -source=host.go -destination=mock_host.go -package=host

// Node is a named execution host in the build cluster.
type Node interface {
	// Name returns the unique node name.
	Name() string
	// LabelString returns the space separated labels assigned to the node.
	LabelString() string
	// OS returns the operating system family of the node (linux, darwin, windows).
	OS() string
}

// ClusterState exposes the nodes of the build cluster.
type ClusterState interface {
	// FindNodeByName returns the node registered under the exact name, or nil.
	FindNodeByName(name string) Node
	// ListNodesWithLabels returns every agent node in enumeration order.
	ListNodesWithLabels() []Node
}

// ControllerProvider is implemented by cluster states that also expose the
// controller (the "built-in" node).
type ControllerProvider interface {
	Controller() Node
}

// ToolInstallation is a named reference to an installed tool.
type ToolInstallation interface {
	// Name returns the installation name as configured by the administrator.
	Name() string
	// Type returns the id of the descriptor the installation belongs to.
	Type() string
	// Home returns the installation directory; empty when unknown.
	Home() string
}

// ToolDescriptor groups the installations of one tool type.
type ToolDescriptor interface {
	ID() string
	Symbols() []string
	Installations() []ToolInstallation
}

// ToolRegistry gives access to the registered tool installations and their
// node and environment specific variants.
type ToolRegistry interface {
	// ListToolDescriptorsOfType returns the descriptors whose id or symbols denote kind.
	ListToolDescriptorsOfType(kind string) []ToolDescriptor
	// AdaptToolToNode returns the variant of tool that applies on node. A nil node
	// must be tolerated.
	AdaptToolToNode(tool ToolInstallation, node Node, listener TaskListener) (ToolInstallation, error)
	// AdaptToolToEnvironment returns the variant of tool with env references expanded.
	AdaptToolToEnvironment(tool ToolInstallation, env EnvVars) ToolInstallation
}

// TaskListener receives the build log lines of the invoking job.
type TaskListener interface {
	Info(msg string)
	Warn(msg string)
}
