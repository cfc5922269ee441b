// SPDX-License-Identifier: Apache-2.0

package inventory

// Spec is the on-disk description of a build cluster and its registered tools.
type Spec struct {
	Controller  *NodeSpec         `yaml:"controller,omitempty" toml:"controller,omitempty" json:"controller,omitempty"`
	Nodes       []NodeSpec        `yaml:"nodes" toml:"nodes" json:"nodes"`
	Tools       []DescriptorSpec  `yaml:"tools" toml:"tools" json:"tools"`
	Environment map[string]string `yaml:"environment,omitempty" toml:"environment,omitempty" json:"environment,omitempty"`
}

// NodeSpec describes one build node.
type NodeSpec struct {
	Name          string            `yaml:"name" toml:"name" json:"name"`
	Labels        string            `yaml:"labels" toml:"labels" json:"labels"`
	OS            string            `yaml:"os,omitempty" toml:"os,omitempty" json:"os,omitempty"`
	Env           map[string]string `yaml:"env,omitempty" toml:"env,omitempty" json:"env,omitempty"`
	ToolLocations []ToolLocation    `yaml:"toolLocations,omitempty" toml:"toolLocations,omitempty" json:"toolLocations,omitempty"`
}

// ToolLocation overrides the home of an installation on a single node.
type ToolLocation struct {
	Type string `yaml:"type" toml:"type" json:"type"`
	Name string `yaml:"name" toml:"name" json:"name"`
	Home string `yaml:"home" toml:"home" json:"home"`
}

// DescriptorSpec groups the installations of one tool type.
type DescriptorSpec struct {
	ID            string             `yaml:"id" toml:"id" json:"id"`
	Symbols       []string           `yaml:"symbols,omitempty" toml:"symbols,omitempty" json:"symbols,omitempty"`
	Installations []InstallationSpec `yaml:"installations" toml:"installations" json:"installations"`
}

// InstallationSpec is a globally configured tool installation.
type InstallationSpec struct {
	Name    string `yaml:"name" toml:"name" json:"name"`
	Home    string `yaml:"home" toml:"home" json:"home"`
	Version string `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
}
