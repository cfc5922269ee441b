// SPDX-License-Identifier: Apache-2.0

// Package toolchains holds the per-node collection of resolved JDK homes and
// serializes it either as a Java properties file or as a Maven toolchains
// descriptor.
package toolchains

import (
	"strings"
)

// Format selects the output document shape.
type Format string

const (
	FormatToolchains Format = "toolchains"
	FormatProperties Format = "properties"
)

const (
	// ToolchainsSuffix is appended to the node name when no suffix is configured
	// for the toolchains format.
	ToolchainsSuffix = "-toolchains.xml"
	// PropertiesSuffix is the properties format counterpart of ToolchainsSuffix.
	PropertiesSuffix = "-jdk-paths.properties"
	// PropertiesHeader is the comment written at the top of properties files.
	PropertiesHeader = "paths of node jdks"
	// ToolchainTypeJDK is the toolchain type of every descriptor entry.
	ToolchainTypeJDK = "jdk"
)

// SupportedFormats lists the formats accepted by ParseFormat.
func SupportedFormats() []Format {
	return []Format{FormatToolchains, FormatProperties}
}

// ParseFormat parses a format name. An empty name selects FormatToolchains.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatToolchains), "xml":
		return FormatToolchains, nil
	case string(FormatProperties):
		return FormatProperties, nil
	default:
		return "", NewUnknownFormatError(name)
	}
}

// DefaultSuffix returns the file name suffix used when none is configured.
func (f Format) DefaultSuffix() string {
	if f == FormatProperties {
		return PropertiesSuffix
	}
	return ToolchainsSuffix
}

// FileName returns the workspace relative output file name for a node.
func FileName(nodeName string, suffix string, format Format) string {
	if suffix == "" {
		suffix = format.DefaultSuffix()
	}
	return nodeName + suffix
}

// Entry is one resolved JDK.
type Entry struct {
	JDKName string `yaml:"jdkName" json:"jdkName"`
	Home    string `yaml:"home" json:"home"`
}

// NodeToolchains collects the JDK homes resolved for one node in request order.
type NodeToolchains struct {
	NodeName string  `yaml:"node" json:"node"`
	Entries  []Entry `yaml:"entries" json:"entries"`
}

// Add appends an entry. Duplicates are kept.
func (nt *NodeToolchains) Add(jdkName string, home string) {
	nt.Entries = append(nt.Entries, Entry{JDKName: jdkName, Home: home})
}

// Len returns the number of entries.
func (nt *NodeToolchains) Len() int {
	return len(nt.Entries)
}
