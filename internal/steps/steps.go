// SPDX-License-Identifier: Apache-2.0

// Package steps exposes the JDK path resolver in the two shapes a build host
// invokes it with: a freestyle build step and a pipeline step. Both shapes take
// the same parameters and delegate to pathfinder.Finder.
package steps

import (
	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/internal/pathfinder"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
)

// FunctionName is the name the step is registered under.
const FunctionName = "jdkpathfinder"

// Parameters are the invocation parameters shared by both step shapes.
type Parameters struct {
	Nodes                []string          `yaml:"nodes" json:"nodes"`
	JDKNames             []string          `yaml:"jdkNames" json:"jdkNames"`
	PropertiesFileSuffix string            `yaml:"propertiesFileSuffix,omitempty" json:"propertiesFileSuffix,omitempty"`
	Format               toolchains.Format `yaml:"format,omitempty" json:"format,omitempty"`
}

func (p Parameters) request() pathfinder.Request {
	return pathfinder.Request{
		Nodes:    append([]string(nil), p.Nodes...),
		JDKNames: append([]string(nil), p.JDKNames...),
		Suffix:   p.PropertiesFileSuffix,
		Format:   p.Format,
	}
}

func logSearch(p Parameters) {
	logx.As().Info().
		Strs("nodes", p.Nodes).
		Strs("jdks", p.JDKNames).
		Msgf("searching on nodes: %v for jdks: %v", p.Nodes, p.JDKNames)
}

func requireFinder(finder *pathfinder.Finder) error {
	if finder == nil {
		return errorx.IllegalArgument.New("finder is required")
	}
	return nil
}
