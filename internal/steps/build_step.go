// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/pathfinder"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/spf13/afero"
)

// Run is what the host hands a freestyle build step: the workspace of the
// build, its log and its environment.
type Run struct {
	Workspace afero.Fs
	Listener  host.TaskListener
	Env       host.EnvVars
}

// BuildStep is the freestyle build step shape.
type BuildStep struct {
	Parameters
	finder *pathfinder.Finder
}

// NewBuildStep returns a build step looking up jdkNames on nodes.
func NewBuildStep(finder *pathfinder.Finder, nodes []string, jdkNames []string) *BuildStep {
	return &BuildStep{
		Parameters: Parameters{Nodes: nodes, JDKNames: jdkNames},
		finder:     finder,
	}
}

// SetPropertiesFileSuffix overrides the default output file suffix.
func (s *BuildStep) SetPropertiesFileSuffix(suffix string) *BuildStep {
	s.PropertiesFileSuffix = suffix
	return s
}

// SetFormat selects the output format.
func (s *BuildStep) SetFormat(format toolchains.Format) *BuildStep {
	s.Format = format
	return s
}

// Perform writes one file per node into the run's workspace.
func (s *BuildStep) Perform(ctx context.Context, run Run) (*pathfinder.Result, error) {
	if err := requireFinder(s.finder); err != nil {
		return nil, err
	}

	logSearch(s.Parameters)
	return s.finder.Run(ctx, s.request(), pathfinder.Target{
		Workspace: run.Workspace,
		Listener:  run.Listener,
		Env:       run.Env,
	})
}
