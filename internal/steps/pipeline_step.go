// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/pathfinder"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
	"github.com/spf13/afero"
)

// StepContext is the context a pipeline step runs in.
type StepContext interface {
	Workspace() afero.Fs
	Listener() host.TaskListener
	Env() host.EnvVars
}

// RequiredContext lists the context entries a pipeline step needs.
func RequiredContext() []string {
	return []string{"workspace", "listener", "env"}
}

type stepContext struct {
	workspace afero.Fs
	listener  host.TaskListener
	env       host.EnvVars
}

// NewStepContext returns a StepContext over fixed values.
func NewStepContext(workspace afero.Fs, listener host.TaskListener, env host.EnvVars) StepContext {
	return &stepContext{workspace: workspace, listener: listener, env: env}
}

func (c *stepContext) Workspace() afero.Fs         { return c.workspace }
func (c *stepContext) Listener() host.TaskListener { return c.listener }
func (c *stepContext) Env() host.EnvVars           { return c.env }

// PipelineStep is the pipeline step shape. Start binds it to a step context and
// returns the execution that performs the lookup.
type PipelineStep struct {
	Parameters
	finder *pathfinder.Finder
}

// NewPipelineStep returns a pipeline step looking up jdkNames on nodes.
func NewPipelineStep(finder *pathfinder.Finder, nodes []string, jdkNames []string) *PipelineStep {
	return &PipelineStep{
		Parameters: Parameters{Nodes: nodes, JDKNames: jdkNames},
		finder:     finder,
	}
}

// SetPropertiesFileSuffix overrides the default output file suffix.
func (s *PipelineStep) SetPropertiesFileSuffix(suffix string) *PipelineStep {
	s.PropertiesFileSuffix = suffix
	return s
}

// SetFormat selects the output format.
func (s *PipelineStep) SetFormat(format toolchains.Format) *PipelineStep {
	s.Format = format
	return s
}

// Start validates the step context and returns the execution.
func (s *PipelineStep) Start(sc StepContext) (*Execution, error) {
	if err := requireFinder(s.finder); err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, errorx.IllegalArgument.New("step context is required")
	}
	if sc.Workspace() == nil {
		return nil, errorx.IllegalArgument.New("step context has no workspace").
			WithProperty(errorx.PropertyPayload(), "workspace")
	}
	if sc.Listener() == nil {
		return nil, errorx.IllegalArgument.New("step context has no listener").
			WithProperty(errorx.PropertyPayload(), "listener")
	}
	if sc.Env() == nil {
		return nil, errorx.IllegalArgument.New("step context has no environment").
			WithProperty(errorx.PropertyPayload(), "env")
	}

	return &Execution{step: s, context: sc}, nil
}

// Execution is a started pipeline step.
type Execution struct {
	step    *PipelineStep
	context StepContext
}

// Run performs the lookup with the workspace, listener and environment of the
// step context.
func (e *Execution) Run(ctx context.Context) (*pathfinder.Result, error) {
	logSearch(e.step.Parameters)

	return e.step.finder.Run(ctx, e.step.request(), pathfinder.Target{
		Workspace: e.context.Workspace(),
		Listener:  e.context.Listener(),
		Env:       e.context.Env(),
	})
}
