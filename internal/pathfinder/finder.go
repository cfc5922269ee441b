// SPDX-License-Identifier: Apache-2.0

package pathfinder

import (
	"context"
	"fmt"

	"github.com/automa-saga/automa"
	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const workflowId = "jdkpathfinder"

// Request is one invocation of the resolver.
type Request struct {
	Nodes    []string
	JDKNames []string
	// Suffix overrides the format's default file name suffix when not empty.
	Suffix string
	Format toolchains.Format
}

// Target is where a run reads its environment from and writes its output to.
type Target struct {
	Workspace afero.Fs
	Listener  host.TaskListener
	Env       host.EnvVars
}

// NodeResult describes the file written for one requested node.
type NodeResult struct {
	NodeName     string             `yaml:"node" json:"node"`
	ResolvedNode string             `yaml:"resolvedNode,omitempty" json:"resolvedNode,omitempty"`
	File         string             `yaml:"file" json:"file"`
	Entries      []toolchains.Entry `yaml:"entries" json:"entries"`
	Missing      []string           `yaml:"missing,omitempty" json:"missing,omitempty"`
}

// Result lists the per node outcomes in request order.
type Result struct {
	Nodes []NodeResult `yaml:"nodes" json:"nodes"`
}

// Finder resolves JDK homes against injected cluster and tool registries.
type Finder struct {
	cluster  host.ClusterState
	registry host.ToolRegistry
	logger   *zerolog.Logger
}

// Option customizes a Finder.
type Option func(*Finder)

// WithLogger sets the application logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFinder returns a Finder backed by the given registries.
func NewFinder(cluster host.ClusterState, registry host.ToolRegistry, opts ...Option) (*Finder, error) {
	if cluster == nil {
		return nil, errorx.IllegalArgument.New("cluster state is required")
	}
	if registry == nil {
		return nil, errorx.IllegalArgument.New("tool registry is required")
	}

	nop := zerolog.Nop()
	f := &Finder{
		cluster:  cluster,
		registry: registry,
		logger:   &nop,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Run processes the requested nodes in order, one workflow step per node, and
// writes one file per node into the target workspace. Missing JDKs and unknown
// nodes are reported and skipped; a failure to write a file stops the run and
// is returned.
func (f *Finder) Run(ctx context.Context, req Request, target Target) (*Result, error) {
	if target.Workspace == nil {
		return nil, errorx.IllegalArgument.New("workspace is required")
	}
	if target.Listener == nil {
		return nil, errorx.IllegalArgument.New("task listener is required")
	}

	if req.Format == "" {
		req.Format = toolchains.FormatToolchains
	}

	result := &Result{Nodes: make([]NodeResult, 0, len(req.Nodes))}
	if len(req.Nodes) == 0 {
		f.logger.Info().Msg("No nodes requested, nothing to write")
		return result, nil
	}

	var runErr error
	steps := make([]automa.Builder, 0, len(req.Nodes))
	for i, name := range req.Nodes {
		steps = append(steps, f.nodeStep(i, name, req, target, result, &runErr))
	}

	wf, err := automa.NewWorkflowBuilder().
		WithId(workflowId).
		Steps(steps...).
		WithExecutionMode(automa.StopOnError).
		Build()
	if err != nil {
		return nil, errorx.IllegalState.Wrap(err, "failed to build resolution workflow")
	}

	report := wf.Execute(ctx)
	if runErr != nil {
		return result, runErr
	}
	if err := workflowError(report); err != nil {
		return result, err
	}

	return result, nil
}

func (f *Finder) nodeStep(index int, name string, req Request, target Target, result *Result, runErr *error) automa.Builder {
	return automa.NewStepBuilder().WithId(fmt.Sprintf("node-%d-%s", index, name)).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := ctx.Err(); err != nil {
				*runErr = err
				return automa.FailureReport(stp, automa.WithError(err))
			}

			nr, err := f.processNode(name, req, target)
			if err != nil {
				*runErr = err
				return automa.FailureReport(stp, automa.WithError(err))
			}

			result.Nodes = append(result.Nodes, nr)
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"file":    nr.File,
				"entries": fmt.Sprintf("%d", len(nr.Entries)),
			}))
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			f.logger.Error().Err(rpt.Error).Str("node", name).Msg("Failed to write jdk paths")
		})
}

// processNode resolves, looks up, accumulates and writes the file of one node.
func (f *Finder) processNode(name string, req Request, target Target) (NodeResult, error) {
	node := ResolveNode(f.cluster, name)
	if node == nil {
		f.logger.Warn().Str("node", name).Msg("No node matches name or label, using configured tool homes")
		target.Listener.Info(fmt.Sprintf("no node or label matches %s, using configured jdk homes", name))
	}

	records := make([]ToolRecord, 0, len(req.JDKNames))
	var missing []string
	for _, jdkName := range req.JDKNames {
		home, err := FindHome(f.registry, jdkName, node, target.Env, target.Listener)
		if err != nil {
			return NodeResult{}, err
		}

		if home == "" {
			target.Listener.Warn(fmt.Sprintf("cannot find jdkHome for jdk %s on node %s", jdkName, name))
			missing = append(missing, jdkName)
		}
		records = append(records, ToolRecord{JDKName: jdkName, Home: home})
	}

	nt := Accumulate(name, records)
	file, err := toolchains.Write(target.Workspace, nt, req.Format, req.Suffix)
	if err != nil {
		return NodeResult{}, err
	}

	f.logger.Info().
		Str("node", name).
		Str("resolved_node", nodeName(node)).
		Str("file", file).
		Int("entries", nt.Len()).
		Msg("Wrote jdk paths")

	return NodeResult{
		NodeName:     name,
		ResolvedNode: nodeName(node),
		File:         file,
		Entries:      nt.Entries,
		Missing:      missing,
	}, nil
}

func workflowError(report *automa.Report) error {
	if report == nil {
		return errorx.IllegalState.New("resolution workflow returned no report")
	}

	for _, sr := range report.StepReports {
		if sr != nil && sr.Status == automa.StatusFailed && sr.Error != nil {
			return sr.Error
		}
	}

	return report.Error
}
