// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"

	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/steps"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loadParameters reads step parameters from a yaml or json file.
func loadParameters(fs afero.Fs, path string) (steps.Parameters, error) {
	var params steps.Parameters

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return params, errorx.IllegalArgument.Wrap(err, "failed to read step parameters %s", path).
			WithProperty(errorx.PropertyPayload(), path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&params); err != nil {
		return params, errorx.IllegalFormat.Wrap(err, "failed to parse step parameters %s", path).
			WithProperty(errorx.PropertyPayload(), path)
	}
	if params.Format != "" {
		f, err := toolchains.ParseFormat(string(params.Format))
		if err != nil {
			return params, err
		}
		params.Format = f
	}
	return params, nil
}

func newRunCmd() *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "run <parameters-file>",
		Short: "Runs a pipeline step described by a parameters file",
		Long:  "Runs the jdkpathfinder pipeline step with nodes, jdkNames, propertiesFileSuffix and format read from a yaml or json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParameters(common.Fs, args[0])
			if err != nil {
				return err
			}

			sess, err := common.NewSession(cmd, flags.overrides())
			if err != nil {
				return err
			}

			step := steps.NewPipelineStep(sess.Finder, params.Nodes, params.JDKNames).
				SetPropertiesFileSuffix(sess.Suffix).
				SetFormat(sess.Format)
			if params.PropertiesFileSuffix != "" {
				step.SetPropertiesFileSuffix(params.PropertiesFileSuffix)
			}
			if params.Format != "" {
				step.SetFormat(params.Format)
			}

			exec, err := step.Start(steps.NewStepContext(sess.Workspace, sess.Listener, sess.Env))
			if err != nil {
				return err
			}

			result, err := exec.Run(cmd.Context())
			if err != nil {
				return errorx.Decorate(err, "%s step failed", steps.FunctionName)
			}

			return common.Print(cmd, result, common.OutputFormat(cmd))
		},
	}

	flags.register(cmd)

	return cmd
}
