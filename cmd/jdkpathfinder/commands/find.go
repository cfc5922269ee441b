// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/jetty-project/jdkpathfinder/internal/steps"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

// sessionFlags are the flags shared by the commands that write node files.
type sessionFlags struct {
	inventory string
	workspace string
	format    string
	suffix    string
	env       []string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	common.FlagInventory.SetVar(cmd, &f.inventory, false)
	common.FlagWorkspace.SetVar(cmd, &f.workspace, false)
	common.FlagFormat.SetVar(cmd, &f.format, false)
	common.FlagSuffix.SetVar(cmd, &f.suffix, false)
	common.FlagEnv.SetVar(cmd, &f.env, false)
}

func (f *sessionFlags) overrides() config.Config {
	return config.Config{
		Inventory: f.inventory,
		Workspace: f.workspace,
		Format:    f.format,
		Suffix:    f.suffix,
		Env:       f.env,
	}
}

func newFindCmd() *cobra.Command {
	var (
		flags     sessionFlags
		flagNodes []string
		flagJDKs  []string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Writes the JDK homes of each node to a file in the workspace",
		Long:  "Resolves each node by name or label, looks up the requested JDKs on it and writes one file per node into the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := common.NewSession(cmd, flags.overrides())
			if err != nil {
				return err
			}

			logx.As().Debug().
				Strs("nodes", flagNodes).
				Strs("jdks", flagJDKs).
				Str("workspace", sess.WorkspaceDir).
				Msg("Running jdk path lookup")

			step := steps.NewBuildStep(sess.Finder, flagNodes, flagJDKs).
				SetPropertiesFileSuffix(sess.Suffix).
				SetFormat(sess.Format)

			result, err := step.Perform(cmd.Context(), steps.Run{
				Workspace: sess.Workspace,
				Listener:  sess.Listener,
				Env:       sess.Env,
			})
			if err != nil {
				return errorx.Decorate(err, "jdk path lookup failed")
			}

			return common.Print(cmd, result, common.OutputFormat(cmd))
		},
	}

	common.FlagNodes.SetVar(cmd, &flagNodes, true)
	common.FlagJDKs.SetVar(cmd, &flagJDKs, true)
	flags.register(cmd)

	return cmd
}
