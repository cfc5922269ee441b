// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/version"
	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

// examples:
// ./jdkpathfinder find -i cluster.yaml -n agentA,macos -j jdk11,jdk17
// ./jdkpathfinder find -i cluster.yaml -n agentA -j jdk11 -f properties -w ./out
// ./jdkpathfinder run -i cluster.yaml ./step.yaml
// ./jdkpathfinder tools -i cluster.yaml --node agentA --probe

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var (
		flagConfig       string
		flagVersion      bool
		flagOutputFormat string
	)

	rootCmd := &cobra.Command{
		Use:           "jdkpathfinder",
		Short:         "Writes the JDK homes of build nodes to per node files",
		Long:          "JDK Path Finder - resolves JDK installations on build nodes and writes their homes as Maven toolchains or properties files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(flagConfig)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				return version.PrintVersion(cmd, flagOutputFormat)
			}

			return cmd.Help()
		},
	}

	common.FlagConfig.SetVarP(rootCmd, &flagConfig, false)
	common.FlagVersion.SetVarP(rootCmd, &flagVersion, false)
	common.FlagOutput.SetVarP(rootCmd, &flagOutputFormat, false)

	// disable command sorting to keep the order of commands as added
	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newNodesCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(version.GetCmd())

	return rootCmd
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errorx.IllegalArgument.New("context is required")
	}

	_, err := NewRootCmd().ExecuteContextC(ctx)
	if err != nil {
		return errorx.Decorate(err, "failed to execute command")
	}

	return nil
}

func initConfig(path string) error {
	config.Reset()
	if err := config.Initialize(path); err != nil {
		return err
	}

	return logx.Initialize(config.Get().Log)
}
