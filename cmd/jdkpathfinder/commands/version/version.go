// SPDX-License-Identifier: Apache-2.0

package version

import (
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/version"
	"github.com/spf13/cobra"
)

// GetCmd returns the version command. It reads the output format from the
// root --output flag.
func GetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  "Show the current version of the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintVersion(cmd, common.OutputFormat(cmd))
		},
	}
}

func PrintVersion(cmd *cobra.Command, format string) error {
	output, err := version.Get().Format(format)
	if err != nil {
		return err
	}
	cmd.Println(output)
	return nil
}
