// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"path/filepath"

	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Prints the JDK entries of a written toolchains or properties file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, name := filepath.Split(args[0])
			if dir == "" {
				dir = "."
			}

			entries, err := toolchains.Read(afero.NewBasePathFs(common.Fs, dir), name)
			if err != nil {
				return err
			}

			return common.Print(cmd, entries, common.OutputFormat(cmd))
		},
	}
}
