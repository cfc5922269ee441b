// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/jetty-project/jdkpathfinder/internal/inventory"
	"github.com/spf13/cobra"
)

type nodeRow struct {
	Name       string `yaml:"name" json:"name"`
	Labels     string `yaml:"labels,omitempty" json:"labels,omitempty"`
	OS         string `yaml:"os,omitempty" json:"os,omitempty"`
	Controller bool   `yaml:"controller,omitempty" json:"controller,omitempty"`
}

func nodeRows(inv *inventory.Inventory) []nodeRow {
	nodes := inv.Nodes()
	rows := make([]nodeRow, 0, len(nodes))
	for i, n := range nodes {
		rows = append(rows, nodeRow{
			Name:   n.Name(),
			Labels: n.LabelString(),
			OS:     n.OS(),
			// Nodes lists the controller last.
			Controller: inv.Controller() != nil && i == len(nodes)-1,
		})
	}
	return rows
}

func newNodesCmd() *cobra.Command {
	var flagInventory string

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Lists the nodes of the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Override(config.Config{Inventory: flagInventory}); err != nil {
				return err
			}

			inv, err := common.LoadInventory(config.Get().Inventory)
			if err != nil {
				return err
			}

			return common.Print(cmd, nodeRows(inv), common.OutputFormat(cmd))
		},
	}

	common.FlagInventory.SetVar(cmd, &flagInventory, false)

	return cmd
}
