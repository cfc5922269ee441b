// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands/common"
	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/inventory"
	"github.com/jetty-project/jdkpathfinder/internal/pathfinder"
	"github.com/jetty-project/jdkpathfinder/internal/steps"
	"github.com/jetty-project/jdkpathfinder/pkg/jvm"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

type toolRow struct {
	Name       string       `yaml:"name" json:"name"`
	Home       string       `yaml:"home" json:"home"`
	Version    string       `yaml:"version,omitempty" json:"version,omitempty"`
	Node       string       `yaml:"node,omitempty" json:"node,omitempty"`
	NodeHome   string       `yaml:"nodeHome,omitempty" json:"nodeHome,omitempty"`
	Release    *jvm.Release `yaml:"release,omitempty" json:"release,omitempty"`
	ProbeError string       `yaml:"probeError,omitempty" json:"probeError,omitempty"`
}

// sortKey is the probed version when known, then the declared one.
func (r toolRow) sortKey() string {
	if r.Release != nil && r.Release.JavaVersion != "" {
		return r.Release.JavaVersion
	}
	return r.Version
}

type toolsQuery struct {
	node     host.Node
	env      host.EnvVars
	listener host.TaskListener
	prober   jvm.Prober
}

func toolRows(inv *inventory.Inventory, q toolsQuery) ([]toolRow, error) {
	rows := make([]toolRow, 0)
	for _, inst := range inv.Installations(pathfinder.ToolKindJDK) {
		row := toolRow{Name: inst.Name(), Home: inst.Home(), Version: inst.Version()}

		home := inst.Home()
		if q.node != nil {
			adapted, err := inv.AdaptToolToNode(inst, q.node, q.listener)
			if err != nil {
				return nil, pathfinder.NewAdaptationError(err, inst.Name(), q.node.Name())
			}
			adapted = inv.AdaptToolToEnvironment(adapted, q.env)
			home = adapted.Home()
			row.Node = q.node.Name()
			row.NodeHome = home
		}

		if q.prober != nil {
			release, err := q.prober.Probe(q.env.Expand(home))
			if err != nil {
				logx.As().Debug().Err(err).Str("jdk", inst.Name()).Msg("Failed to probe jdk home")
				row.ProbeError = err.Error()
			} else {
				row.Release = release
			}
		}

		rows = append(rows, row)
	}

	jvm.SortByVersion(rows, toolRow.sortKey)
	return rows, nil
}

func newToolsCmd() *cobra.Command {
	var (
		flagInventory string
		flagEnv       []string
		flagNode      string
		flagProbe     bool
	)

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Lists the JDK installations of the inventory ordered by version",
		Long:  "Lists the JDK installations of the inventory ordered by version, optionally adapted to a node and probed on the local filesystem",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Override(config.Config{Inventory: flagInventory, Env: flagEnv}); err != nil {
				return err
			}

			inv, err := common.LoadInventory(config.Get().Inventory)
			if err != nil {
				return err
			}

			q := toolsQuery{
				env:      common.RunEnv(inv),
				listener: steps.NewConsoleListener(cmd.ErrOrStderr(), logx.As()),
			}
			if flagNode != "" {
				q.node = pathfinder.ResolveNode(inv, flagNode)
				if q.node == nil {
					return errorx.IllegalArgument.New("no node or label matches %s", flagNode).
						WithProperty(errorx.PropertyPayload(), "--node")
				}
			}
			if flagProbe {
				q.prober = jvm.New(common.Fs)
			}

			rows, err := toolRows(inv, q)
			if err != nil {
				return err
			}

			return common.Print(cmd, rows, common.OutputFormat(cmd))
		},
	}

	common.FlagInventory.SetVar(cmd, &flagInventory, false)
	common.FlagEnv.SetVar(cmd, &flagEnv, false)
	common.FlagNode.SetVar(cmd, &flagNode, false)
	common.FlagProbe.SetVar(cmd, &flagProbe, false)

	return cmd
}
