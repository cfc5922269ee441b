// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/inventory"
	"github.com/jetty-project/jdkpathfinder/internal/pathfinder"
	"github.com/jetty-project/jdkpathfinder/internal/steps"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Fs is the filesystem commands read inventories, step parameters and written
// files from, and create workspaces on.
var Fs afero.Fs = afero.NewOsFs()

// Session is everything a command needs to run a lookup: the loaded inventory,
// a finder over it, and the workspace, listener and environment of the run.
type Session struct {
	Inventory    *inventory.Inventory
	Finder       *pathfinder.Finder
	WorkspaceDir string
	Workspace    afero.Fs
	Listener     host.TaskListener
	Env          host.EnvVars
	Format       toolchains.Format
	Suffix       string
}

// NewSession applies overrides on top of the loaded configuration and prepares
// the inventory, finder and workspace they describe. Task messages go to the
// command's stderr.
func NewSession(cmd *cobra.Command, overrides config.Config) (*Session, error) {
	if err := config.Override(overrides); err != nil {
		return nil, err
	}
	cfg := config.Get()

	inv, err := LoadInventory(cfg.Inventory)
	if err != nil {
		return nil, err
	}

	finder, err := pathfinder.NewFinder(inv, inv, pathfinder.WithLogger(logx.As()))
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(cfg.Workspace)
	if err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "invalid workspace: %s", cfg.Workspace).
			WithProperty(errorx.PropertyPayload(), "--workspace")
	}
	if err = Fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errorx.ExternalError.Wrap(err, "failed to create workspace %s", dir)
	}

	logx.As().Debug().
		Str("inventory", cfg.Inventory).
		Str("workspace", dir).
		Str("format", cfg.Format).
		Msg("Session prepared")

	return &Session{
		Inventory:    inv,
		Finder:       finder,
		WorkspaceDir: dir,
		Workspace:    afero.NewBasePathFs(Fs, dir),
		Listener:     steps.NewConsoleListener(cmd.ErrOrStderr(), logx.As()),
		Env:          RunEnv(inv),
		Format:       cfg.OutputFormat(),
		Suffix:       cfg.Suffix,
	}, nil
}

// RunEnv is the environment a run expands homes with: the process environment,
// overlaid by the inventory environment, overlaid by the configured entries.
func RunEnv(inv *inventory.Inventory) host.EnvVars {
	return host.FromEnviron(os.Environ()).
		Overlay(inv.Environment()).
		Overlay(config.Get().RunEnv())
}

// LoadInventory reads the inventory file at path.
func LoadInventory(path string) (*inventory.Inventory, error) {
	if path == "" {
		return nil, errorx.IllegalArgument.New("an inventory file is required").
			WithProperty(errorx.PropertyPayload(), "--inventory")
	}
	return inventory.LoadFile(Fs, path, inventory.WithLogger(logx.As()))
}

// OutputFormat returns the value of the inherited --output flag.
func OutputFormat(cmd *cobra.Command) string {
	v, err := FlagOutput.valueFrom(cmd.Flags())
	if err != nil || v == "" {
		return OutputYAML
	}
	return v
}

// Print renders v to the command's stdout as yaml or json.
func Print(cmd *cobra.Command, v any, format string) error {
	var out []byte
	var err error
	switch strings.ToLower(format) {
	case OutputJSON:
		out, err = json.MarshalIndent(v, "", "  ")
	case OutputYAML:
		out, err = yaml.Marshal(v)
	default:
		return errorx.IllegalArgument.New("unsupported output format: %s", format).
			WithProperty(errorx.PropertyPayload(), "--output")
	}
	if err != nil {
		return errorx.IllegalFormat.Wrap(err, "failed to render %s output", format)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
	return err
}
