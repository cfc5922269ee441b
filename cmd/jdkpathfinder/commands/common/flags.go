// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"fmt"

	"github.com/jetty-project/jdkpathfinder/internal/doctor"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	FlagConfig = FlagDefinition[string]{
		Name:        "config",
		ShortName:   "c",
		Description: "config file path",
		Default:     "",
	}

	// support '--version', '-v' to show version information
	FlagVersion = FlagDefinition[bool]{
		Name:        "version",
		ShortName:   "v",
		Description: "Show version",
		Default:     false,
	}

	FlagOutput = FlagDefinition[string]{
		Name:        "output",
		ShortName:   "o",
		Description: "Output format (yaml|json, version also accepts text)",
		Default:     OutputYAML,
	}

	FlagNodes = FlagDefinition[[]string]{
		Name:        "nodes",
		ShortName:   "n",
		Description: "Node names or label fragments to write a file for (repeatable, comma separated)",
		Default:     []string{},
	}

	FlagJDKs = FlagDefinition[[]string]{
		Name:        "jdks",
		ShortName:   "j",
		Description: "JDK installation names to look up on each node (repeatable, comma separated)",
		Default:     []string{},
	}

	FlagSuffix = FlagDefinition[string]{
		Name:        "suffix",
		ShortName:   "s",
		Description: fmt.Sprintf("Output file name suffix (default %q or %q depending on format)", toolchains.ToolchainsSuffix, toolchains.PropertiesSuffix),
		Default:     "",
	}

	FlagFormat = FlagDefinition[string]{
		Name:        "format",
		ShortName:   "f",
		Description: fmt.Sprintf("Output file format %v", toolchains.SupportedFormats()),
		Default:     "",
	}

	FlagWorkspace = FlagDefinition[string]{
		Name:        "workspace",
		ShortName:   "w",
		Description: "Directory the node files are written to (default \".\")",
		Default:     "",
	}

	FlagInventory = FlagDefinition[string]{
		Name:        "inventory",
		ShortName:   "i",
		Description: "Cluster inventory file (yaml, toml or json)",
		Default:     "",
	}

	FlagEnv = FlagDefinition[[]string]{
		Name:        "env",
		ShortName:   "e",
		Description: "Run environment entry KEY=VALUE applied over the inventory environment (repeatable)",
		Default:     []string{},
	}

	FlagNode = FlagDefinition[string]{
		Name:        "node",
		ShortName:   "",
		Description: "Show homes adapted to this node name or label",
		Default:     "",
	}

	FlagProbe = FlagDefinition[bool]{
		Name:        "probe",
		ShortName:   "",
		Description: "Read the Java version from each local JDK home",
		Default:     false,
	}
)

// FlagDefinition defines a command-line flag typed by T. Only string, bool
// and []string flags are supported.
type FlagDefinition[T any] struct {
	Name        string
	ShortName   string
	Description string
	Default     T
}

// valueFrom reads the flag from flags, or from the parent persistent flags
// merged into it by cobra.
func (fp *FlagDefinition[T]) valueFrom(flags *pflag.FlagSet) (T, error) {
	var out T
	var err error
	switch v := any(&out).(type) {
	case *string:
		*v, err = flags.GetString(fp.Name)
	case *bool:
		*v, err = flags.GetBool(fp.Name)
	case *[]string:
		*v, err = flags.GetStringSlice(fp.Name)
	default:
		err = errorx.IllegalArgument.New("unsupported flag type %T for flag %s", out, fp.Name)
	}
	return out, err
}

// SetVarP registers the flag as a persistent flag of cmd bound to p and exits
// on error.
func (fp *FlagDefinition[T]) SetVarP(cmd *cobra.Command, p *T, required bool) {
	if err := fp.varP(cmd, p, required); err != nil {
		doctor.CheckErr(context.Background(), err, fmt.Sprintf("failed to set flag %s", fp.Name))
	}
}

// SetVar registers the flag as a local flag of cmd bound to p and exits on
// error.
func (fp *FlagDefinition[T]) SetVar(cmd *cobra.Command, p *T, required bool) {
	if err := fp.varNP(cmd, p, required); err != nil {
		doctor.CheckErr(context.Background(), err, fmt.Sprintf("failed to set flag %s", fp.Name))
	}
}

func (fp *FlagDefinition[T]) varP(cmd *cobra.Command, p *T, required bool) error {
	if cmd == nil {
		return errorx.IllegalArgument.New("command for flag %s is nil", fp.Name)
	}
	if err := fp.bind(cmd.PersistentFlags(), p); err != nil {
		return err
	}
	return fp.MarkRequiredP(cmd, required)
}

func (fp *FlagDefinition[T]) varNP(cmd *cobra.Command, p *T, required bool) error {
	if cmd == nil {
		return errorx.IllegalArgument.New("command for flag %s is nil", fp.Name)
	}
	if err := fp.bind(cmd.Flags(), p); err != nil {
		return err
	}
	return fp.MarkRequired(cmd, required)
}

// bind registers the flag on flags with p as its storage.
func (fp *FlagDefinition[T]) bind(flags *pflag.FlagSet, p *T) error {
	if p == nil {
		return errorx.IllegalArgument.New("pointer for flag %s is nil", fp.Name)
	}

	switch v := any(p).(type) {
	case *string:
		flags.StringVarP(v, fp.Name, fp.ShortName, any(fp.Default).(string), fp.Description)
	case *bool:
		flags.BoolVarP(v, fp.Name, fp.ShortName, any(fp.Default).(bool), fp.Description)
	case *[]string:
		flags.StringSliceVarP(v, fp.Name, fp.ShortName, any(fp.Default).([]string), fp.Description)
	default:
		return errorx.IllegalArgument.New("unsupported flag type %T for flag %s", *p, fp.Name)
	}

	return nil
}

// MarkRequired makes cobra reject invocations without the local flag.
func (fp *FlagDefinition[T]) MarkRequired(cmd *cobra.Command, v bool) error {
	if !v {
		return nil
	}
	if err := cmd.MarkFlagRequired(fp.Name); err != nil {
		return errorx.InternalError.Wrap(err, "failed to mark flag %s as required", fp.Name)
	}
	return nil
}

// MarkRequiredP is MarkRequired for persistent flags.
func (fp *FlagDefinition[T]) MarkRequiredP(cmd *cobra.Command, v bool) error {
	if !v {
		return nil
	}
	if err := cmd.MarkPersistentFlagRequired(fp.Name); err != nil {
		return errorx.InternalError.Wrap(err, "failed to mark persistent flag %s as required", fp.Name)
	}
	return nil
}
