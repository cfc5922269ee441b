// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/internal/config"
	"github.com/jetty-project/jdkpathfinder/internal/inventory"
	"github.com/jetty-project/jdkpathfinder/internal/pathfinder"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/jetty-project/jdkpathfinder/internal/version"
	"github.com/jetty-project/jdkpathfinder/pkg/jvm"
	"github.com/joomcode/errorx"
)

type ctxKey string

const traceIdKey ctxKey = "traceId"

// Output and exit are replaced by tests.
var (
	output io.Writer = os.Stderr
	exit             = os.Exit
)

type ErrorDiagnosis struct {
	Error      error    `yaml:"error" json:"error"`
	Message    string   `yaml:"message" json:"message"`
	Cause      string   `yaml:"cause" json:"cause"`
	ErrorType  string   `yaml:"errorType" json:"errorType"`
	TraceId    string   `yaml:"traceId" json:"traceId"`
	Commit     string   `yaml:"commit" json:"commit"`
	Version    string   `yaml:"version" json:"version"`
	Pid        int      `yaml:"pid" json:"pid"`
	Code       int      `yaml:"code" json:"code"`
	Logfile    string   `yaml:"log" json:"log"`
	Resolution []string `yaml:"steps" json:"steps"`
}

// WithTraceId returns a context carrying the trace id reported by Diagnose.
func WithTraceId(ctx context.Context, traceId string) context.Context {
	return context.WithValue(ctx, traceIdKey, traceId)
}

// TraceId returns the trace id stored in ctx, or an empty string.
func TraceId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIdKey).(string); ok {
		return id
	}
	return ""
}

func toErrorCode(err error) int {
	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument),
		errorx.IsOfType(err, toolchains.UnknownFormat),
		errorx.IsOfType(err, inventory.ValidationError),
		errorx.IsOfType(err, config.InvalidError):
		return 10400
	case errorx.IsOfType(err, errorx.IllegalFormat),
		errorx.IsOfType(err, inventory.ParseError),
		errorx.IsOfType(err, toolchains.DecodeError):
		return 10422
	default:
		if errorx.HasTrait(err, errorx.NotFound()) {
			return 10404
		}
		return 10500
	}
}

func toErrorMessage(err error) (string, string) {
	e := errorx.Cast(err)
	if e == nil {
		return err.Error(), ""
	}

	if e.Cause() == nil {
		return e.Message(), ""
	}
	return e.Message(), fmt.Sprintf("%s", e.Cause())
}

func property(err error, p errorx.Property) string {
	if v, ok := errorx.ExtractProperty(err, p); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func findResolution(err error) []string {
	payload := property(err, errorx.PropertyPayload())

	switch {
	case errorx.IsOfType(err, toolchains.WriteError), errorx.IsOfType(err, toolchains.DeleteError):
		return []string{
			"Ensure the workspace directory exists and is writable by the current user.",
			"Ensure no other process holds the node files open.",
		}
	case errorx.IsOfType(err, toolchains.UnknownFormat):
		return []string{fmt.Sprintf("Use one of the supported formats: %v.", toolchains.SupportedFormats())}
	case errorx.IsOfType(err, toolchains.ReadError), errorx.IsOfType(err, toolchains.DecodeError):
		return []string{"Ensure the file was written by jdkpathfinder and has not been edited."}
	case errorx.IsOfType(err, inventory.NotFoundError):
		if payload != "" {
			return []string{fmt.Sprintf("Ensure inventory file %q exists and is readable.", payload)}
		}
		return []string{"Ensure the inventory file exists and is readable."}
	case errorx.IsOfType(err, inventory.ParseError):
		return []string{"Ensure the inventory is valid yaml, toml or json and only uses known keys."}
	case errorx.IsOfType(err, inventory.ValidationError):
		return []string{"Fix the inventory entry named in the error message."}
	case errorx.IsOfType(err, pathfinder.AdaptationError):
		return []string{"Check the tool locations configured for the node in the inventory."}
	case errorx.IsOfType(err, jvm.NotFoundError), errorx.IsOfType(err, jvm.ProbeError):
		return []string{"Ensure the home points at a JDK with a release file or a macOS bundle Info.plist."}
	case errorx.IsOfType(err, config.NotFoundError):
		if payload != "" {
			return []string{fmt.Sprintf("Ensure configuration file %q exists, is correctly formatted and accessible", payload)}
		}
		return []string{"Ensure configuration file exists and is accessible."}
	case errorx.IsOfType(err, config.InvalidError):
		return []string{"Fix the configuration value named in the error message."}
	case errorx.IsOfType(err, errorx.IllegalArgument):
		if payload != "" {
			return []string{fmt.Sprintf("Ensure %q is provided.", payload)}
		}
		return []string{"Ensure all required arguments are provided."}
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return []string{"Ensure provided data is in correct format."}
	default:
		return []string{"Check error message for details."}
	}
}

// Diagnose attempts to find a resolution and provide a human friendly error response.
func Diagnose(ctx context.Context, ex error) *ErrorDiagnosis {
	msg, cause := toErrorMessage(ex)
	return &ErrorDiagnosis{
		Error:      ex,
		ErrorType:  errorx.GetTypeName(ex),
		Message:    msg,
		Cause:      cause,
		TraceId:    TraceId(ctx),
		Code:       toErrorCode(ex),
		Commit:     version.Commit(),
		Version:    version.Number(),
		Pid:        os.Getpid(),
		Logfile:    config.Get().Log.Filename,
		Resolution: findResolution(ex),
	}
}

// Print writes the diagnosis of err to w. Optional instructions are printed
// before the default resolution steps.
func Print(w io.Writer, resp *ErrorDiagnosis, instructions ...string) {
	_, _ = fmt.Fprintf(w, "\n%s%s*************************************** Error Diagnostics ***************************************%s\n", colorBold, colorRed, colorReset)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sError:%s %s\n", colorRed, colorReset, colorBold+colorWhite, colorReset, resp.Message)
	if resp.Cause != "" {
		_, _ = fmt.Fprintf(w, "%s*%s\t%sCause:%s %s\n", colorRed, colorReset, colorBold+colorWhite, colorReset, resp.Cause)
	}
	_, _ = fmt.Fprintf(w, "%s*%s\t%sError Type:%s %s\n", colorRed, colorReset, colorBold+colorWhite, colorReset, resp.ErrorType)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sError Code:%s %d\n", colorRed, colorReset, colorBold+colorWhite, colorReset, resp.Code)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sCommit:%s %s\n", colorRed, colorReset, colorGray, colorReset, resp.Commit)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sPid:%s %d\n", colorRed, colorReset, colorGray, colorReset, resp.Pid)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sTraceId:%s %s\n", colorRed, colorReset, colorGray, colorReset, resp.TraceId)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sVersion:%s %s\n", colorRed, colorReset, colorGray, colorReset, resp.Version)
	if resp.Logfile != "" {
		_, _ = fmt.Fprintf(w, "%s*%s\t%sLogfile:%s %s\n", colorRed, colorReset, colorCyan, colorReset, resp.Logfile)
	}
	_, _ = fmt.Fprintf(w, "%s%s*************************************************************************************************%s\n", colorBold, colorRed, colorReset)
	_, _ = fmt.Fprintf(w, "\n%s%s****************************************** Resolution *******************************************%s\n", colorBold, colorYellow, colorReset)

	if len(instructions) > 0 && instructions[0] != "" {
		for _, line := range strings.Split(instructions[0], "\n") {
			if line == "" {
				_, _ = fmt.Fprintf(w, "%s*%s\n", colorYellow, colorReset)
			} else {
				_, _ = fmt.Fprintf(w, "%s*%s\t%s\n", colorYellow, colorReset, colorBold+colorWhite+line+colorReset)
			}
		}
		if len(resp.Resolution) > 0 {
			_, _ = fmt.Fprintf(w, "%s*%s\n", colorYellow, colorReset)
		}
	}

	for _, r := range resp.Resolution {
		_, _ = fmt.Fprintf(w, "%s*%s\t%s\n", colorYellow, colorReset, colorWhite+r+colorReset)
	}

	_, _ = fmt.Fprintf(w, "%s%s*************************************************************************************************%s\n", colorBold, colorYellow, colorReset)
}

// CheckErr prints diagnosis and exit with error code 1
// Optional instructions can be provided to give additional context to the user
func CheckErr(ctx context.Context, err error, instructions ...string) {
	logx.As().Error().Err(err).Str("trace_id", TraceId(ctx)).Msg("error occurred")
	_, _ = fmt.Fprintf(output, "%+v\n", err)
	Print(output, Diagnose(ctx, err), instructions...)
	exit(1)
}
