// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// ConsoleListener is a host.TaskListener that prints task messages to a build
// log and mirrors them to the application logger.
type ConsoleListener struct {
	out    io.Writer
	logger *zerolog.Logger
}

// NewConsoleListener returns a listener writing to out. A nil out only logs.
func NewConsoleListener(out io.Writer, logger *zerolog.Logger) *ConsoleListener {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ConsoleListener{out: out, logger: logger}
}

func (l *ConsoleListener) Info(msg string) {
	l.logger.Info().Str("source", FunctionName).Msg(msg)
	_, _ = fmt.Fprintln(l.out, msg)
}

func (l *ConsoleListener) Warn(msg string) {
	l.logger.Warn().Str("source", FunctionName).Msg(msg)
	_, _ = fmt.Fprintf(l.out, "WARNING: %s\n", msg)
}
