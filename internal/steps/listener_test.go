// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConsoleListener(t *testing.T) {
	var out, logs bytes.Buffer
	logger := zerolog.New(&logs)

	l := NewConsoleListener(&out, &logger)
	l.Info("no node or label matches solaris")
	l.Warn("cannot find jdkHome for jdk jdk8 on node agentA")

	assert.Equal(t, "no node or label matches solaris\nWARNING: cannot find jdkHome for jdk jdk8 on node agentA\n", out.String())
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"source":"jdkpathfinder"`)
}

func TestConsoleListener_Defaults(t *testing.T) {
	l := NewConsoleListener(nil, nil)
	assert.NotPanics(t, func() {
		l.Info("info")
		l.Warn("warn")
	})
}
