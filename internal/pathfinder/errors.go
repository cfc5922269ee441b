// SPDX-License-Identifier: Apache-2.0

package pathfinder

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace  = errorx.NewNamespace("pathfinder")
	AdaptationError  = ErrorsNamespace.NewType("adaptation_error")
	nodeNameProperty = errorx.RegisterPrintableProperty("node_name")
	jdkNameProperty  = errorx.RegisterPrintableProperty("jdk_name")
)

func NewAdaptationError(cause error, jdkName string, nodeName string) *errorx.Error {
	return AdaptationError.New("failed to adapt jdk '%s' to node '%s'", jdkName, nodeName).
		WithProperty(jdkNameProperty, jdkName).
		WithProperty(nodeNameProperty, nodeName).
		WithUnderlyingErrors(cause)
}
