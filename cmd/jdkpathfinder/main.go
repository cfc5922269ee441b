// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/jetty-project/jdkpathfinder/cmd/jdkpathfinder/commands"
	"github.com/jetty-project/jdkpathfinder/internal/doctor"
)

func main() {
	ctx := doctor.WithTraceId(context.Background(), uuid.NewString())
	err := commands.Execute(ctx)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}
}
