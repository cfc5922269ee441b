// SPDX-License-Identifier: Apache-2.0

package doctor

import "os"

// ANSI color codes for the diagnosis banner. Empty when NO_COLOR is set.
var (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
)

func init() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		disableColors()
	}
}

func disableColors() {
	colorRed, colorYellow, colorCyan, colorWhite, colorGray, colorReset, colorBold = "", "", "", "", "", "", ""
}
