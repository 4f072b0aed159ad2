//go:build !unix

package terminal

import "os"

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return ColorModeTrueColor
	}
	return ColorMode256
}
