// Package main provides the macpaperd CLI: it rebuilds the Dock's wallpaper
// store from a user-supplied image or color and signals the Dock to reload.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// Exit codes: user errors (bad spec, nothing to configure) are recoverable by
// retrying with different arguments; system errors are not.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, types.ErrEncoding) || errors.Is(err, types.ErrNoIdentityData) {
		return exitUserError
	}
	return exitSysError
}
