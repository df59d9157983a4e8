package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version reported by the version command.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("macpaperd v" + Version)
	},
}
