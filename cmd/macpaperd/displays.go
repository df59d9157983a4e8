// The displays command: print the discovered displays and spaces.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amusingimpala75/macpaperd/internal/desktop"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List discovered displays and their spaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := desktop.NewSpacesProvider()
		if err != nil {
			return err
		}
		displays, err := provider.ListDisplays()
		if err != nil {
			return err
		}

		for i, d := range displays {
			fmt.Printf("display %d: %s\n", i+1, d.UUID)
			for _, w := range d.Workspaces {
				marker := ""
				if w.IsFullscreen {
					marker = " (fullscreen)"
				}
				fmt.Printf("  space %s%s\n", w.UUID, marker)
			}
		}
		return nil
	},
}
