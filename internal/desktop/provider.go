// Package desktop discovers displays and workspaces from the window server's
// saved spaces configuration, and signals the Dock to reload the wallpaper
// store. Both are collaborators of the store builder, not part of it.
package desktop

import "github.com/amusingimpala75/macpaperd/pkg/types"

// Provider lists the displays and workspaces the window server currently
// knows about.
type Provider interface {
	ListDisplays() ([]types.Display, error)
}
