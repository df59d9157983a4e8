// Package types defines the domain types shared by the macpaperd CLI and the
// store-building packages: displays, workspaces, wallpaper specs, and the
// error values every layer reports with.
package types

import "github.com/google/uuid"

// Workspace is one virtual desktop ("space") on a display.
type Workspace struct {
	UUID         string // Space UUID as reported by the window server.
	IsFullscreen bool   // Fullscreen and tiled spaces carry their own wallpaper state.
}

// Display is one physical display and the workspaces bound to it, in the
// order the provider discovered them.
type Display struct {
	UUID       string
	Workspaces []Workspace
}

// Validate checks that the display UUID and every workspace UUID parse as
// UUIDs. Returns ErrInvalidUUID on the first malformed identifier.
func (d Display) Validate() error {
	if _, err := uuid.Parse(d.UUID); err != nil {
		return ErrInvalidUUID
	}
	for _, w := range d.Workspaces {
		if _, err := uuid.Parse(w.UUID); err != nil {
			return ErrInvalidUUID
		}
	}
	return nil
}
