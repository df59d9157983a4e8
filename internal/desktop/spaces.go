package desktop

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"howett.net/plist"

	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// spacesPlistRelPath is where the window server saves its spaces layout,
// relative to the user's home directory.
const spacesPlistRelPath = "Library/Preferences/com.apple.spaces.plist"

// SpacesProvider reads displays and spaces from com.apple.spaces.plist.
type SpacesProvider struct {
	// PlistPath overrides the default plist location. Tests point this at a
	// fixture.
	PlistPath string
}

// NewSpacesProvider returns a provider reading the current user's saved
// spaces configuration.
func NewSpacesProvider() (*SpacesProvider, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &SpacesProvider{PlistPath: filepath.Join(home, spacesPlistRelPath)}, nil
}

// Plist structure under SpacesDisplayConfiguration > Management Data.
type spacesPlist struct {
	SpacesDisplayConfiguration struct {
		ManagementData struct {
			Monitors []monitor `plist:"Monitors"`
		} `plist:"Management Data"`
	} `plist:"SpacesDisplayConfiguration"`
}

type monitor struct {
	DisplayIdentifier string  `plist:"Display Identifier"`
	Spaces            []space `plist:"Spaces"`
}

type space struct {
	UUID string `plist:"uuid"`
	Type int    `plist:"type"`
}

// ListDisplays decodes the saved spaces configuration into displays and
// their workspaces, preserving the order the window server stores them in.
// Monitors whose identifier is not a UUID (the main display is saved as
// "Main" on some configurations) are skipped: the store indexes displays by
// UUID and has no row to give them.
func (p *SpacesProvider) ListDisplays() ([]types.Display, error) {
	data, err := os.ReadFile(p.PlistPath)
	if err != nil {
		return nil, fmt.Errorf("reading spaces configuration: %w", err)
	}

	var cfg spacesPlist
	if _, err := plist.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding spaces configuration: %w", err)
	}

	var displays []types.Display
	for _, m := range cfg.SpacesDisplayConfiguration.ManagementData.Monitors {
		if _, err := uuid.Parse(m.DisplayIdentifier); err != nil {
			continue
		}
		d := types.Display{UUID: m.DisplayIdentifier}
		for _, s := range m.Spaces {
			if s.UUID == "" {
				continue
			}
			d.Workspaces = append(d.Workspaces, types.Workspace{
				UUID:         s.UUID,
				IsFullscreen: s.Type != 0,
			})
		}
		displays = append(displays, d)
	}
	return displays, nil
}
