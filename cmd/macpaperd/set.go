// The set command: build a fresh store for the requested wallpaper and swap
// it over the live one.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amusingimpala75/macpaperd/internal/desktop"
	"github.com/amusingimpala75/macpaperd/internal/paths"
	"github.com/amusingimpala75/macpaperd/internal/sqlite"
	"github.com/amusingimpala75/macpaperd/internal/swap"
	"github.com/amusingimpala75/macpaperd/internal/wallpaper"
	"github.com/amusingimpala75/macpaperd/pkg/types"
)

var (
	flagFile        string
	flagColor       string
	flagOrientation string
	flagDynamic     string
	flagBackground  string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the wallpaper on every space",
	Long: `Set the wallpaper on every space of the first display, either to an
image file (--file) or a flat color (--color RRGGBB). The store is rebuilt
from scratch and atomically swapped over the live one, then the Dock is
restarted to pick it up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := specFromFlags()
		if err != nil {
			return err
		}

		provider, err := desktop.NewSpacesProvider()
		if err != nil {
			return err
		}
		return runSet(provider, spec)
	},
}

func init() {
	setCmd.Flags().StringVar(&flagFile, "file", "", "path to the wallpaper image")
	setCmd.Flags().StringVar(&flagColor, "color", "", "flat color as RRGGBB hex")
	setCmd.Flags().StringVar(&flagOrientation, "orientation", "full", "image orientation: full, tile, center, stretch, fit")
	setCmd.Flags().StringVar(&flagDynamic, "dynamic", "none", "dynamic mode for heic images: none, dynamic, light, dark")
	setCmd.Flags().StringVar(&flagBackground, "background", "", "fill color behind transparent images, RRGGBB hex")
	setCmd.MarkFlagsMutuallyExclusive("file", "color")
	setCmd.MarkFlagsOneRequired("file", "color")
}

// specFromFlags validates the flag set into a wallpaper spec.
func specFromFlags() (types.WallpaperSpec, error) {
	if flagColor != "" {
		c, err := types.ParseColor(flagColor)
		if err != nil {
			return nil, err
		}
		return types.ColorSpec{Color: c}, nil
	}

	abs, err := filepath.Abs(flagFile)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrEncoding, err)
	}

	orientation, err := types.ParseOrientation(flagOrientation)
	if err != nil {
		return nil, err
	}
	dynamic, err := types.ParseDynamicMode(flagDynamic)
	if err != nil {
		return nil, err
	}

	spec := types.ImageSpec{
		Path:        abs,
		Orientation: orientation,
		Dynamic:     dynamic,
	}
	if flagBackground != "" {
		c, err := types.ParseColor(flagBackground)
		if err != nil {
			return nil, err
		}
		spec.Background = &c
	}
	return spec, nil
}

// runSet drives the whole pipeline: discover, build in scratch, swap, signal.
func runSet(provider desktop.Provider, spec types.WallpaperSpec) error {
	displays, err := provider.ListDisplays()
	if err != nil {
		return err
	}

	buildDir, err := resolveBuildDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("creating build dir: %w", err)
	}
	buildPath := paths.BuildStorePath(buildDir)

	store, err := sqlite.Create(buildPath)
	if err != nil {
		return err
	}

	ids, err := store.PopulateIdentities(displays)
	if err != nil {
		store.Close()
		return err
	}
	if ids.IgnoredDisplays > 0 {
		slog.Warn("multiple displays found; only the first is configured",
			"ignored", ids.IgnoredDisplays)
	}

	if err := wallpaper.Build(store, ids, spec); err != nil {
		store.Close()
		os.Remove(buildPath)
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("closing built store: %w", err)
	}

	livePath, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := swap.Commit(buildPath, livePath, configBackup); err != nil {
		// The replace is atomic, so the live store is untouched; there is
		// nothing for the Dock to pick up.
		return err
	}

	if err := desktop.RestartDock(); err != nil {
		slog.Warn("store swapped but the Dock could not be restarted; wallpaper applies after next login", "err", err)
	}
	return nil
}
