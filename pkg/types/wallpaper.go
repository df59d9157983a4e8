package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation is the integer code the Dock stores for how an image fills the
// screen. The code space is non-contiguous: 1 is unused in the Dock's format
// and must never be emitted.
type Orientation int

const (
	OrientationFull    Orientation = 0
	OrientationTile    Orientation = 2
	OrientationCenter  Orientation = 3
	OrientationStretch Orientation = 4
	OrientationFit     Orientation = 5
)

// orientationNames maps CLI spellings to orientation codes.
var orientationNames = map[string]Orientation{
	"full":    OrientationFull,
	"tile":    OrientationTile,
	"center":  OrientationCenter,
	"stretch": OrientationStretch,
	"fit":     OrientationFit,
}

// ParseOrientation maps a name like "full" or "fit" to its code.
// Returns ErrInvalidOrientation for anything else.
func ParseOrientation(name string) (Orientation, error) {
	o, ok := orientationNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, name)
	}
	return o, nil
}

// Valid reports whether o is one of the Dock's orientation codes.
func (o Orientation) Valid() bool {
	switch o {
	case OrientationFull, OrientationTile, OrientationCenter, OrientationStretch, OrientationFit:
		return true
	}
	return false
}

// DynamicMode is the integer code for a dynamic (time-of-day) wallpaper.
type DynamicMode int

const (
	DynamicNone  DynamicMode = 0
	DynamicAuto  DynamicMode = 1
	DynamicLight DynamicMode = 2
	DynamicDark  DynamicMode = 3
)

var dynamicNames = map[string]DynamicMode{
	"none":    DynamicNone,
	"dynamic": DynamicAuto,
	"light":   DynamicLight,
	"dark":    DynamicDark,
}

// ParseDynamicMode maps a name like "none" or "dark" to its code.
// Returns ErrInvalidDynamicMode for anything else.
func ParseDynamicMode(name string) (DynamicMode, error) {
	m, ok := dynamicNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDynamicMode, name)
	}
	return m, nil
}

// Valid reports whether m is one of the Dock's dynamic-mode codes.
func (m DynamicMode) Valid() bool {
	return m >= DynamicNone && m <= DynamicDark
}

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "RRGGBB" hex, with or without a leading '#'.
// Returns ErrInvalidColor if the string is not six hex digits.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// WallpaperSpec is what the user asked for: either an image file or a flat
// color. The two variants are ImageSpec and ColorSpec.
type WallpaperSpec interface {
	wallpaperSpec()
}

// ImageSpec sets an image file as the wallpaper.
type ImageSpec struct {
	Path        string      // Absolute path to the image file.
	Orientation Orientation // How the image fills the screen.
	Dynamic     DynamicMode // Other than DynamicNone only for heic images.
	Background  *Color      // Optional fill behind images with transparency.
}

// ColorSpec sets a flat color as the wallpaper. The Dock renders it through
// the same image path as a transparent placeholder over the color.
type ColorSpec struct {
	Color Color
}

func (ImageSpec) wallpaperSpec() {}
func (ColorSpec) wallpaperSpec() {}
