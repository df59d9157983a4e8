// Package wallpaper encodes a wallpaper spec into the key/data rows the Dock
// reads, and populates a store with one picture slot per addressable
// (display, workspace) pair.
package wallpaper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// Preference keys the Dock's wallpaper reader understands. These values are
// the external protocol, not a choice this package gets to make.
const (
	KeyImageFile   = 1
	KeyOrientation = 2
	KeyColorRed    = 3
	KeyColorGreen  = 4
	KeyColorBlue   = 5
	KeyFolder      = 10
	KeyFlatColor   = 15
	KeyDynamicMode = 20
)

// A flat color is rendered as a transparent placeholder image over the color,
// through the same code path as a regular image.
const (
	transparentImagePath = "/System/Library/PrivateFrameworks/DesktopPicture.framework/Versions/A/Resources/transparent.tiff"
	solidColorsFolder    = "/System/Library/Desktop Pictures/Solid Colors"
)

// imageExtensions lists the file types the Dock renders.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".heic": true,
}

// KeyRef binds a preference key to a positional offset into the encoded data
// rows. Offsets, not values, are the contract: the data rows are inserted
// once, in order, and every picture's preferences point into that sequence.
type KeyRef struct {
	Key    int
	Offset int
}

// Encoding is the flattened form of a wallpaper spec: the data rows to append
// to the store, in order, and the key set referencing them by offset.
type Encoding struct {
	DataRows []any
	Keys     []KeyRef
}

// Encode maps a wallpaper spec onto its data rows and key set. The key set is
// always complete for the variant; the Dock misreads partial sets.
func Encode(spec types.WallpaperSpec) (*Encoding, error) {
	switch s := spec.(type) {
	case types.ImageSpec:
		return encodeImage(s)
	case types.ColorSpec:
		return encodeColor(s)
	default:
		return nil, fmt.Errorf("%w: unknown spec variant %T", types.ErrEncoding, spec)
	}
}

// encodeImage emits (folder, orientation, file) with keys 10, 2, 1. A dynamic
// mode other than none appends its code under key 20; an explicit background
// color appends the three channel rows under keys 3, 4, 5.
func encodeImage(s types.ImageSpec) (*Encoding, error) {
	ext := strings.ToLower(filepath.Ext(s.Path))
	if !imageExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedExtension, ext)
	}
	if s.Dynamic != types.DynamicNone && ext != ".heic" {
		return nil, fmt.Errorf("%w: %s", types.ErrDynamicUnsupported, s.Path)
	}
	if !s.Orientation.Valid() {
		return nil, fmt.Errorf("%w: code %d", types.ErrInvalidOrientation, s.Orientation)
	}
	if !s.Dynamic.Valid() {
		return nil, fmt.Errorf("%w: code %d", types.ErrInvalidDynamicMode, s.Dynamic)
	}

	enc := &Encoding{
		DataRows: []any{
			filepath.Dir(s.Path),
			int64(s.Orientation),
			s.Path,
		},
		Keys: []KeyRef{
			{Key: KeyFolder, Offset: 0},
			{Key: KeyOrientation, Offset: 1},
			{Key: KeyImageFile, Offset: 2},
		},
	}

	if s.Dynamic != types.DynamicNone {
		enc.append(KeyDynamicMode, int64(s.Dynamic))
	}
	if s.Background != nil {
		enc.appendChannels(*s.Background)
	}
	return enc, nil
}

// encodeColor emits the full seven-key flat-color set: channels, the
// flat-color flag, and the synthesized folder/orientation/file rows that make
// the Dock render the color through its image path.
func encodeColor(s types.ColorSpec) (*Encoding, error) {
	enc := &Encoding{}
	enc.appendChannels(s.Color)
	enc.append(KeyFlatColor, int64(1))
	enc.append(KeyFolder, solidColorsFolder)
	enc.append(KeyOrientation, int64(types.OrientationFull))
	enc.append(KeyImageFile, transparentImagePath)
	return enc, nil
}

// append adds one data row and its key reference.
func (e *Encoding) append(key int, value any) {
	e.Keys = append(e.Keys, KeyRef{Key: key, Offset: len(e.DataRows)})
	e.DataRows = append(e.DataRows, value)
}

// appendChannels adds the R, G, B rows under keys 3, 4, 5, normalized to
// floating point by dividing by 255.
func (e *Encoding) appendChannels(c types.Color) {
	e.append(KeyColorRed, float64(c.R)/255)
	e.append(KeyColorGreen, float64(c.G)/255)
	e.append(KeyColorBlue, float64(c.B)/255)
}
