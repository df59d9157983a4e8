package types

import (
	"errors"
	"fmt"
)

// Failure classes for a wallpaper-set run. Everything before the swap leaves
// the live store untouched; a swap failure is the only case where the caller
// must assume the store may be inconsistent.
var (
	// ErrStorageInit means the store file or its schema could not be created.
	ErrStorageInit = errors.New("store initialization failed")

	// ErrNoIdentityData means the provider reported no displays, or the
	// first display has no workspaces. There is nothing to configure.
	ErrNoIdentityData = errors.New("no displays or workspaces discovered")

	// ErrEncoding means the wallpaper spec cannot be encoded. The store is
	// never partially written; the caller may correct the spec and retry.
	ErrEncoding = errors.New("invalid wallpaper spec")

	// ErrSwapFailed means the final commit of the built store failed. The
	// caller must not signal the Dock to reload.
	ErrSwapFailed = errors.New("store swap failed")
)

// Encoding failures, all matched by errors.Is(err, ErrEncoding).
var (
	ErrUnsupportedExtension = fmt.Errorf("%w: unsupported file extension", ErrEncoding)
	ErrDynamicUnsupported   = fmt.Errorf("%w: dynamic mode requires a heic image", ErrEncoding)
	ErrInvalidColor         = fmt.Errorf("%w: malformed color", ErrEncoding)
	ErrInvalidOrientation   = fmt.Errorf("%w: unknown orientation", ErrEncoding)
	ErrInvalidDynamicMode   = fmt.Errorf("%w: unknown dynamic mode", ErrEncoding)
)

// ErrInvalidUUID means a provider-reported display or space identifier is not
// a UUID. The store indexes rows by these strings, so junk is rejected early.
var ErrInvalidUUID = errors.New("malformed display or space UUID")
