package wallpaper

import (
	"fmt"

	"github.com/amusingimpala75/macpaperd/internal/sqlite"
	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// slot is one addressable pictures row. Nil means NULL in the store.
type slot struct {
	spaceID   *int64
	displayID *int64
}

// slots generates the fixed slot layout the Dock addresses: two sentinel
// defaults per display, then two rows per workspace (bound to the display and
// unbound). The doubling mirrors the Dock's own redundant addressing and is
// load-bearing; do not collapse it.
func slots(ids *sqlite.Identities) []slot {
	displayID := ids.DisplayID
	out := []slot{
		{spaceID: nil, displayID: nil},
		{spaceID: nil, displayID: &displayID},
	}
	for _, spaceID := range ids.SpaceIDs {
		out = append(out,
			slot{spaceID: &spaceID, displayID: &displayID},
			slot{spaceID: &spaceID, displayID: nil},
		)
	}
	return out
}

// Build encodes spec once, appends its data rows to the store, and attaches
// the key set to every picture slot. Data rows are shared across pictures;
// only the preferences rows repeat. Any insertion failure aborts the build,
// and the caller must discard the scratch store rather than swap it in.
func Build(store *sqlite.Store, ids *sqlite.Identities, spec types.WallpaperSpec) error {
	enc, err := Encode(spec)
	if err != nil {
		return err
	}

	dataIDs := make([]int64, len(enc.DataRows))
	for i, value := range enc.DataRows {
		id, err := store.InsertData(value)
		if err != nil {
			return fmt.Errorf("building store: %w", err)
		}
		dataIDs[i] = id
	}

	for _, sl := range slots(ids) {
		pictureID, err := store.InsertPicture(sl.spaceID, sl.displayID)
		if err != nil {
			return fmt.Errorf("building store: %w", err)
		}
		for _, ref := range enc.Keys {
			if _, err := store.InsertPreference(ref.Key, dataIDs[ref.Offset], pictureID); err != nil {
				return fmt.Errorf("building store: %w", err)
			}
		}
	}
	return nil
}
