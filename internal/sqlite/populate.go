package sqlite

import (
	"fmt"

	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// Identities records the rowids assigned while copying provider-discovered
// UUIDs into the store. SpaceIDs preserves discovery order.
type Identities struct {
	DisplayID       int64
	SpaceIDs        []int64
	IgnoredDisplays int // displays beyond the first, which are not populated
}

// PopulateIdentities copies display and space UUIDs into the identity tables.
// Only the first display is populated; extra displays are counted in
// IgnoredDisplays so the caller can warn about them. Returns
// types.ErrNoIdentityData when there is no display, or the first display has
// no workspaces.
func (s *Store) PopulateIdentities(displays []types.Display) (*Identities, error) {
	if len(displays) == 0 {
		return nil, types.ErrNoIdentityData
	}

	first := displays[0]
	if len(first.Workspaces) == 0 {
		return nil, fmt.Errorf("%w: display %s has no workspaces", types.ErrNoIdentityData, first.UUID)
	}
	if err := first.Validate(); err != nil {
		return nil, err
	}

	displayID, err := s.InsertDisplay(first.UUID)
	if err != nil {
		return nil, err
	}

	ids := &Identities{
		DisplayID:       displayID,
		IgnoredDisplays: len(displays) - 1,
	}

	seen := make(map[string]bool, len(first.Workspaces))
	for _, w := range first.Workspaces {
		if seen[w.UUID] {
			continue
		}
		seen[w.UUID] = true
		spaceID, err := s.InsertSpace(w.UUID)
		if err != nil {
			return nil, err
		}
		ids.SpaceIDs = append(ids.SpaceIDs, spaceID)
	}

	return ids, nil
}
