// Package integration exercises the whole store-building pipeline: schema
// creation, identity population, encoding, picture/preference building, and
// the final swap, inspecting the produced file the way the Dock would.
package integration

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/amusingimpala75/macpaperd/internal/sqlite"
	"github.com/amusingimpala75/macpaperd/internal/wallpaper"
	"github.com/amusingimpala75/macpaperd/pkg/types"
)

const displayUUID = "A45EF71A-A253-4D28-911F-0EC0CB07E7E6"

var spaceUUIDs = []string{
	"DD6D9B8D-9C3B-4A09-A4F5-6E2E8B302E2B",
	"5C33314A-1404-4C43-B69A-0A2F49AFD6A7",
	"0F99AF04-4D17-48E3-8B25-84E8AF7D2C06",
}

// snapshot returns a one-display discovery result with n workspaces.
func snapshot(n int) []types.Display {
	d := types.Display{UUID: displayUUID}
	for i := 0; i < n; i++ {
		d.Workspaces = append(d.Workspaces, types.Workspace{UUID: spaceUUIDs[i]})
	}
	return []types.Display{d}
}

// buildStore runs the full build pipeline into a temp file and returns its path.
func buildStore(t *testing.T, displays []types.Display, spec types.WallpaperSpec) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "desktoppicture.db")
	store, err := sqlite.Create(path)
	require.NoError(t, err)
	defer store.Close()

	ids, err := store.PopulateIdentities(displays)
	require.NoError(t, err)

	require.NoError(t, wallpaper.Build(store, ids, spec))
	require.NoError(t, store.Close())
	return path
}

// openRaw opens a built store file with a plain database/sql handle, the way
// an external reader would.
func openRaw(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func queryInt(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}
