// Package sqlite builds and manipulates the Dock's desktoppicture database.
// The table names, column names, indices, and delete triggers below are the
// compatibility surface the Dock parses; they must be reproduced verbatim.
package sqlite

// Table DDL. Columns without a declared type mirror the Dock's own schema;
// the data table in particular holds strings, integers, and floats in one
// untyped column.
const (
	createData        = `CREATE TABLE data (value);`
	createDisplays    = `CREATE TABLE displays (display_uuid);`
	createPictures    = `CREATE TABLE pictures (space_id INTEGER, display_id INTEGER);`
	createPreferences = `CREATE TABLE preferences (key INTEGER, data_id INTEGER, picture_id INTEGER);`
	createPrefs       = `CREATE TABLE prefs (key INTEGER, data);`
	createSpaces      = `CREATE TABLE spaces (space_uuid);`
)

// Index DDL, one per table on its natural lookup key.
const (
	idxData        = `CREATE INDEX data_index ON data (value);`
	idxDisplays    = `CREATE INDEX displays_index ON displays (display_uuid);`
	idxPictures    = `CREATE INDEX pictures_index ON pictures (space_id, display_id);`
	idxPreferences = `CREATE INDEX preferences_index ON preferences (picture_id, data_id);`
	idxPrefs       = `CREATE INDEX prefs_index ON prefs (key);`
	idxSpaces      = `CREATE INDEX spaces_index ON spaces (space_uuid);`
)

// Cascade triggers. Deleting an identity row removes its pictures; deleting a
// picture removes its preferences and reaps displays/spaces no other picture
// references; deleting a preference reaps data rows no other preference
// references. The Dock relies on these firing synchronously on every delete.
const (
	trgDisplayDeleted = `CREATE TRIGGER display_deleted AFTER DELETE ON displays BEGIN
    DELETE FROM pictures WHERE display_id=OLD.ROWID;
END;`

	trgSpaceDeleted = `CREATE TRIGGER space_deleted AFTER DELETE ON spaces BEGIN
    DELETE FROM pictures WHERE space_id=OLD.ROWID;
END;`

	trgPictureDeleted = `CREATE TRIGGER picture_deleted AFTER DELETE ON pictures BEGIN
    DELETE FROM preferences WHERE picture_id=OLD.ROWID;
    DELETE FROM displays WHERE ROWID=OLD.display_id AND NOT EXISTS (SELECT NULL FROM pictures WHERE display_id=OLD.display_id);
    DELETE FROM spaces WHERE ROWID=OLD.space_id AND NOT EXISTS (SELECT NULL FROM pictures WHERE space_id=OLD.space_id);
END;`

	trgPreferenceDeleted = `CREATE TRIGGER preference_deleted AFTER DELETE ON preferences BEGIN
    DELETE FROM data WHERE ROWID=OLD.data_id AND NOT EXISTS (SELECT NULL FROM preferences WHERE data_id=OLD.data_id);
END;`
)

// schemaDDL lists all CREATE TABLE statements in the order the Dock's own
// store carries them.
var schemaDDL = []string{
	createData,
	createDisplays,
	createPictures,
	createPreferences,
	createPrefs,
	createSpaces,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxData,
	idxDisplays,
	idxPictures,
	idxPreferences,
	idxPrefs,
	idxSpaces,
}

// triggerDDL lists all CREATE TRIGGER statements.
var triggerDDL = []string{
	trgDisplayDeleted,
	trgPictureDeleted,
	trgPreferenceDeleted,
	trgSpaceDeleted,
}

// Table names, exported for callers that count or inspect rows.
const (
	TableData        = "data"
	TableDisplays    = "displays"
	TablePictures    = "pictures"
	TablePreferences = "preferences"
	TablePrefs       = "prefs"
	TableSpaces      = "spaces"
)

// Tables lists every table in the store, in schema order.
var Tables = []string{
	TableData,
	TableDisplays,
	TablePictures,
	TablePreferences,
	TablePrefs,
	TableSpaces,
}
