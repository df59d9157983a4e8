package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// Store is a desktoppicture database being built or inspected. Row identity
// throughout is SQLite ROWID; every insert method returns the rowid actually
// assigned, which is the join key the Dock consumes.
type Store struct {
	path string
	db   *sql.DB
}

// Create makes a fresh store at path: all six tables, their indices, and the
// four cascade triggers. Any stale file at path is removed first so a crashed
// prior build cannot merge into this one. Failures wrap types.ErrStorageInit.
func Create(path string) (*Store, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: removing stale build file: %v", types.ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrStorageInit, path, err)
	}

	// Cascades chain through triggers (space -> picture -> preference ->
	// data); SQLite only fires triggers from inside other triggers with
	// recursive_triggers on. The pragma is per-connection, so the pool is
	// pinned to one.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA recursive_triggers = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling recursive triggers: %v", types.ErrStorageInit, err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: creating table: %v", types.ErrStorageInit, err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: creating index: %v", types.ErrStorageInit, err)
		}
	}
	for _, ddl := range triggerDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: creating trigger: %v", types.ErrStorageInit, err)
		}
	}

	return &Store{path: path, db: db}, nil
}

// Open opens an existing store read-write. Used by tests and by delete
// operations against an already-built store.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA recursive_triggers = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling recursive triggers: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

// Close releases the underlying database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// insert runs an INSERT and returns the rowid SQLite assigned.
func (s *Store) insert(query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertDisplay adds a displays row and returns its rowid.
func (s *Store) InsertDisplay(displayUUID string) (int64, error) {
	id, err := s.insert("INSERT INTO displays (display_uuid) VALUES (?)", displayUUID)
	if err != nil {
		return 0, fmt.Errorf("inserting display %s: %w", displayUUID, err)
	}
	return id, nil
}

// InsertSpace adds a spaces row and returns its rowid.
func (s *Store) InsertSpace(spaceUUID string) (int64, error) {
	id, err := s.insert("INSERT INTO spaces (space_uuid) VALUES (?)", spaceUUID)
	if err != nil {
		return 0, fmt.Errorf("inserting space %s: %w", spaceUUID, err)
	}
	return id, nil
}

// InsertData appends a scalar to the data table and returns its rowid. The
// data table is append-only and positional: callers depend on rowids being
// assigned in insertion order.
func (s *Store) InsertData(value any) (int64, error) {
	id, err := s.insert("INSERT INTO data (value) VALUES (?)", value)
	if err != nil {
		return 0, fmt.Errorf("inserting data value %v: %w", value, err)
	}
	return id, nil
}

// InsertPicture adds a pictures row and returns its rowid. A nil spaceID or
// displayID inserts NULL, which is how sentinel default slots are addressed.
func (s *Store) InsertPicture(spaceID, displayID *int64) (int64, error) {
	id, err := s.insert(
		"INSERT INTO pictures (space_id, display_id) VALUES (?, ?)",
		nullableID(spaceID), nullableID(displayID),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting picture: %w", err)
	}
	return id, nil
}

// InsertPreference attaches one (key, data) pair to a picture.
func (s *Store) InsertPreference(key int, dataID, pictureID int64) (int64, error) {
	id, err := s.insert(
		"INSERT INTO preferences (key, data_id, picture_id) VALUES (?, ?, ?)",
		key, dataID, pictureID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting preference key %d for picture %d: %w", key, pictureID, err)
	}
	return id, nil
}

// DeleteDisplay removes a displays row; the display_deleted trigger cascades.
func (s *Store) DeleteDisplay(rowID int64) error {
	_, err := s.db.Exec("DELETE FROM displays WHERE ROWID = ?", rowID)
	if err != nil {
		return fmt.Errorf("deleting display %d: %w", rowID, err)
	}
	return nil
}

// DeleteSpace removes a spaces row; the space_deleted trigger cascades.
func (s *Store) DeleteSpace(rowID int64) error {
	_, err := s.db.Exec("DELETE FROM spaces WHERE ROWID = ?", rowID)
	if err != nil {
		return fmt.Errorf("deleting space %d: %w", rowID, err)
	}
	return nil
}

// DeletePicture removes a pictures row; the picture_deleted trigger cascades.
func (s *Store) DeletePicture(rowID int64) error {
	_, err := s.db.Exec("DELETE FROM pictures WHERE ROWID = ?", rowID)
	if err != nil {
		return fmt.Errorf("deleting picture %d: %w", rowID, err)
	}
	return nil
}

// DeletePreference removes a preferences row; the preference_deleted trigger
// reaps data rows no other preference references.
func (s *Store) DeletePreference(rowID int64) error {
	_, err := s.db.Exec("DELETE FROM preferences WHERE ROWID = ?", rowID)
	if err != nil {
		return fmt.Errorf("deleting preference %d: %w", rowID, err)
	}
	return nil
}

// Count returns the number of rows in the named table.
func (s *Store) Count(table string) (int, error) {
	if !knownTable(table) {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// dumpQueries spells out each table's columns so the dump stays stable even
// if SELECT * ordering ever differs.
var dumpQueries = []struct {
	table string
	query string
	cols  int
}{
	{TableDisplays, "SELECT ROWID, display_uuid FROM displays ORDER BY ROWID", 2},
	{TableSpaces, "SELECT ROWID, space_uuid FROM spaces ORDER BY ROWID", 2},
	{TableData, "SELECT ROWID, value FROM data ORDER BY ROWID", 2},
	{TablePictures, "SELECT ROWID, space_id, display_id FROM pictures ORDER BY ROWID", 3},
	{TablePreferences, "SELECT ROWID, key, data_id, picture_id FROM preferences ORDER BY ROWID", 4},
	{TablePrefs, "SELECT ROWID, key, data FROM prefs ORDER BY ROWID", 3},
}

// Dump renders every table in rowid order as one canonical text block.
// Two builds from the same snapshot and spec produce identical dumps.
func (s *Store) Dump() (string, error) {
	var b strings.Builder
	for _, dq := range dumpQueries {
		fmt.Fprintf(&b, "== %s\n", dq.table)
		rows, err := s.db.Query(dq.query)
		if err != nil {
			return "", fmt.Errorf("dumping %s: %w", dq.table, err)
		}
		for rows.Next() {
			values := make([]any, dq.cols)
			ptrs := make([]any, dq.cols)
			for i := range values {
				ptrs[i] = &values[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				rows.Close()
				return "", fmt.Errorf("scanning %s row: %w", dq.table, err)
			}
			fields := make([]string, dq.cols)
			for i, v := range values {
				fields[i] = formatValue(v)
			}
			b.WriteString(strings.Join(fields, "|"))
			b.WriteByte('\n')
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return "", fmt.Errorf("iterating %s: %w", dq.table, err)
		}
		rows.Close()
	}
	return b.String(), nil
}

// formatValue renders one scanned SQLite value deterministically.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// nullableID converts an optional rowid to a driver argument.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// knownTable reports whether name is one of the store's tables.
func knownTable(name string) bool {
	for _, t := range Tables {
		if t == name {
			return true
		}
	}
	return false
}
