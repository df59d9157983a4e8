package sqlite

import "testing"

// seedSlot inserts one picture bound to the given identities with a single
// preference pointing at its own data row. Returns the picture rowid.
func seedSlot(t *testing.T, s *Store, spaceID, displayID *int64, key int, value any) int64 {
	t.Helper()
	dataID, err := s.InsertData(value)
	if err != nil {
		t.Fatalf("InsertData failed: %v", err)
	}
	picID, err := s.InsertPicture(spaceID, displayID)
	if err != nil {
		t.Fatalf("InsertPicture failed: %v", err)
	}
	if _, err := s.InsertPreference(key, dataID, picID); err != nil {
		t.Fatalf("InsertPreference failed: %v", err)
	}
	return picID
}

func mustCount(t *testing.T, s *Store, table string) int {
	t.Helper()
	n, err := s.Count(table)
	if err != nil {
		t.Fatalf("Count(%s) failed: %v", table, err)
	}
	return n
}

// Deleting a space whose only picture references data nobody else uses must
// cascade all the way down: space -> picture -> preference -> data.
func TestCascade_SpaceDeleteFullChain(t *testing.T) {
	s := newStore(t)

	spaceID, err := s.InsertSpace(testSpaceUUID1)
	if err != nil {
		t.Fatalf("InsertSpace failed: %v", err)
	}
	seedSlot(t, s, &spaceID, nil, 1, "/tmp/a.png")

	if err := s.DeleteSpace(spaceID); err != nil {
		t.Fatalf("DeleteSpace failed: %v", err)
	}

	for _, table := range []string{TableSpaces, TablePictures, TablePreferences, TableData} {
		if n := mustCount(t, s, table); n != 0 {
			t.Errorf("%s has %d rows after cascade, want 0", table, n)
		}
	}
}

// When two pictures share a data row, deleting one picture must remove only
// its preference rows; the shared data row survives because the other
// picture's preference still references it.
func TestCascade_SharedDataSurvivesPartialDelete(t *testing.T) {
	s := newStore(t)

	dataID, err := s.InsertData("/tmp/shared.png")
	if err != nil {
		t.Fatalf("InsertData failed: %v", err)
	}
	pic1, err := s.InsertPicture(nil, nil)
	if err != nil {
		t.Fatalf("InsertPicture failed: %v", err)
	}
	pic2, err := s.InsertPicture(nil, nil)
	if err != nil {
		t.Fatalf("InsertPicture failed: %v", err)
	}
	if _, err := s.InsertPreference(1, dataID, pic1); err != nil {
		t.Fatalf("InsertPreference failed: %v", err)
	}
	if _, err := s.InsertPreference(1, dataID, pic2); err != nil {
		t.Fatalf("InsertPreference failed: %v", err)
	}

	if err := s.DeletePicture(pic1); err != nil {
		t.Fatalf("DeletePicture failed: %v", err)
	}

	if n := mustCount(t, s, TablePreferences); n != 1 {
		t.Errorf("preferences rows = %d, want 1", n)
	}
	if n := mustCount(t, s, TableData); n != 1 {
		t.Errorf("shared data row reaped early: %d rows, want 1", n)
	}

	// Removing the second picture releases the last reference.
	if err := s.DeletePicture(pic2); err != nil {
		t.Fatalf("DeletePicture failed: %v", err)
	}
	if n := mustCount(t, s, TableData); n != 0 {
		t.Errorf("data rows = %d after last reference removed, want 0", n)
	}
}

// Deleting the last picture referencing a display must reap the display row;
// a display still referenced by another picture must survive.
func TestCascade_PictureDeleteReapsOrphanedIdentities(t *testing.T) {
	s := newStore(t)

	displayID, err := s.InsertDisplay(testDisplayUUID)
	if err != nil {
		t.Fatalf("InsertDisplay failed: %v", err)
	}
	pic1 := seedSlot(t, s, nil, &displayID, 1, "/tmp/a.png")
	pic2 := seedSlot(t, s, nil, &displayID, 1, "/tmp/b.png")

	if err := s.DeletePicture(pic1); err != nil {
		t.Fatalf("DeletePicture failed: %v", err)
	}
	if n := mustCount(t, s, TableDisplays); n != 1 {
		t.Errorf("display reaped while still referenced: %d rows, want 1", n)
	}

	if err := s.DeletePicture(pic2); err != nil {
		t.Fatalf("DeletePicture failed: %v", err)
	}
	if n := mustCount(t, s, TableDisplays); n != 0 {
		t.Errorf("orphaned display not reaped: %d rows, want 0", n)
	}
}

// Deleting a display cascades through its pictures to their preferences.
func TestCascade_DisplayDelete(t *testing.T) {
	s := newStore(t)

	displayID, err := s.InsertDisplay(testDisplayUUID)
	if err != nil {
		t.Fatalf("InsertDisplay failed: %v", err)
	}
	seedSlot(t, s, nil, &displayID, 1, "/tmp/a.png")

	if err := s.DeleteDisplay(displayID); err != nil {
		t.Fatalf("DeleteDisplay failed: %v", err)
	}

	for _, table := range []string{TableDisplays, TablePictures, TablePreferences, TableData} {
		if n := mustCount(t, s, table); n != 0 {
			t.Errorf("%s has %d rows after display cascade, want 0", table, n)
		}
	}
}

// Deleting a preference directly reaps its data row only when it held the
// last reference.
func TestCascade_PreferenceDelete(t *testing.T) {
	s := newStore(t)

	dataID, err := s.InsertData(int64(0))
	if err != nil {
		t.Fatalf("InsertData failed: %v", err)
	}
	pic, err := s.InsertPicture(nil, nil)
	if err != nil {
		t.Fatalf("InsertPicture failed: %v", err)
	}
	pref1, err := s.InsertPreference(2, dataID, pic)
	if err != nil {
		t.Fatalf("InsertPreference failed: %v", err)
	}
	pref2, err := s.InsertPreference(2, dataID, pic)
	if err != nil {
		t.Fatalf("InsertPreference failed: %v", err)
	}

	if err := s.DeletePreference(pref1); err != nil {
		t.Fatalf("DeletePreference failed: %v", err)
	}
	if n := mustCount(t, s, TableData); n != 1 {
		t.Errorf("data rows = %d, want 1 while a reference remains", n)
	}

	if err := s.DeletePreference(pref2); err != nil {
		t.Fatalf("DeletePreference failed: %v", err)
	}
	if n := mustCount(t, s, TableData); n != 0 {
		t.Errorf("data rows = %d after last reference deleted, want 0", n)
	}
}
