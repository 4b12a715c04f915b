package roster

import (
	"testing"

	gormModels "asx-vms/rosterd/internal/models/gorm"
)

func testRoster() []gormModels.Pilot {
	return []gormModels.Pilot{
		{ID: "1", Callsign: "ASX001", Name: "Marco", Surname: "Rossi"},
		{ID: "2", Callsign: "ASX002", Name: "Laura", Surname: "Bianchi", Suspended: true},
		{ID: "3", Callsign: "ASX003", Name: "Antonio", Surname: "Verdi"},
	}
}

func TestFilterPilots_EmptyQueryReturnsInputUnchanged(t *testing.T) {
	pilots := testRoster()

	for _, dim := range []SearchDimension{SearchByCallsign, SearchByFullname} {
		got := FilterPilots(pilots, "", dim)
		if len(got) != len(pilots) {
			t.Errorf("dimension %s: expected %d pilots, got %d", dim, len(pilots), len(got))
		}
		for i := range got {
			if got[i].ID != pilots[i].ID {
				t.Errorf("dimension %s: order changed at index %d", dim, i)
			}
		}
	}
}

func TestFilterPilots_CallsignCaseInsensitive(t *testing.T) {
	got := FilterPilots(testRoster(), "asx002", SearchByCallsign)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(got))
	}
	if got[0].Callsign != "ASX002" {
		t.Errorf("expected ASX002, got %s", got[0].Callsign)
	}
}

func TestFilterPilots_CallsignSubstring(t *testing.T) {
	got := FilterPilots(testRoster(), "asx", SearchByCallsign)
	if len(got) != 3 {
		t.Errorf("expected all 3 pilots to match, got %d", len(got))
	}
}

func TestFilterPilots_Fullname(t *testing.T) {
	got := FilterPilots(testRoster(), "laura b", SearchByFullname)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only Laura Bianchi, got %d matches", len(got))
	}

	// fullname dimension must not match callsigns
	got = FilterPilots(testRoster(), "ASX001", SearchByFullname)
	if len(got) != 0 {
		t.Errorf("expected no matches for a callsign on the fullname dimension, got %d", len(got))
	}
}

func TestFilterPilots_PreservesOrder(t *testing.T) {
	pilots := []gormModels.Pilot{
		{ID: "3", Callsign: "ASX003", Name: "Antonio", Surname: "Verdi"},
		{ID: "1", Callsign: "ASX001", Name: "Marco", Surname: "Rossi"},
	}

	got := FilterPilots(pilots, "asx", SearchByCallsign)
	if len(got) != 2 || got[0].ID != "3" || got[1].ID != "1" {
		t.Errorf("input order not preserved: %+v", got)
	}
}

func TestParseSearchDimension(t *testing.T) {
	if ParseSearchDimension("callsign") != SearchByCallsign {
		t.Error("expected callsign dimension")
	}
	if ParseSearchDimension("fullname") != SearchByFullname {
		t.Error("expected fullname dimension")
	}
	// unknown values fall back to fullname, like the dashboard default
	if ParseSearchDimension("") != SearchByFullname {
		t.Error("expected fullname fallback")
	}
}

func TestSummarize(t *testing.T) {
	pilots := testRoster()
	s := Summarize(pilots)

	if s.ActiveCount != 2 {
		t.Errorf("expected 2 active, got %d", s.ActiveCount)
	}
	if s.SuspendedCount != 1 {
		t.Errorf("expected 1 suspended, got %d", s.SuspendedCount)
	}
	if s.ActiveCount+s.SuspendedCount != len(pilots) {
		t.Errorf("counts do not partition the roster: %d + %d != %d",
			s.ActiveCount, s.SuspendedCount, len(pilots))
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.ActiveCount != 0 || s.SuspendedCount != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
}
