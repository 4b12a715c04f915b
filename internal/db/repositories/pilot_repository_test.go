package repositories

import (
	"context"
	"testing"
	"time"

	gormModels "asx-vms/rosterd/internal/models/gorm"
	"asx-vms/rosterd/internal/roster"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.Pilot{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	if err := db.Exec("CREATE UNIQUE INDEX idx_pilots_callsign_active ON pilots(callsign) WHERE suspended = 0").Error; err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}

	return db
}

func TestInsert_DuplicateActiveCallsignMapsToRosterError(t *testing.T) {
	repo := NewPilotRepository(setupTestDB(t))
	ctx := context.Background()

	first := &gormModels.Pilot{Callsign: "ASX001", Name: "Marco", Surname: "Rossi"}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	second := &gormModels.Pilot{Callsign: "ASX001", Name: "Other", Surname: "Pilot"}
	err := repo.Insert(ctx, second)
	if !roster.IsKind(err, roster.ErrKindDuplicateActiveCallsign) {
		t.Fatalf("Expected DuplicateActiveCallsignError from the unique index, got %v", err)
	}
}

func TestInsert_SuspendedHolderDoesNotBlockInsert(t *testing.T) {
	repo := NewPilotRepository(setupTestDB(t))
	ctx := context.Background()

	reason := "inactivity"
	date := time.Now().UTC()
	holder := &gormModels.Pilot{
		Callsign:         "ASX001",
		Name:             "Marco",
		Surname:          "Rossi",
		Suspended:        true,
		SuspensionReason: &reason,
		SuspensionDate:   &date,
	}
	if err := repo.Insert(ctx, holder); err != nil {
		t.Fatalf("suspended insert failed: %v", err)
	}

	// the index only covers active rows
	fresh := &gormModels.Pilot{Callsign: "ASX001", Name: "Laura", Surname: "Bianchi"}
	if err := repo.Insert(ctx, fresh); err != nil {
		t.Fatalf("insert alongside a suspended holder must pass, got %v", err)
	}
}

func TestFindByCallsign_StatusScoping(t *testing.T) {
	repo := NewPilotRepository(setupTestDB(t))
	ctx := context.Background()

	reason := "inactivity"
	date := time.Now().UTC()
	if err := repo.Insert(ctx, &gormModels.Pilot{
		Callsign: "ASX002", Name: "Laura", Surname: "Bianchi",
		Suspended: true, SuspensionReason: &reason, SuspensionDate: &date,
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	active := false
	got, err := repo.FindByCallsign(ctx, "ASX002", &active)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != nil {
		t.Errorf("active-scoped lookup must miss a suspended record, got %+v", got)
	}

	suspended := true
	got, err = repo.FindByCallsign(ctx, "ASX002", &suspended)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got == nil || got.Callsign != "ASX002" {
		t.Errorf("suspended-scoped lookup must find the record, got %+v", got)
	}

	got, err = repo.FindByCallsign(ctx, "ASX002", nil)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got == nil {
		t.Error("unscoped lookup must find the record regardless of state")
	}
}

func TestApplyUpdates_UnknownIDIsNotFound(t *testing.T) {
	repo := NewPilotRepository(setupTestDB(t))

	err := repo.ApplyUpdates(context.Background(), "no-such-id", map[string]interface{}{"name": "X"})
	if !roster.IsKind(err, roster.ErrKindNotFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestList_OrderedByCallsign(t *testing.T) {
	repo := NewPilotRepository(setupTestDB(t))
	ctx := context.Background()

	for _, callsign := range []string{"ASX930", "ASX001", "ASX250"} {
		if err := repo.Insert(ctx, &gormModels.Pilot{Callsign: callsign, Name: "N", Surname: "S"}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	pilots, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"ASX001", "ASX250", "ASX930"}
	if len(pilots) != len(want) {
		t.Fatalf("expected %d pilots, got %d", len(want), len(pilots))
	}
	for i, callsign := range want {
		if pilots[i].Callsign != callsign {
			t.Errorf("position %d: want %s, got %s", i, callsign, pilots[i].Callsign)
		}
	}
}

func TestDelete_RemovesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPilotRepository(db)
	ctx := context.Background()

	pilot := &gormModels.Pilot{Callsign: "ASX001", Name: "Marco", Surname: "Rossi"}
	if err := repo.Insert(ctx, pilot); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := repo.Delete(ctx, pilot.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, pilot.ID); !roster.IsKind(err, roster.ErrKindNotFound) {
		t.Errorf("Expected NotFoundError after delete, got %v", err)
	}

	if err := repo.Delete(ctx, pilot.ID); !roster.IsKind(err, roster.ErrKindNotFound) {
		t.Errorf("Expected NotFoundError on double delete, got %v", err)
	}
}
