package attendees

import (
	"context"
	"testing"
	"time"

	"github.com/gatepass/backend/internal/models"
)

func newAttendee(code string) *models.Attendee {
	return &models.Attendee{
		Name:           "Test",
		ManualCode:     code,
		GateStatus:     models.StatusOut,
		WashroomStatus: models.StatusOut,
	}
}

func TestMemoryStore_InsertAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := newAttendee("AAAAAA")
	b := newAttendee("BBBBBB")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := store.Insert(ctx, b); err != nil {
		t.Fatalf("insert b: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("both inserts got id %s", a.ID.Hex())
	}
}

func TestMemoryStore_InsertDuplicateCode(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Insert(ctx, newAttendee("SAME01")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Insert(ctx, newAttendee("SAME01")); err != ErrDuplicateCode {
		t.Errorf("second insert err = %v, want ErrDuplicateCode", err)
	}
}

func TestMemoryStore_ToggleAlternates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := newAttendee("TOGGLE")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("insert: %v", err)
	}
	id := a.ID.Hex()

	first, err := store.Toggle(ctx, id, CheckpointGate, time.Now())
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if first.GateStatus != models.StatusIn {
		t.Errorf("after first toggle gate = %q, want IN", first.GateStatus)
	}
	if first.LastGateUpdate == nil {
		t.Error("first toggle did not stamp lastGateUpdate")
	}
	if first.WashroomStatus != models.StatusOut {
		t.Errorf("gate toggle changed washroom to %q", first.WashroomStatus)
	}

	second, err := store.Toggle(ctx, id, CheckpointGate, time.Now().Add(time.Second))
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.GateStatus != models.StatusOut {
		t.Errorf("after second toggle gate = %q, want OUT", second.GateStatus)
	}
	if second.LastGateUpdate == nil || !second.LastGateUpdate.After(*first.LastGateUpdate) {
		t.Error("second toggle did not advance lastGateUpdate")
	}
}

func TestMemoryStore_LookupsAndNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := newAttendee("FIND01")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if got, err := store.GetByManualCode(ctx, "FIND01"); err != nil || got.ID != a.ID {
		t.Errorf("GetByManualCode = (%v, %v), want record %s", got, err, a.ID.Hex())
	}
	if _, err := store.GetByID(ctx, "0123456789abcdef01234567"); err != ErrNotFound {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetByManualCode(ctx, "NOPE00"); err != ErrNotFound {
		t.Errorf("unknown code err = %v, want ErrNotFound", err)
	}
	if _, err := store.Toggle(ctx, "0123456789abcdef01234567", CheckpointGate, time.Now()); err != ErrNotFound {
		t.Errorf("toggle unknown id err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	first := newAttendee("ORDER1")
	second := newAttendee("ORDER2")
	if err := store.Insert(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := store.Insert(ctx, second); err != nil {
		t.Fatal(err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("list not newest first: %s, %s", list[0].ManualCode, list[1].ManualCode)
	}
}

func TestMemoryStore_UpdateAppliesOnlyProvided(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := newAttendee("UPDT01")
	a.Phone = "111"
	if err := store.Insert(ctx, a); err != nil {
		t.Fatal(err)
	}

	name := "Renamed"
	ref := 7.0
	got, err := store.Update(ctx, a.ID.Hex(), UpdateParams{Name: &name, ReferredBy: &ref})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", got.Name)
	}
	if got.Phone != "111" {
		t.Errorf("phone changed to %q", got.Phone)
	}
	if got.ReferredBy == nil || *got.ReferredBy != 7 {
		t.Errorf("referredBy = %v, want 7", got.ReferredBy)
	}
	if got.ManualCode != "UPDT01" {
		t.Errorf("manualCode changed to %q", got.ManualCode)
	}
}

func TestMemoryStore_SetQRImageURL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := newAttendee("QRURL1")
	if err := store.Insert(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := store.SetQRImageURL(ctx, a.ID.Hex(), "https://img.example/qr.png"); err != nil {
		t.Fatalf("set url: %v", err)
	}
	got, err := store.GetByID(ctx, a.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if got.QRImageURL != "https://img.example/qr.png" {
		t.Errorf("qrImageUrl = %q", got.QRImageURL)
	}
	if err := store.SetQRImageURL(ctx, "0123456789abcdef01234567", "x"); err != ErrNotFound {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
}
