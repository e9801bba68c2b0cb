package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic-records/internal/adapters/storage/memory"
	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/domain/records/details"
)

func seedRecord(id, petID string, t details.Type, d details.Detail, at time.Time) records.MedicalRecord {
	return records.MedicalRecord{
		ID:             id,
		PetID:          petID,
		ClinicID:       "clinic-1",
		Type:           t,
		Status:         records.StatusOf(d),
		VeterinarianID: "vet-1",
		Details:        d,
		RecordedAt:     at,
		UpdatedAt:      at,
	}
}

func TestRecordsRepo_CreateGetUpdate(t *testing.T) {
	repo := memory.NewRecordsRepo()
	ctx := context.Background()

	rec := seedRecord("rec-1", "pet-1", details.TypeWeight, details.Weight{Value: 4.2, Unit: "kg"}, time.Now())
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, rec); err == nil {
		t.Fatal("duplicate create should fail")
	}

	got, err := repo.GetByID(ctx, "rec-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Details.(details.Weight).Value != 4.2 {
		t.Fatalf("stored detail mismatch: %+v", got.Details)
	}

	got.Notes = "pesada de control"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.GetByID(ctx, "rec-1")
	if got.Notes != "pesada de control" {
		t.Fatalf("update not persisted: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("missing record: got %v", err)
	}
	if err := repo.Update(ctx, seedRecord("nope", "pet-1", details.TypeWeight, details.Weight{Value: 1, Unit: "kg"}, time.Now())); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("update missing: got %v", err)
	}
}

func TestRecordsRepo_ListByPet(t *testing.T) {
	repo := memory.NewRecordsRepo()
	ctx := context.Background()
	base := time.Now().Add(-72 * time.Hour)

	seed := []records.MedicalRecord{
		seedRecord("rec-1", "pet-1", details.TypeWeight, details.Weight{Value: 4.0, Unit: "kg"}, base),
		seedRecord("rec-2", "pet-1", details.TypeWeight, details.Weight{Value: 4.2, Unit: "kg"}, base.Add(24*time.Hour)),
		seedRecord("rec-3", "pet-1", details.TypeConsultation, details.Consultation{Reason: "control"}, base.Add(48*time.Hour)),
		seedRecord("rec-4", "pet-2", details.TypeWeight, details.Weight{Value: 9.8, Unit: "kg"}, base),
	}
	for _, rec := range seed {
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("seed %s: %v", rec.ID, err)
		}
	}

	out, err := repo.ListByPet(ctx, "pet-1", records.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
	// Más reciente primero.
	if out[0].ID != "rec-3" || out[2].ID != "rec-1" {
		t.Fatalf("wrong order: %s,%s,%s", out[0].ID, out[1].ID, out[2].ID)
	}

	out, _ = repo.ListByPet(ctx, "pet-1", records.ListFilter{Types: []details.Type{details.TypeWeight}})
	if len(out) != 2 {
		t.Fatalf("type filter: expected 2, got %d", len(out))
	}

	from := base.Add(12 * time.Hour)
	to := base.Add(36 * time.Hour)
	out, _ = repo.ListByPet(ctx, "pet-1", records.ListFilter{From: &from, To: &to})
	if len(out) != 1 || out[0].ID != "rec-2" {
		t.Fatalf("window filter: got %+v", out)
	}

	out, _ = repo.ListByPet(ctx, "pet-1", records.ListFilter{Limit: 1})
	if len(out) != 1 || out[0].ID != "rec-3" {
		t.Fatalf("limit: got %+v", out)
	}
}
