package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/records"
)

type recordsRepo struct {
	mu   sync.RWMutex
	byID map[string]records.MedicalRecord
}

func NewRecordsRepo() records.Repository {
	return &recordsRepo{
		byID: make(map[string]records.MedicalRecord),
	}
}

func (r *recordsRepo) Create(ctx context.Context, rec records.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}

	r.byID[rec.ID] = rec
	return nil
}

func (r *recordsRepo) Update(ctx context.Context, rec records.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return records.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *recordsRepo) GetByID(ctx context.Context, id string) (records.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return records.MedicalRecord{}, records.ErrNotFound
	}
	return rec, nil
}

func (r *recordsRepo) ListByPet(ctx context.Context, petID string, filter records.ListFilter) ([]records.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]records.MedicalRecord, 0)

	for _, rec := range r.byID {
		if rec.PetID != petID {
			continue
		}

		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if rec.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		if filter.From != nil && rec.RecordedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.RecordedAt.After(*filter.To) {
			continue
		}

		out = append(out, rec)
	}

	// Más reciente primero.
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
