package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/clinics"
)

type clinicsRepo struct {
	mu   sync.RWMutex
	byID map[string]clinics.Clinic
}

func NewClinicsRepo() clinics.Repository {
	return &clinicsRepo{
		byID: make(map[string]clinics.Clinic),
	}
}

func (r *clinicsRepo) Create(ctx context.Context, c clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("clinic id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("clinic already exists")
	}

	r.byID[c.ID] = c
	return nil
}

func (r *clinicsRepo) Update(ctx context.Context, c clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return clinics.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clinicsRepo) GetByID(ctx context.Context, id string) (clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clinics.Clinic{}, clinics.ErrNotFound
	}
	return c, nil
}

func (r *clinicsRepo) GetByLicense(ctx context.Context, license string) (clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.LicenseNumber == license {
			return c, nil
		}
	}
	return clinics.Clinic{}, clinics.ErrNotFound
}

func (r *clinicsRepo) List(ctx context.Context) ([]clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clinics.Clinic, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
