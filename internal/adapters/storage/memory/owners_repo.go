package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/owners"
)

type ownersRepo struct {
	mu   sync.RWMutex
	byID map[string]owners.Owner
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		byID: make(map[string]owners.Owner),
	}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("owner already exists")
	}

	r.byID[o.ID] = o
	return nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.byID {
		if o.Email == email {
			return o, nil
		}
	}
	return owners.Owner{}, owners.ErrNotFound
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
