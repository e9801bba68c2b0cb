package clinics

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("clinic not found")

type Repository interface {
	Create(ctx context.Context, c Clinic) error
	Update(ctx context.Context, c Clinic) error
	GetByID(ctx context.Context, id string) (Clinic, error)
	GetByLicense(ctx context.Context, license string) (Clinic, error)
	List(ctx context.Context) ([]Clinic, error)
}
