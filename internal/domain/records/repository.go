package records

import (
	"context"
	"time"

	"vet-clinic-records/internal/domain/records/details"
)

type Repository interface {
	Create(ctx context.Context, rec MedicalRecord) error
	Update(ctx context.Context, rec MedicalRecord) error
	GetByID(ctx context.Context, id string) (MedicalRecord, error)
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]MedicalRecord, error)
}

type ListFilter struct {
	Types []details.Type
	From  *time.Time
	To    *time.Time
	Limit int
}
