package clinics

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrLicenseTaken = errors.New("license number already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name          string
	LicenseNumber string
	Address       string
	Phone         string
	Email         string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Clinic, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Clinic{}, ErrInvalidInput
	}
	license := strings.ToUpper(strings.TrimSpace(in.LicenseNumber))
	if license == "" {
		return Clinic{}, ErrInvalidInput
	}

	// Unicidad por matrícula.
	if _, err := s.repo.GetByLicense(ctx, license); err == nil {
		return Clinic{}, ErrLicenseTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Clinic{}, err
	}

	now := s.now()
	c := Clinic{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		LicenseNumber: license,
		Address:       strings.TrimSpace(in.Address),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Clinic{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Clinic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Clinic{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Clinic, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Clinic, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return Clinic{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Clinic{}, ErrInvalidInput
		}
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return Clinic{}, err
	}
	return c, nil
}
