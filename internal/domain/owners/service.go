package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already registered")
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
	Name    string
	Email   string
	Phone   string
	Address string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Owner{}, ErrInvalidInput
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return Owner{}, ErrInvalidInput
	}

	// Unicidad por email.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Owner{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Owner{}, err
	}

	now := s.now()
	o := Owner{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	Name    *string
	Phone   *string
	Address *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Owner{}, ErrInvalidInput
		}
		o.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		o.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		o.Address = strings.TrimSpace(*in.Address)
	}
	o.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}
