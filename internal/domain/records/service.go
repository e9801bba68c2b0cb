package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/records/details"
	"vet-clinic-records/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("record not found")
	ErrNoLifecycle            = errors.New("record type has no lifecycle")
	ErrNotSurgery             = errors.New("record is not a surgery")
	ErrCorrectionNotPermitted = errors.New("correction not permitted")
)

type Service struct {
	repo    Repository
	pub     Publisher
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService arma el servicio de registros médicos. pub y m pueden ser nil
// (tests); el core funciona igual sin publicar ni medir.
func NewService(repo Repository, pub Publisher, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		pub:     pub,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) publish(ctx context.Context, e DomainEvent) {
	if s.pub != nil {
		s.pub.Publish(ctx, e)
	}
}

type CreateInput struct {
	ClinicID       string
	VeterinarianID string
	Notes          string
	Details        details.Detail
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (MedicalRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return MedicalRecord{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ClinicID) == "" || strings.TrimSpace(in.VeterinarianID) == "" {
		return MedicalRecord{}, ErrInvalidInput
	}
	if in.Details == nil {
		return MedicalRecord{}, ErrInvalidInput
	}
	if err := in.Details.Validate(); err != nil {
		return MedicalRecord{}, err
	}

	now := s.now()
	rec := MedicalRecord{
		ID:             uuid.NewString(),
		PetID:          petID,
		ClinicID:       strings.TrimSpace(in.ClinicID),
		Type:           in.Details.Type(),
		Status:         StatusOf(in.Details),
		VeterinarianID: strings.TrimSpace(in.VeterinarianID),
		Notes:          strings.TrimSpace(in.Notes),
		Details:        in.Details,
		RecordedAt:     now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}

	s.publish(ctx, RecordCreatedEvent{
		EventMeta: newMeta(now),
		RecordID:  rec.ID,
		PetID:     rec.PetID,
		ClinicID:  rec.ClinicID,
		Type:      rec.Type,
	})
	if s.metrics != nil {
		s.metrics.RecordCreated(string(rec.Type))
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicalRecord{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]MedicalRecord, error) {
	return s.repo.ListByPet(ctx, petID, filter)
}

// Update reemplaza el detalle completo con una edición operativa. El tipo de
// registro y el estado del ciclo de vida no pueden cambiar por esta vía; para
// eso están ApplyAction y las operaciones quirúrgicas.
func (s *Service) Update(ctx context.Context, id string, notes string, d details.Detail) (MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" || d == nil {
		return MedicalRecord{}, ErrInvalidInput
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, err
	}
	if d.Type() != rec.Type {
		return MedicalRecord{}, ErrInvalidInput
	}
	if StatusOf(d) != rec.Status {
		return MedicalRecord{}, ErrInvalidInput
	}
	if err := d.Validate(); err != nil {
		return MedicalRecord{}, err
	}

	rec.Details = d
	rec.Notes = strings.TrimSpace(notes)
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}
	return rec, nil
}

// ApplyAction avanza el ciclo de vida de la variante y refleja el nuevo
// estado en el agregado. Las variantes sin ciclo de vida fallan con
// ErrNoLifecycle.
func (s *Service) ApplyAction(ctx context.Context, id string, action details.Action) (MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicalRecord{}, ErrInvalidInput
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, err
	}

	now := s.now()
	var (
		updated details.Detail
		change  details.StatusChange
	)
	switch v := rec.Details.(type) {
	case details.Surgery:
		nv, ch, err := v.Apply(action, now)
		if err != nil {
			return MedicalRecord{}, err
		}
		updated, change = nv, ch
	case details.Hospitalization:
		nv, ch, err := v.Apply(action)
		if err != nil {
			return MedicalRecord{}, err
		}
		updated, change = nv, ch
	case details.Treatment:
		nv, ch, err := v.Apply(action)
		if err != nil {
			return MedicalRecord{}, err
		}
		updated, change = nv, ch
	default:
		return MedicalRecord{}, ErrNoLifecycle
	}

	rec.Details = updated
	rec.Status = change.New
	rec.UpdatedAt = now

	if err := s.repo.Update(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}

	s.publish(ctx, StatusChangedEvent{
		EventMeta:      newMeta(now),
		RecordID:       rec.ID,
		Type:           rec.Type,
		PreviousStatus: change.Previous,
		NewStatus:      change.New,
		VeterinarianID: rec.VeterinarianID,
	})
	if s.metrics != nil {
		s.metrics.StatusTransition(string(rec.Type), string(action))
	}
	return rec, nil
}

// ChangeOutcome fija el resultado de una cirugía en curso.
func (s *Service) ChangeOutcome(ctx context.Context, id string, outcome details.SurgeryOutcome) (MedicalRecord, error) {
	return s.updateSurgery(ctx, id, func(surg details.Surgery) (details.Surgery, error) {
		return surg.WithOutcome(outcome)
	})
}

// AddPostOpMedication agrega una medicación post-operatoria (solo crece).
func (s *Service) AddPostOpMedication(ctx context.Context, id string, m details.SurgeryMedication) (MedicalRecord, error) {
	return s.updateSurgery(ctx, id, func(surg details.Surgery) (details.Surgery, error) {
		return surg.AddPostOpMedication(m)
	})
}

// Reschedule mueve la fecha de una cirugía todavía agendada.
func (s *Service) Reschedule(ctx context.Context, id string, newDate time.Time) (MedicalRecord, error) {
	return s.updateSurgery(ctx, id, func(surg details.Surgery) (details.Surgery, error) {
		return surg.Reschedule(newDate, s.now())
	})
}

func (s *Service) updateSurgery(ctx context.Context, id string, op func(details.Surgery) (details.Surgery, error)) (MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicalRecord{}, ErrInvalidInput
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, err
	}
	surg, ok := rec.Details.(details.Surgery)
	if !ok {
		return MedicalRecord{}, ErrNotSurgery
	}

	updated, err := op(surg)
	if err != nil {
		return MedicalRecord{}, err
	}

	rec.Details = updated
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}
	return rec, nil
}

type CorrectInput struct {
	Reason         string
	VeterinarianID string
	Notes          string
	Details        details.Detail
}

// Correct crea un registro nuevo que corrige al original, si la variante lo
// permite. El original nunca se toca.
func (s *Service) Correct(ctx context.Context, originalID string, in CorrectInput) (MedicalRecord, error) {
	originalID = strings.TrimSpace(originalID)
	if originalID == "" || in.Details == nil {
		return MedicalRecord{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return MedicalRecord{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.VeterinarianID) == "" {
		return MedicalRecord{}, ErrInvalidInput
	}

	orig, err := s.repo.GetByID(ctx, originalID)
	if err != nil {
		return MedicalRecord{}, err
	}
	if err := in.Details.Validate(); err != nil {
		return MedicalRecord{}, err
	}

	ok, err := in.Details.CanCorrect(orig.Details)
	if err != nil {
		return MedicalRecord{}, err
	}
	if !ok {
		return MedicalRecord{}, ErrCorrectionNotPermitted
	}

	now := s.now()
	rec := MedicalRecord{
		ID:               uuid.NewString(),
		PetID:            orig.PetID,
		ClinicID:         orig.ClinicID,
		Type:             in.Details.Type(),
		Status:           StatusOf(in.Details),
		VeterinarianID:   strings.TrimSpace(in.VeterinarianID),
		Notes:            strings.TrimSpace(in.Notes),
		Details:          in.Details,
		CorrectedFromID:  orig.ID,
		CorrectionReason: strings.TrimSpace(in.Reason),
		RecordedAt:       now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}

	s.publish(ctx, CorrectionCreatedEvent{
		EventMeta:   newMeta(now),
		CorrectedID: rec.ID,
		OriginalID:  orig.ID,
		Reason:      rec.CorrectionReason,
	})
	s.publish(ctx, RecordCorrectedEvent{
		EventMeta:   newMeta(now),
		OriginalID:  orig.ID,
		CorrectedID: rec.ID,
		Reason:      rec.CorrectionReason,
	})
	if s.metrics != nil {
		s.metrics.CorrectionCreated()
	}
	return rec, nil
}
