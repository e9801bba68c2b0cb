package clinics

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byID      map[string]Clinic
	byLicense map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:      make(map[string]Clinic),
		byLicense: make(map[string]string),
	}
}

func (r *testRepo) Create(_ context.Context, c Clinic) error {
	r.byID[c.ID] = c
	r.byLicense[c.LicenseNumber] = c.ID
	return nil
}

func (r *testRepo) Update(_ context.Context, c Clinic) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Clinic, error) {
	c, ok := r.byID[id]
	if !ok {
		return Clinic{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) GetByLicense(_ context.Context, license string) (Clinic, error) {
	id, ok := r.byLicense[license]
	if !ok {
		return Clinic{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *testRepo) List(_ context.Context) ([]Clinic, error) {
	out := make([]Clinic, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func TestService_Create(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateInput{
		Name:          "  Clínica San Roque ",
		LicenseNumber: "mv-1234",
		Email:         "contacto@sanroque.vet",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("clinic should get an id")
	}
	if c.Name != "Clínica San Roque" {
		t.Fatalf("name not trimmed: %q", c.Name)
	}
	if c.LicenseNumber != "MV-1234" {
		t.Fatalf("license not normalized: %q", c.LicenseNumber)
	}
}

func TestService_Create_DuplicateLicense(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	in := CreateInput{Name: "Clínica San Roque", LicenseNumber: "MV-1234"}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.Name = "Otra clínica"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrLicenseTaken) {
		t.Fatalf("got %v, want ErrLicenseTaken", err)
	}
}

func TestService_Update(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateInput{Name: "Clínica San Roque", LicenseNumber: "MV-1234"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	phone := "+54 11 5555-0000"
	got, err := svc.Update(ctx, c.ID, UpdateInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Phone != phone || got.Name != c.Name {
		t.Fatalf("partial update wrong: %+v", got)
	}

	blank := "  "
	if _, err := svc.Update(ctx, c.ID, UpdateInput{Name: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: got %v", err)
	}

	if _, err := svc.Update(ctx, "nope", UpdateInput{Phone: &phone}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing clinic: got %v", err)
	}
}
