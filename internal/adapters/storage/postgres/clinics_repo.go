package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vet-clinic-records/internal/domain/clinics"
)

type ClinicsRepo struct {
	db *sql.DB
}

func NewClinicsRepo(db *sql.DB) *ClinicsRepo {
	return &ClinicsRepo{db: db}
}

func (r *ClinicsRepo) Create(ctx context.Context, c clinics.Clinic) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clinics (
			id, name, license_number, address, phone, email,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.Name,
		c.LicenseNumber,
		c.Address,
		c.Phone,
		c.Email,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ClinicsRepo) Update(ctx context.Context, c clinics.Clinic) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clinics
		SET name = $2, address = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Address,
		c.Phone,
		c.Email,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return clinics.ErrNotFound
	}
	return nil
}

func (r *ClinicsRepo) GetByID(ctx context.Context, id string) (clinics.Clinic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clinics.Clinic{}, clinics.ErrNotFound
	}
	return r.getBy(ctx, "id", id)
}

func (r *ClinicsRepo) GetByLicense(ctx context.Context, license string) (clinics.Clinic, error) {
	return r.getBy(ctx, "license_number", license)
}

func (r *ClinicsRepo) getBy(ctx context.Context, column, value string) (clinics.Clinic, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, license_number, address, phone, email, created_at, updated_at
		FROM clinics
		WHERE `+column+` = $1
	`, value)

	var c clinics.Clinic
	if err := row.Scan(&c.ID, &c.Name, &c.LicenseNumber, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return clinics.Clinic{}, clinics.ErrNotFound
		}
		return clinics.Clinic{}, err
	}
	return c, nil
}

func (r *ClinicsRepo) List(ctx context.Context) ([]clinics.Clinic, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, license_number, address, phone, email, created_at, updated_at
		FROM clinics
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinics.Clinic, 0)
	for rows.Next() {
		var c clinics.Clinic
		if err := rows.Scan(&c.ID, &c.Name, &c.LicenseNumber, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
