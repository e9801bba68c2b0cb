package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vet-clinic-records/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (
			id, name, email, phone, address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		o.ID,
		o.Name,
		o.Email,
		o.Phone,
		o.Address,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET name = $2, phone = $3, address = $4, updated_at = $5
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		o.Phone,
		o.Address,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, owners.ErrNotFound
	}
	return r.getBy(ctx, "id", id)
}

func (r *OwnersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	return r.getBy(ctx, "email", email)
}

func (r *OwnersRepo) getBy(ctx context.Context, column, value string) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM owners
		WHERE `+column+` = $1
	`, value)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM owners
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
