package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/domain/records/details"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) error {
	detail, err := details.Marshal(rec.Details)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medical_records (
			id, pet_id, clinic_id,
			type, status,
			veterinarian_id, notes,
			details,
			corrected_from_id, correction_reason,
			recorded_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rec.ID,
		rec.PetID,
		rec.ClinicID,
		string(rec.Type),
		rec.Status,
		rec.VeterinarianID,
		rec.Notes,
		detail,
		nullable(rec.CorrectedFromID),
		rec.CorrectionReason,
		rec.RecordedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *RecordsRepo) Update(ctx context.Context, rec records.MedicalRecord) error {
	detail, err := details.Marshal(rec.Details)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET status = $2, notes = $3, details = $4, updated_at = $5
		WHERE id = $1
	`,
		rec.ID,
		rec.Status,
		rec.Notes,
		detail,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.MedicalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return records.MedicalRecord{}, records.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, pet_id, clinic_id,
			type, status,
			veterinarian_id, notes,
			details,
			corrected_from_id, correction_reason,
			recorded_at, updated_at
		FROM medical_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return records.MedicalRecord{}, records.ErrNotFound
	}
	return rec, err
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID string, filter records.ListFilter) ([]records.MedicalRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, pet_id, clinic_id,
			type, status,
			veterinarian_id, notes,
			details,
			corrected_from_id, correction_reason,
			recorded_at, updated_at
		FROM medical_records
		WHERE pet_id = $1
	`)

	args := []any{petID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND recorded_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND recorded_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY recorded_at DESC LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (records.MedicalRecord, error) {
	var (
		rec           records.MedicalRecord
		typ           string
		detail        []byte
		correctedFrom sql.NullString
	)
	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.ClinicID,
		&typ,
		&rec.Status,
		&rec.VeterinarianID,
		&rec.Notes,
		&detail,
		&correctedFrom,
		&rec.CorrectionReason,
		&rec.RecordedAt,
		&rec.UpdatedAt,
	); err != nil {
		return records.MedicalRecord{}, err
	}

	d, err := details.Unmarshal(detail)
	if err != nil {
		return records.MedicalRecord{}, err
	}

	rec.Type = details.Type(typ)
	rec.Details = d
	if correctedFrom.Valid {
		rec.CorrectedFromID = correctedFrom.String
	}
	return rec, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
