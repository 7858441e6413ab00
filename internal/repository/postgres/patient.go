package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, clinic_id, name, email, phone_number, sex, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`
	patient.ID = r.newID()
	patient.CreatedAt = r.now()
	patient.UpdatedAt = patient.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.ClinicID,
		patient.Name,
		patient.Email,
		patient.PhoneNumber,
		patient.Sex,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "patient")
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, clinic_id, name, email, phone_number, sex, created_at, updated_at
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, wrapError(err, "patient")
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, email = $2, phone_number = $3, sex = $4, updated_at = $5
		WHERE id = $6
	`
	patient.UpdatedAt = r.now()

	result, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Email,
		patient.PhoneNumber,
		patient.Sex,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return wrapError(err, "patient")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "patient")
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM patients WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "patient")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "patient")
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	query := `
		SELECT id, clinic_id, name, email, phone_number, sex, created_at, updated_at
		FROM patients
		WHERE clinic_id = $1
		ORDER BY name
	`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, clinicID); err != nil {
		return nil, wrapError(err, "patients")
	}
	return patients, nil
}
