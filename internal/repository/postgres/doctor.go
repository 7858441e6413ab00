package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			id, clinic_id, name, avatar_image_url, specialty,
			available_from_week_day, available_to_week_day,
			available_from_time, available_to_time,
			appointment_price_in_cents, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`
	doctor.ID = r.newID()
	doctor.CreatedAt = r.now()
	doctor.UpdatedAt = doctor.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.ClinicID,
		doctor.Name,
		doctor.AvatarImageURL,
		doctor.Specialty,
		doctor.AvailableFromWeekDay,
		doctor.AvailableToWeekDay,
		doctor.AvailableFromTime,
		doctor.AvailableToTime,
		doctor.AppointmentPriceInCents,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "doctor")
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT
			id, clinic_id, name, avatar_image_url, specialty,
			available_from_week_day, available_to_week_day,
			available_from_time, available_to_time,
			appointment_price_in_cents, created_at, updated_at
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, wrapError(err, "doctor")
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET name = $1, avatar_image_url = $2, specialty = $3,
			available_from_week_day = $4, available_to_week_day = $5,
			available_from_time = $6, available_to_time = $7,
			appointment_price_in_cents = $8, updated_at = $9
		WHERE id = $10
	`
	doctor.UpdatedAt = r.now()

	result, err := r.db.ExecContext(ctx, query,
		doctor.Name,
		doctor.AvatarImageURL,
		doctor.Specialty,
		doctor.AvailableFromWeekDay,
		doctor.AvailableToWeekDay,
		doctor.AvailableFromTime,
		doctor.AvailableToTime,
		doctor.AppointmentPriceInCents,
		doctor.UpdatedAt,
		doctor.ID,
	)
	if err != nil {
		return wrapError(err, "doctor")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "doctor")
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM doctors WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "doctor")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "doctor")
	}
	return nil
}

func (r *doctorRepository) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	query := `
		SELECT
			id, clinic_id, name, avatar_image_url, specialty,
			available_from_week_day, available_to_week_day,
			available_from_time, available_to_time,
			appointment_price_in_cents, created_at, updated_at
		FROM doctors
		WHERE clinic_id = $1
		ORDER BY name
	`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query, clinicID); err != nil {
		return nil, wrapError(err, "doctors")
	}
	return doctors, nil
}
