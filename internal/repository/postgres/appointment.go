package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, clinic_id, doctor_id, patient_id, appointment_date, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`
	appointment.ID = r.newID()
	appointment.CreatedAt = r.now()
	appointment.UpdatedAt = appointment.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.ClinicID,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.Date,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "appointment")
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, clinic_id, doctor_id, patient_id, appointment_date, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, wrapError(err, "appointment")
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET appointment_date = $1, updated_at = $2
		WHERE id = $3
	`
	appointment.UpdatedAt = r.now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.Date,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return wrapError(err, "appointment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "appointment")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "appointment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "appointment")
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT id, clinic_id, doctor_id, patient_id, appointment_date, created_at, updated_at
		FROM appointments
		WHERE clinic_id = $1
		AND ($2::uuid IS NULL OR doctor_id = $2)
		AND ($3::uuid IS NULL OR patient_id = $3)
		AND ($4::timestamp IS NULL OR appointment_date >= $4)
		AND ($5::timestamp IS NULL OR appointment_date <= $5)
		ORDER BY appointment_date
	`
	var doctorID, patientID interface{}
	var startDate, endDate interface{}
	if filters != nil {
		if filters.DoctorID != uuid.Nil {
			doctorID = filters.DoctorID
		}
		if filters.PatientID != uuid.Nil {
			patientID = filters.PatientID
		}
		if !filters.StartDate.IsZero() {
			startDate = filters.StartDate
		}
		if !filters.EndDate.IsZero() {
			endDate = filters.EndDate
		}
	}

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, clinicID, doctorID, patientID, startDate, endDate); err != nil {
		return nil, wrapError(err, "appointments")
	}
	return appointments, nil
}
