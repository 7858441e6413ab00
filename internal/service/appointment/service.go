package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type AppointmentServicer interface {
	CreateAppointment(ctx context.Context, appointment *model.Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *model.Appointment) error
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error)
}

type Service struct {
	repo        repository.AppointmentRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, doctorRepo repository.DoctorRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

// CreateAppointment writes the appointment after checking that the doctor
// and the patient belong to the appointment's clinic. The schema does not
// declare that constraint, so it is enforced here.
func (s *Service) CreateAppointment(ctx context.Context, appointment *model.Appointment) error {
	if appointment.ClinicID == uuid.Nil {
		return apperrors.BadRequest("clinic ID is required", nil)
	}
	if appointment.Date.IsZero() {
		return apperrors.BadRequest("appointment date is required", nil)
	}

	doctor, err := s.doctorRepo.Get(ctx, appointment.DoctorID)
	if err != nil {
		return fmt.Errorf("failed to load doctor: %w", err)
	}
	if doctor.ClinicID != appointment.ClinicID {
		return apperrors.BadRequest("doctor belongs to a different clinic", nil)
	}

	patient, err := s.patientRepo.Get(ctx, appointment.PatientID)
	if err != nil {
		return fmt.Errorf("failed to load patient: %w", err)
	}
	if patient.ClinicID != appointment.ClinicID {
		return apperrors.BadRequest("patient belongs to a different clinic", nil)
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, appointment *model.Appointment) error {
	if appointment.Date.IsZero() {
		return apperrors.BadRequest("appointment date is required", nil)
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (s *Service) ListAppointments(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx, clinicID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
