package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type DoctorServicer interface {
	CreateDoctor(ctx context.Context, doctor *model.Doctor) error
	GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *model.Doctor) error
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
	ListDoctors(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error)
}

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDoctor(ctx context.Context, doctor *model.Doctor) error {
	if err := s.validateDoctor(doctor); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, doctor *model.Doctor) error {
	if err := s.validateDoctor(doctor); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

func (s *Service) ListDoctors(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// validateDoctor checks the availability window. The schema stores weekdays
// as plain integers; 0-6 (Sunday-Saturday) is the intended domain and is
// enforced here at the boundary.
func (s *Service) validateDoctor(doctor *model.Doctor) error {
	if doctor.ClinicID == uuid.Nil {
		return apperrors.BadRequest("clinic ID is required", nil)
	}
	if doctor.Name == "" {
		return apperrors.BadRequest("doctor name is required", nil)
	}
	if doctor.Specialty == "" {
		return apperrors.BadRequest("doctor specialty is required", nil)
	}
	if doctor.AvailableFromWeekDay < 0 || doctor.AvailableFromWeekDay > 6 ||
		doctor.AvailableToWeekDay < 0 || doctor.AvailableToWeekDay > 6 {
		return apperrors.BadRequest("week days must be between 0 and 6", nil)
	}
	if doctor.AvailableFromWeekDay > doctor.AvailableToWeekDay {
		return apperrors.BadRequest("available-from week day must not be after available-to", nil)
	}
	if doctor.AvailableFromTime == "" || doctor.AvailableToTime == "" {
		return apperrors.BadRequest("availability times are required", nil)
	}
	if doctor.AvailableFromTime >= doctor.AvailableToTime {
		return apperrors.BadRequest("available-from time must be before available-to", nil)
	}
	if doctor.AppointmentPriceInCents < 0 {
		return apperrors.BadRequest("appointment price must not be negative", nil)
	}
	return nil
}
