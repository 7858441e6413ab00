package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type PatientServicer interface {
	CreatePatient(ctx context.Context, patient *model.Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, patient *model.Patient) error
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) error {
	if err := s.validatePatient(patient); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, patient *model.Patient) error {
	if err := s.validatePatient(patient); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) validatePatient(patient *model.Patient) error {
	if patient.ClinicID == uuid.Nil {
		return apperrors.BadRequest("clinic ID is required", nil)
	}
	if patient.Name == "" {
		return apperrors.BadRequest("patient name is required", nil)
	}
	if patient.Email == "" {
		return apperrors.BadRequest("patient email is required", nil)
	}
	if patient.PhoneNumber == "" {
		return apperrors.BadRequest("patient phone number is required", nil)
	}
	if !patient.Sex.Valid() {
		return apperrors.BadRequest(fmt.Sprintf("invalid sex %q: must be male or female", patient.Sex), nil)
	}
	return nil
}
