package clinic

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type ClinicServicer interface {
	CreateForUser(ctx context.Context, userID, name string) (*model.Clinic, error)
	GetClinic(ctx context.Context, userID string, id uuid.UUID) (*model.Clinic, error)
	UpdateClinic(ctx context.Context, userID string, id uuid.UUID, name string) (*model.Clinic, error)
	DeleteClinic(ctx context.Context, userID string, id uuid.UUID) error
	ListForUser(ctx context.Context, userID string) ([]*model.Clinic, error)
	RequireMembership(ctx context.Context, userID string, clinicID uuid.UUID) error
}

type Service struct {
	repo repository.ClinicRepository
}

func NewService(repo repository.ClinicRepository) *Service {
	return &Service{repo: repo}
}

// CreateForUser creates the clinic and makes the caller its first member.
// Both rows land in one transaction; a failure on either leaves nothing
// behind.
func (s *Service) CreateForUser(ctx context.Context, userID, name string) (*model.Clinic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.BadRequest("clinic name is required", nil)
	}
	if len(name) > 255 {
		return nil, apperrors.BadRequest("clinic name too long", nil)
	}

	clinic := &model.Clinic{Name: name}
	if err := s.repo.CreateWithOwner(ctx, clinic, userID); err != nil {
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}
	return clinic, nil
}

func (s *Service) GetClinic(ctx context.Context, userID string, id uuid.UUID) (*model.Clinic, error) {
	if err := s.RequireMembership(ctx, userID, id); err != nil {
		return nil, err
	}

	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return clinic, nil
}

func (s *Service) UpdateClinic(ctx context.Context, userID string, id uuid.UUID, name string) (*model.Clinic, error) {
	if err := s.RequireMembership(ctx, userID, id); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.BadRequest("clinic name is required", nil)
	}

	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	clinic.Name = name
	if err := s.repo.Update(ctx, clinic); err != nil {
		return nil, fmt.Errorf("failed to update clinic: %w", err)
	}
	return clinic, nil
}

// DeleteClinic removes the clinic; the store cascades to doctors, patients,
// appointments and memberships.
func (s *Service) DeleteClinic(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.RequireMembership(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete clinic: %w", err)
	}
	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]*model.Clinic, error) {
	clinics, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	return clinics, nil
}

// RequireMembership rejects callers that are not members of the clinic.
func (s *Service) RequireMembership(ctx context.Context, userID string, clinicID uuid.UUID) error {
	member, err := s.repo.IsMember(ctx, userID, clinicID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return apperrors.Forbidden("not a member of this clinic", nil)
	}
	return nil
}
