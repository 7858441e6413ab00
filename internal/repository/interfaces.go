package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/model"
)

// All repository interfaces in one file
type (
	// UserRepository stores identity records on behalf of the auth provider.
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		Delete(ctx context.Context, id string) error
	}

	// SessionRepository resolves and stores login sessions.
	SessionRepository interface {
		Create(ctx context.Context, session *model.Session) error
		GetByToken(ctx context.Context, token string) (*model.SessionUser, error)
		Delete(ctx context.Context, id string) error
		DeleteExpired(ctx context.Context, before time.Time) (int64, error)
	}

	// AccountRepository stores linked credential/provider records.
	AccountRepository interface {
		Create(ctx context.Context, account *model.Account) error
		ListForUser(ctx context.Context, userID string) ([]*model.Account, error)
		Delete(ctx context.Context, id string) error
	}

	// VerificationRepository stores pending verification challenges.
	VerificationRepository interface {
		Create(ctx context.Context, v *model.Verification) error
		GetByIdentifier(ctx context.Context, identifier string) (*model.Verification, error)
		DeleteExpired(ctx context.Context, before time.Time) (int64, error)
	}

	ClinicRepository interface {
		// CreateWithOwner inserts the clinic and the creator's membership in
		// one transaction.
		CreateWithOwner(ctx context.Context, clinic *model.Clinic, userID string) error
		Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
		Update(ctx context.Context, clinic *model.Clinic) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListForUser(ctx context.Context, userID string) ([]*model.Clinic, error)
		AddMember(ctx context.Context, userID string, clinicID uuid.UUID) error
		RemoveMember(ctx context.Context, userID string, clinicID uuid.UUID) error
		IsMember(ctx context.Context, userID string, clinicID uuid.UUID) (bool, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	}
)
