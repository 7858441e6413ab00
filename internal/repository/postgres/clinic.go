package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type clinicRepository struct {
	BaseRepository
}

func NewClinicRepository(base BaseRepository) repository.ClinicRepository {
	return &clinicRepository{base}
}

// CreateWithOwner inserts the clinic row and the creator's membership row in
// one transaction. Either both land or neither does.
func (r *clinicRepository) CreateWithOwner(ctx context.Context, clinic *model.Clinic, userID string) error {
	clinic.ID = r.newID()
	clinic.CreatedAt = r.now()
	clinic.UpdatedAt = clinic.CreatedAt

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		clinicQuery := `
			INSERT INTO clinics (id, name, created_at, updated_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, clinicQuery,
			clinic.ID, clinic.Name, clinic.CreatedAt, clinic.UpdatedAt,
		); err != nil {
			return err
		}

		memberQuery := `
			INSERT INTO users_to_clinics (user_id, clinic_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, memberQuery,
			userID, clinic.ID, clinic.CreatedAt, clinic.UpdatedAt,
		); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return wrapError(err, "clinic")
	}
	return nil
}

func (r *clinicRepository) Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`
	var clinic model.Clinic
	if err := r.db.GetContext(ctx, &clinic, query, id); err != nil {
		return nil, wrapError(err, "clinic")
	}
	return &clinic, nil
}

func (r *clinicRepository) Update(ctx context.Context, clinic *model.Clinic) error {
	query := `
		UPDATE clinics
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	clinic.UpdatedAt = r.now()

	result, err := r.db.ExecContext(ctx, query, clinic.Name, clinic.UpdatedAt, clinic.ID)
	if err != nil {
		return wrapError(err, "clinic")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "clinic")
	}
	return nil
}

func (r *clinicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clinics WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "clinic")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "clinic")
	}
	return nil
}

func (r *clinicRepository) ListForUser(ctx context.Context, userID string) ([]*model.Clinic, error) {
	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at
		FROM clinics c
		JOIN users_to_clinics utc ON utc.clinic_id = c.id
		WHERE utc.user_id = $1
		ORDER BY c.created_at DESC
	`
	clinics := []*model.Clinic{}
	if err := r.db.SelectContext(ctx, &clinics, query, userID); err != nil {
		return nil, wrapError(err, "clinics")
	}
	return clinics, nil
}

func (r *clinicRepository) AddMember(ctx context.Context, userID string, clinicID uuid.UUID) error {
	query := `
		INSERT INTO users_to_clinics (user_id, clinic_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, clinicID, r.now()); err != nil {
		return wrapError(err, "clinic membership")
	}
	return nil
}

func (r *clinicRepository) RemoveMember(ctx context.Context, userID string, clinicID uuid.UUID) error {
	query := `DELETE FROM users_to_clinics WHERE user_id = $1 AND clinic_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, clinicID); err != nil {
		return wrapError(err, "clinic membership")
	}
	return nil
}

func (r *clinicRepository) IsMember(ctx context.Context, userID string, clinicID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users_to_clinics
			WHERE user_id = $1 AND clinic_id = $2
		)
	`
	var member bool
	if err := r.db.GetContext(ctx, &member, query, userID, clinicID); err != nil {
		return false, wrapError(err, "clinic membership")
	}
	return member, nil
}
