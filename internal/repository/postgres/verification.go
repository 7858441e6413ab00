package postgres

import (
	"context"
	"time"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type verificationRepository struct {
	BaseRepository
}

func NewVerificationRepository(base BaseRepository) repository.VerificationRepository {
	return &verificationRepository{base}
}

func (r *verificationRepository) Create(ctx context.Context, v *model.Verification) error {
	query := `
		INSERT INTO verifications (
			id, identifier, value, expires_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`
	v.CreatedAt = r.now()
	v.UpdatedAt = v.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.Identifier,
		v.Value,
		v.ExpiresAt,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "verification")
	}
	return nil
}

// GetByIdentifier returns the most recent pending challenge for the
// identifier.
func (r *verificationRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.Verification, error) {
	query := `
		SELECT id, identifier, value, expires_at, created_at, updated_at
		FROM verifications
		WHERE identifier = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var v model.Verification
	if err := r.db.GetContext(ctx, &v, query, identifier); err != nil {
		return nil, wrapError(err, "verification")
	}
	return &v, nil
}

func (r *verificationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM verifications WHERE expires_at < $1`

	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, wrapError(err, "verifications")
	}
	return result.RowsAffected()
}
