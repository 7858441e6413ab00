package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type sessionRepository struct {
	BaseRepository
}

func NewSessionRepository(base BaseRepository) repository.SessionRepository {
	return &sessionRepository{base}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO sessions (
			id, expires_at, token, ip_address, user_agent, user_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`
	session.CreatedAt = r.now()
	session.UpdatedAt = session.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.ExpiresAt,
		session.Token,
		session.IPAddress,
		session.UserAgent,
		session.UserID,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "session")
	}
	return nil
}

// GetByToken resolves a session and its owning user in one round trip.
func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*model.SessionUser, error) {
	query := `
		SELECT
			s.id AS "session.id",
			s.expires_at AS "session.expires_at",
			s.token AS "session.token",
			s.ip_address AS "session.ip_address",
			s.user_agent AS "session.user_agent",
			s.user_id AS "session.user_id",
			s.created_at AS "session.created_at",
			s.updated_at AS "session.updated_at",
			u.id AS "user.id",
			u.name AS "user.name",
			u.email AS "user.email",
			u.email_verified AS "user.email_verified",
			u.image AS "user.image",
			u.created_at AS "user.created_at",
			u.updated_at AS "user.updated_at"
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
	`
	var su model.SessionUser
	if err := r.db.GetContext(ctx, &su, query, token); err != nil {
		return nil, wrapError(err, "session")
	}
	return &su, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "session")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "session")
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`

	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, wrapError(err, "sessions")
	}
	return result.RowsAffected()
}
