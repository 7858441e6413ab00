package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			id, name, email, email_verified, image, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`
	user.CreatedAt = r.now()
	user.UpdatedAt = user.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.EmailVerified,
		user.Image,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "user")
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, name, email, email_verified, image, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, wrapError(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, email_verified, image, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, wrapError(err, "user")
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, email_verified = $3, image = $4, updated_at = $5
		WHERE id = $6
	`
	user.UpdatedAt = r.now()

	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.EmailVerified,
		user.Image,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return wrapError(err, "user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "user")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "user")
	}
	return nil
}
