package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
)

type accountRepository struct {
	BaseRepository
}

func NewAccountRepository(base BaseRepository) repository.AccountRepository {
	return &accountRepository{base}
}

func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (
			id, account_id, provider_id, user_id,
			access_token, refresh_token, id_token,
			access_token_expires_at, refresh_token_expires_at,
			scope, password, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`
	account.CreatedAt = r.now()
	account.UpdatedAt = account.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.AccountID,
		account.ProviderID,
		account.UserID,
		account.AccessToken,
		account.RefreshToken,
		account.IDToken,
		account.AccessTokenExpiresAt,
		account.RefreshTokenExpiresAt,
		account.Scope,
		account.Password,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return wrapError(err, "account")
	}
	return nil
}

func (r *accountRepository) ListForUser(ctx context.Context, userID string) ([]*model.Account, error) {
	query := `
		SELECT
			id, account_id, provider_id, user_id,
			access_token, refresh_token, id_token,
			access_token_expires_at, refresh_token_expires_at,
			scope, password, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
	`
	accounts := []*model.Account{}
	if err := r.db.SelectContext(ctx, &accounts, query, userID); err != nil {
		return nil, wrapError(err, "accounts")
	}
	return accounts, nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError(err, "account")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return wrapError(sql.ErrNoRows, "account")
	}
	return nil
}
