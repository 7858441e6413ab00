package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BaseRepository provides common functionality for all repositories. The
// clock and identifier generator are injectable so tests can pin both.
type BaseRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures a BaseRepository.
type Option func(*BaseRepository)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *BaseRepository) { r.now = now }
}

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(r *BaseRepository) { r.newID = newID }
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB, opts ...Option) BaseRepository {
	r := BaseRepository{
		db:    db,
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// WithTx executes a function within a transaction
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
