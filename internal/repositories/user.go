package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/glob-dev/users-gateway/internal/models"
	"github.com/glob-dev/users-gateway/internal/orm"
)

// ErrDuplicateKey is returned when an insert violates the users table's
// primary key constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// UserReadRepository fetches user rows through the query builder.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewUserReadRepository creates a new UserReadRepository. txGetter may be
// nil, in which case every query runs on the pooled connection.
func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// Exists reports whether a row with the given id is stored.
func (r *UserReadRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	rows, err := orm.Select(ctx, executor, UsersTable, []string{usersPrimaryKey},
		&orm.Predicate{Column: usersPrimaryKey, Value: userID})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// GetByID returns every stored row matching the id, converted to records.
// The caller decides what zero or multiple rows mean.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) ([]models.User, error) {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	rows, err := orm.Select(ctx, executor, UsersTable, nil,
		&orm.Predicate{Column: usersPrimaryKey, Value: userID})
	if err != nil {
		return nil, err
	}
	return orm.RowsAsRecords(ctx, executor, UsersTable, rows, models.UserFromRow)
}

// List returns every stored user.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	rows, err := orm.Select(ctx, executor, UsersTable, nil, nil)
	if err != nil {
		return nil, err
	}
	return orm.RowsAsRecords(ctx, executor, UsersTable, rows, models.UserFromRow)
}

// UserWriteRepository mutates user rows through the query builder.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewUserWriteRepository creates a new UserWriteRepository. txGetter may be
// nil, in which case every statement runs on the pooled connection.
func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a new user row. A primary key violation is reported as
// ErrDuplicateKey so callers can treat it as a duplicate id.
func (r *UserWriteRepository) Insert(ctx context.Context, user models.User) error {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	err := orm.Insert(ctx, executor, UsersTable, user.Row())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("user_id %d: %w", user.UserID, ErrDuplicateKey)
	}
	return err
}

// Update rewrites the mutable columns of the row with the user's id.
func (r *UserWriteRepository) Update(ctx context.Context, user models.User) error {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	values := map[string]any{
		"user_name":     user.UserName,
		"creation_date": user.CreationDate,
	}
	return orm.Update(ctx, executor, UsersTable, values,
		orm.Predicate{Column: usersPrimaryKey, Value: user.UserID})
}

// Delete removes the row with the given id.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) error {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	return orm.Delete(ctx, executor, UsersTable,
		orm.Predicate{Column: usersPrimaryKey, Value: userID})
}
