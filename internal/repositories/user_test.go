package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/glob-dev/users-gateway/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func expectUsersColumnsInfo(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "ordinal_position"}).
			AddRow("user_id", "bigint", "NO", 1).
			AddRow("user_name", "character varying", "NO", 2).
			AddRow("creation_date", "character varying", "NO", 3))
}

func TestUserReadRepository_Exists(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want bool
	}{
		{
			name: "row present",
			rows: sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)),
			want: true,
		},
		{
			name: "row absent",
			rows: sqlmock.NewRows([]string{"user_id"}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserReadRepository(db, nil)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM users WHERE user_id = $1")).
				WithArgs(int64(1)).
				WillReturnRows(tt.rows)

			got, err := repo.Exists(context.Background(), 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE user_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "creation_date"}).
			AddRow(int64(1), "john", "2021-01-01 00:00:00"))
	expectUsersColumnsInfo(mock)

	users, err := repo.GetByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, []models.User{{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"}}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE user_id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "creation_date"}))
	expectUsersColumnsInfo(mock)

	users, err := repo.GetByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_InvalidStoredRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE user_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "creation_date"}).
			AddRow(int64(1), "", "2021-01-01 00:00:00"))
	expectUsersColumnsInfo(mock)

	users, err := repo.GetByID(context.Background(), 1)

	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "user_name", validationErr.Field)
	assert.Nil(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "creation_date"}).
			AddRow(int64(1), "john", "2021-01-01 00:00:00").
			AddRow(int64(2), "george", "2022-02-02 00:00:00"))
	expectUsersColumnsInfo(mock)

	users, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []models.User{
		{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"},
		{UserID: 2, UserName: "george", CreationDate: "2022-02-02 00:00:00"},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (creation_date, user_id, user_name) VALUES ($1, $2, $3)",
	)).WithArgs("2021-01-01 00:00:00", int64(1), "john").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), models.User{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Insert_DuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (creation_date, user_id, user_name) VALUES ($1, $2, $3)",
	)).WithArgs("2021-01-01 00:00:00", int64(1), "john").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})

	err := repo.Insert(context.Background(), models.User{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"})

	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET creation_date = $1, user_name = $2 WHERE user_id = $3",
	)).WithArgs("2021-01-01 00:00:00", "george", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), models.User{UserID: 1, UserName: "george", CreationDate: "2021-01-01 00:00:00"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE user_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositories_UseTransactionFromContext(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	assert.NoError(t, err)

	txGetter := func(ctx context.Context) *sqlx.Tx { return tx }

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM users WHERE user_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE user_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	readRepo := NewUserReadRepository(db, txGetter)
	writeRepo := NewUserWriteRepository(db, txGetter)

	exists, err := readRepo.Exists(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, exists)

	err = writeRepo.Delete(context.Background(), 1)
	assert.NoError(t, err)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
