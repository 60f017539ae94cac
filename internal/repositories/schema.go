package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/glob-dev/users-gateway/internal/orm"
)

// UsersTable is the table every user repository reads and writes.
const UsersTable = "users"

const usersPrimaryKey = "user_id"

// usersColumns is the users table layout. creation_date is caller-supplied
// text and is stored exactly as received.
var usersColumns = []orm.ColumnDef{
	{Name: "user_id", Definition: "BIGINT NOT NULL"},
	{Name: "user_name", Definition: "VARCHAR(50) NOT NULL"},
	{Name: "creation_date", Definition: "VARCHAR(50) NOT NULL"},
}

// EnsureUsersTable provisions the users table on startup if it does not
// exist yet. An existing table is left untouched.
func EnsureUsersTable(ctx context.Context, db *sqlx.DB, schemaName string) error {
	return orm.EnsureTable(ctx, db, schemaName, UsersTable, usersColumns, usersPrimaryKey)
}
