package orm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/glob-dev/users-gateway/internal/logger"
)

// ErrTableNotFound is returned when introspection finds no columns for a
// table, meaning the table does not exist in the current schema.
var ErrTableNotFound = errors.New("table not found")

// Predicate is a single equality condition. The column name is interpolated
// into the statement after an identifier check, the value is always bound as
// a placeholder.
type Predicate struct {
	Column string
	Value  any
}

// ColumnDef describes one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name       string
	Definition string // e.g. "BIGINT NOT NULL"
}

// ColumnInfo is one row of information_schema metadata for a table column.
type ColumnInfo struct {
	Name     string `db:"column_name"`
	DataType string `db:"data_type"`
	Nullable string `db:"is_nullable"`
	Position int    `db:"ordinal_position"`
}

// SchemaError reports an invalid table definition passed to CreateTable.
type SchemaError struct {
	Table  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s: %s", e.Table, e.Reason)
}

// identPattern accepts plain SQL identifiers. Everything interpolated into
// statement text has to match it, values never do.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkIdent(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

// CreateTable issues a CREATE TABLE statement for the given schema and table.
// The definition is checked first: missing columns, a blank definition, a
// missing primary key or a primary key outside the column list all fail with
// a *SchemaError before anything reaches the database.
func CreateTable(ctx context.Context, ex sqlx.ExtContext, schemaName, tableName string, columns []ColumnDef, primaryKey string) error {
	if len(columns) == 0 {
		return &SchemaError{Table: tableName, Reason: "no columns defined"}
	}
	if primaryKey == "" {
		return &SchemaError{Table: tableName, Reason: "no primary key designated"}
	}
	if err := checkIdent(schemaName); err != nil {
		return &SchemaError{Table: tableName, Reason: err.Error()}
	}
	if err := checkIdent(tableName); err != nil {
		return &SchemaError{Table: tableName, Reason: err.Error()}
	}

	pkFound := false
	defs := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		if err := checkIdent(col.Name); err != nil {
			return &SchemaError{Table: tableName, Reason: err.Error()}
		}
		if strings.TrimSpace(col.Definition) == "" {
			return &SchemaError{Table: tableName, Reason: fmt.Sprintf("column %q has an empty definition", col.Name)}
		}
		if col.Name == primaryKey {
			pkFound = true
		}
		defs = append(defs, col.Name+" "+strings.TrimSpace(col.Definition))
	}
	if !pkFound {
		return &SchemaError{Table: tableName, Reason: fmt.Sprintf("primary key %q is not among the columns", primaryKey)}
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", primaryKey))

	query := fmt.Sprintf("CREATE TABLE %s.%s (%s)", schemaName, tableName, strings.Join(defs, ", "))
	_, err := ex.ExecContext(ctx, query)
	logQuery("create table", query, nil, tableName, err)
	return err
}

// Insert adds one row. Column names are sorted so the same value set always
// produces the same statement text.
func Insert(ctx context.Context, ex sqlx.ExtContext, table string, values map[string]any) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("insert into %s: no values", table)
	}

	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols))
	placeholders := make([]string, 0, len(cols))
	for i, col := range cols {
		if err := checkIdent(col); err != nil {
			return err
		}
		args = append(args, values[col])
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery("insert", query, args, rowsAffected, err)
	return err
}

// Select fetches rows as positional value slices in the table's column
// order. A nil or empty columns slice selects all columns, a nil predicate
// selects all rows.
func Select(ctx context.Context, ex sqlx.ExtContext, table string, columns []string, where *Predicate) ([][]any, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}

	colExpr := "*"
	if len(columns) > 0 {
		for _, col := range columns {
			if err := checkIdent(col); err != nil {
				return nil, err
			}
		}
		colExpr = strings.Join(columns, ", ")
	}

	query := fmt.Sprintf("SELECT %s FROM %s", colExpr, table)
	var args []any
	if where != nil {
		if err := checkIdent(where.Column); err != nil {
			return nil, err
		}
		query += fmt.Sprintf(" WHERE %s = $1", where.Column)
		args = append(args, where.Value)
	}

	rows, err := ex.QueryxContext(ctx, query, args...)
	if err != nil {
		logQuery("select", query, args, nil, err)
		return nil, err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			logQuery("select", query, args, len(out), err)
			return nil, err
		}
		out = append(out, vals)
	}
	err = rows.Err()
	logQuery("select", query, args, len(out), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the given columns on every row matching the predicate. The
// predicate is mandatory, full-table updates are not expressible.
func Update(ctx context.Context, ex sqlx.ExtContext, table string, values map[string]any, where Predicate) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("update %s: no values", table)
	}
	if err := checkIdent(where.Column); err != nil {
		return err
	}

	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols)+1)
	assignments := make([]string, 0, len(cols))
	for i, col := range cols {
		if err := checkIdent(col); err != nil {
			return err
		}
		args = append(args, values[col])
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}
	args = append(args, where.Value)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(assignments, ", "), where.Column, len(cols)+1)
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery("update", query, args, rowsAffected, err)
	return err
}

// Delete removes every row matching the predicate. The predicate is
// mandatory, full-table deletes are not expressible.
func Delete(ctx context.Context, ex sqlx.ExtContext, table string, where Predicate) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	if err := checkIdent(where.Column); err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, where.Column)
	res, err := ex.ExecContext(ctx, query, where.Value)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery("delete", query, []any{where.Value}, rowsAffected, err)
	return err
}

const columnsInfoQuery = `
	SELECT column_name, data_type, is_nullable, ordinal_position
	FROM information_schema.columns
	WHERE table_schema = current_schema() AND table_name = $1
	ORDER BY ordinal_position
`

// ColumnsInfo introspects a table through information_schema. An empty
// result means the table does not exist and yields ErrTableNotFound.
func ColumnsInfo(ctx context.Context, ex sqlx.ExtContext, table string) ([]ColumnInfo, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}

	var cols []ColumnInfo
	err := sqlx.SelectContext(ctx, ex, &cols, columnsInfoQuery, table)
	logQuery("columns info", columnsInfoQuery, []any{table}, len(cols), err)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: %w", table, ErrTableNotFound)
	}
	return cols, nil
}

// Columns returns the table's column names in ordinal order.
func Columns(ctx context.Context, ex sqlx.ExtContext, table string) ([]string, error) {
	info, err := ColumnsInfo(ctx, ex, table)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(info))
	for i, col := range info {
		names[i] = col.Name
	}
	return names, nil
}

// EnsureTable creates the table when introspection reports it missing and
// leaves an existing table untouched.
func EnsureTable(ctx context.Context, ex sqlx.ExtContext, schemaName, tableName string, columns []ColumnDef, primaryKey string) error {
	_, err := ColumnsInfo(ctx, ex, tableName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrTableNotFound) {
		return err
	}
	return CreateTable(ctx, ex, schemaName, tableName, columns, primaryKey)
}

// RowsAsRecords zips positional rows with the table's column order and
// converts each one through fromRow. The first row that fails conversion
// fails the whole call.
func RowsAsRecords[T any](ctx context.Context, ex sqlx.ExtContext, table string, rows [][]any, fromRow func(map[string]any) (T, error)) ([]T, error) {
	columns, err := Columns(ctx, ex, table)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d of %s: %d values for %d columns", i, table, len(row), len(columns))
		}
		mapped := make(map[string]any, len(columns))
		for j, col := range columns {
			mapped[col] = row[j]
		}
		record, err := fromRow(mapped)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i, table, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func logQuery(op, query string, args []any, result any, err error) {
	logger.Log.Infow(op,
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
