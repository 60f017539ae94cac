package models

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// maxFieldLen is the VARCHAR(50) limit shared by user_name and creation_date.
const maxFieldLen = 50

// User represents a row of the users table.
type User struct {
	UserID       int64  `json:"user_id" db:"user_id"`             // Primary key
	UserName     string `json:"user_name" db:"user_name"`         // Display name, at most 50 characters
	CreationDate string `json:"creation_date" db:"creation_date"` // Caller-supplied timestamp text, stored as-is
}

// ValidationError describes a field that failed payload validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the required fields and length limits.
func (u User) Validate() error {
	if u.UserName == "" {
		return &ValidationError{Field: "user_name", Reason: "required"}
	}
	if utf8.RuneCountInString(u.UserName) > maxFieldLen {
		return &ValidationError{Field: "user_name", Reason: fmt.Sprintf("longer than %d characters", maxFieldLen)}
	}
	if u.CreationDate == "" {
		return &ValidationError{Field: "creation_date", Reason: "required"}
	}
	if utf8.RuneCountInString(u.CreationDate) > maxFieldLen {
		return &ValidationError{Field: "creation_date", Reason: fmt.Sprintf("longer than %d characters", maxFieldLen)}
	}
	return nil
}

// UserFromRow converts a column-name→value mapping produced by a row fetch
// into a validated User.
func UserFromRow(row map[string]any) (User, error) {
	var u User

	id, err := intColumn(row, "user_id")
	if err != nil {
		return User{}, err
	}
	u.UserID = id

	if u.UserName, err = stringColumn(row, "user_name"); err != nil {
		return User{}, err
	}
	if u.CreationDate, err = stringColumn(row, "creation_date"); err != nil {
		return User{}, err
	}

	if err := u.Validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

// Row returns the column→value binding used for inserts.
func (u User) Row() map[string]any {
	return map[string]any{
		"user_id":       u.UserID,
		"user_name":     u.UserName,
		"creation_date": u.CreationDate,
	}
}

// intColumn coerces a BIGINT column value. Drivers hand integers back in
// several forms depending on the scan path.
func intColumn(row map[string]any, name string) (int64, error) {
	v, ok := row[name]
	if !ok {
		return 0, &ValidationError{Field: name, Reason: "missing"}
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case []byte:
		id, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0, &ValidationError{Field: name, Reason: "not an integer"}
		}
		return id, nil
	default:
		return 0, &ValidationError{Field: name, Reason: fmt.Sprintf("unexpected type %T", v)}
	}
}

func stringColumn(row map[string]any, name string) (string, error) {
	v, ok := row[name]
	if !ok {
		return "", &ValidationError{Field: name, Reason: "missing"}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", &ValidationError{Field: name, Reason: fmt.Sprintf("unexpected type %T", v)}
	}
}
