package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name      string
		user      User
		wantErr   bool
		wantField string
	}{
		{
			name: "valid user",
			user: User{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"},
		},
		{
			name: "name at the length limit",
			user: User{UserID: 1, UserName: strings.Repeat("a", 50), CreationDate: "2021-01-01 00:00:00"},
		},
		{
			name:      "missing user name",
			user:      User{UserID: 1, CreationDate: "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_name",
		},
		{
			name:      "user name too long",
			user:      User{UserID: 1, UserName: strings.Repeat("a", 51), CreationDate: "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_name",
		},
		{
			name:      "missing creation date",
			user:      User{UserID: 1, UserName: "john"},
			wantErr:   true,
			wantField: "creation_date",
		},
		{
			name:      "creation date too long",
			user:      User{UserID: 1, UserName: "john", CreationDate: strings.Repeat("9", 51)},
			wantErr:   true,
			wantField: "creation_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			assert.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestUserFromRow(t *testing.T) {
	tests := []struct {
		name      string
		row       map[string]any
		want      User
		wantErr   bool
		wantField string
	}{
		{
			name: "int64 id",
			row:  map[string]any{"user_id": int64(1), "user_name": "john", "creation_date": "2021-01-01 00:00:00"},
			want: User{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"},
		},
		{
			name: "int32 id",
			row:  map[string]any{"user_id": int32(2), "user_name": "george", "creation_date": "2021-01-01 00:00:00"},
			want: User{UserID: 2, UserName: "george", CreationDate: "2021-01-01 00:00:00"},
		},
		{
			name: "int id",
			row:  map[string]any{"user_id": 3, "user_name": "john", "creation_date": "2021-01-01 00:00:00"},
			want: User{UserID: 3, UserName: "john", CreationDate: "2021-01-01 00:00:00"},
		},
		{
			name: "byte slice values",
			row:  map[string]any{"user_id": []byte("4"), "user_name": []byte("john"), "creation_date": []byte("2021-01-01 00:00:00")},
			want: User{UserID: 4, UserName: "john", CreationDate: "2021-01-01 00:00:00"},
		},
		{
			name:      "missing id column",
			row:       map[string]any{"user_name": "john", "creation_date": "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_id",
		},
		{
			name:      "id is not an integer",
			row:       map[string]any{"user_id": []byte("abc"), "user_name": "john", "creation_date": "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_id",
		},
		{
			name:      "id of an unexpected type",
			row:       map[string]any{"user_id": true, "user_name": "john", "creation_date": "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_id",
		},
		{
			name:      "name of an unexpected type",
			row:       map[string]any{"user_id": int64(1), "user_name": 42, "creation_date": "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_name",
		},
		{
			name:      "missing creation date column",
			row:       map[string]any{"user_id": int64(1), "user_name": "john"},
			wantErr:   true,
			wantField: "creation_date",
		},
		{
			name:      "stored name fails validation",
			row:       map[string]any{"user_id": int64(1), "user_name": strings.Repeat("a", 51), "creation_date": "2021-01-01 00:00:00"},
			wantErr:   true,
			wantField: "user_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserFromRow(tt.row)
			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var validationErr *ValidationError
			assert.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestUser_Row(t *testing.T) {
	user := User{UserID: 1, UserName: "john", CreationDate: "2021-01-01 00:00:00"}

	row := user.Row()

	assert.Equal(t, map[string]any{
		"user_id":       int64(1),
		"user_name":     "john",
		"creation_date": "2021-01-01 00:00:00",
	}, row)

	roundTripped, err := UserFromRow(row)
	assert.NoError(t, err)
	assert.Equal(t, user, roundTripped)
}
