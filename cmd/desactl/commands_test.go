package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/desa-portal/internal/auth"
	"github.com/daniilsolovey/desa-portal/internal/db"
)

type adminStore struct {
	created []*db.Admin
	err     error
}

func (s *adminStore) AdminByEmail(context.Context, string) (*db.Admin, error) {
	return nil, nil
}

func (s *adminStore) CreateAdmin(_ context.Context, a *db.Admin) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, a)
	return nil
}

func TestCreateAdmin(t *testing.T) {
	store := &adminStore{}

	admin, err := createAdmin(context.Background(), store, "admin@desa.id", "rahasia-desa")
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "admin@desa.id", admin.Email)
	assert.NotEqual(t, "rahasia-desa", admin.PasswordHash)
}

func TestCreateAdmin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		storeErr error
		target   error
		message  string
	}{
		{name: "weak password", password: "short", target: auth.ErrWeakPassword},
		{
			name:     "duplicate email",
			password: "rahasia-desa",
			storeErr: fmt.Errorf("insert admin: %w", db.ErrEmailTaken),
			message:  "admin admin@desa.id already exists",
		},
		{
			name:     "store failure",
			password: "rahasia-desa",
			storeErr: errors.New("connection refused"),
			message:  "failed to create admin: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createAdmin(context.Background(), &adminStore{err: tt.storeErr}, "admin@desa.id", tt.password)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestRootCommandTree(t *testing.T) {
	for _, path := range [][]string{{"migrate", "up"}, {"migrate", "status"}, {"admin", "create"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
