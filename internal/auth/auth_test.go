package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminStoreStub is a manual stub implementation of AdminStore for testing
type adminStoreStub struct {
	admins         map[string]db.Admin
	adminByEmailFn func(ctx context.Context, email string) (*db.Admin, error)
}

func (s *adminStoreStub) AdminByEmail(ctx context.Context, email string) (*db.Admin, error) {
	if s.adminByEmailFn != nil {
		return s.adminByEmailFn(ctx, email)
	}
	a, ok := s.admins[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *adminStoreStub) CreateAdmin(_ context.Context, a *db.Admin) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if _, ok := s.admins[a.Email]; ok {
		return db.ErrEmailTaken
	}
	s.admins[a.Email] = *a
	return nil
}

func newTestService(t *testing.T) (*Service, *adminStoreStub) {
	t.Helper()

	store := &adminStoreStub{admins: make(map[string]db.Admin)}
	svc, err := NewService(store, "test-secret", time.Hour)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, 8, 17, 9, 0, 0, 0, time.UTC) }

	return svc, store
}

func TestNewService_EmptySecret(t *testing.T) {
	_, err := NewService(&adminStoreStub{}, " ", time.Hour)
	assert.Error(t, err)
}

func TestNewService_PlaceholderSecret(t *testing.T) {
	for _, secret := range []string{"change-me", " CHANGE-ME ", "secret"} {
		_, err := NewService(&adminStoreStub{}, secret, time.Hour)
		assert.ErrorIs(t, err, ErrPlaceholderSecret, secret)
	}

	_, err := NewService(&adminStoreStub{}, "3f9c1e7a-village-signing-key", time.Hour)
	assert.NoError(t, err)
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	hash, err := HashPassword("rahasia-desa")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-desa", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}

func TestService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	admin, err := svc.CreateAdmin(ctx, " Admin@Desa.id ", "rahasia-desa")
	require.NoError(t, err)
	assert.Equal(t, "admin@desa.id", admin.Email)

	_, err = svc.CreateAdmin(ctx, "admin@desa.id", "rahasia-lain")
	assert.ErrorIs(t, err, db.ErrEmailTaken)

	session, err := svc.Login(ctx, "ADMIN@desa.id", "rahasia-desa")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, session.AdminID)
	assert.Equal(t, svc.now().Add(time.Hour), session.ExpiresAt)

	id, err := svc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateAdmin(ctx, "admin@desa.id", "rahasia-desa")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin@desa.id", "salah-sandi")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "lain@desa.id", "rahasia-desa")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_StoreError(t *testing.T) {
	svc, store := newTestService(t)
	store.adminByEmailFn = func(context.Context, string) (*db.Admin, error) {
		return nil, errors.New("connection refused")
	}

	_, err := svc.Login(context.Background(), "admin@desa.id", "rahasia-desa")
	assert.ErrorContains(t, err, "connection refused")
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Verify(t *testing.T) {
	svc, _ := newTestService(t)
	adminID := uuid.New()

	session, err := svc.issue(adminID)
	require.NoError(t, err)

	t.Run("Expired", func(t *testing.T) {
		late := *svc
		late.now = func() time.Time { return svc.now().Add(2 * time.Hour) }

		_, err := late.Verify(session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("OtherSecret", func(t *testing.T) {
		other, err := NewService(&adminStoreStub{}, "other-secret", time.Hour)
		require.NoError(t, err)
		other.now = svc.now

		_, err = other.Verify(session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
