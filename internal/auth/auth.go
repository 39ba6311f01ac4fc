// Package auth signs admins in with a bcrypt password check and issues
// HS256 session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTL = 12 * time.Hour
	issuer          = "desa-portal"
	minPasswordLen  = 8
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLen)
	ErrPlaceholderSecret  = errors.New("jwt secret is a placeholder, set a real one")
)

// placeholderSecrets are sample values that must never sign real sessions.
var placeholderSecrets = map[string]struct{}{
	"change-me":  {},
	"changeme":   {},
	"secret":     {},
	"jwt-secret": {},
}

type AdminStore interface {
	AdminByEmail(ctx context.Context, email string) (*db.Admin, error)
	CreateAdmin(ctx context.Context, a *db.Admin) error
}

// Session is an issued admin token.
type Session struct {
	Token     string
	AdminID   uuid.UUID
	ExpiresAt time.Time
}

type Service struct {
	store  AdminStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(store AdminStore, secret string, ttl time.Duration) (*Service, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if _, ok := placeholderSecrets[strings.ToLower(strings.TrimSpace(secret))]; ok {
		return nil, ErrPlaceholderSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Service{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CreateAdmin registers a new admin account. It returns db.ErrEmailTaken
// for a duplicate email.
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*db.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email is empty")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &db.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Login checks the credentials and issues a session token. Unknown emails
// and wrong passwords both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	admin, err := s.store.AdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get admin: %w", err)
	} else if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(admin.ID)
}

func (s *Service) issue(adminID uuid.UUID) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   adminID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Session{Token: token, AdminID: adminID, ExpiresAt: expiresAt}, nil
}

// Verify parses a session token and returns the admin id it was issued for.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %w", ErrInvalidToken, err)
	}

	return id, nil
}
