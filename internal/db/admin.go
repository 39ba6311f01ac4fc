package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pg/pg/v10"
)

const adminEmailConstraint = "admins_email_key"

var ErrEmailTaken = errors.New("email already registered")

func (r *Repository) AdminByEmail(ctx context.Context, email string) (*Admin, error) {
	admin := &Admin{}
	err := r.db.ModelContext(ctx, admin).
		Where(`"t"."email" = ?`, strings.ToLower(strings.TrimSpace(email))).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

func (r *Repository) CreateAdmin(ctx context.Context, a *Admin) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	_, err := r.db.ModelContext(ctx, a).Insert()
	if isUniqueViolation(err, adminEmailConstraint) {
		return fmt.Errorf("insert admin %q: %w", a.Email, ErrEmailTaken)
	} else if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	return nil
}
