package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const (
	pgUniqueViolation = "23505"

	newsSlugConstraint = "news_slug_key"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrSlugTaken = errors.New("slug already taken")
)

// Kind names a sort-ordered table that shares the max+1 insert and toggle rules.
type Kind int

const (
	KindService Kind = iota + 1
	KindGallery
	KindProgram
	KindOfficial
)

func (k Kind) table() (string, error) {
	switch k {
	case KindService:
		return Tables.VillageService.Name, nil
	case KindGallery:
		return Tables.GalleryItem.Name, nil
	case KindProgram:
		return Tables.PriorityProgram.Name, nil
	case KindOfficial:
		return Tables.VillageOfficial.Name, nil
	}

	return "", fmt.Errorf("unknown kind %d", k)
}

func (k Kind) String() string {
	name, err := k.table()
	if err != nil {
		return "unknown"
	}
	return name
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction runs fn against a repository bound to a single transaction.
// A repository that already wraps a transaction runs fn inside it, leaving
// commit and rollback to the owner of that transaction.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(*Repository) error) error {
	if _, ok := r.db.(*pg.Tx); ok {
		return fn(r)
	}

	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr pg.Error
	if !errors.As(err, &pgErr) {
		return false
	}

	if pgErr.Field('C') != pgUniqueViolation {
		return false
	}

	return constraint == "" || pgErr.Field('n') == constraint
}

func affected(res pg.Result, err error) error {
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
