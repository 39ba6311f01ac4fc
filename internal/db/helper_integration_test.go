//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}

func newsFixture(slug string, published bool) *News {
	n := &News{
		ID:          uuid.New(),
		Slug:        slug,
		Title:       "Judul " + slug,
		Content:     "<p>isi</p>",
		Category:    "Umum",
		IsPublished: published,
		CreatedAt:   BaseTime,
		UpdatedAt:   BaseTime,
	}
	if published {
		at := BaseTime
		n.PublishedAt = &at
	}
	return n
}
