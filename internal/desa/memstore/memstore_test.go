package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ desa.Store = (*Store)(nil)

func TestStore_InsertCurrentStats(t *testing.T) {
	ctx := context.Background()
	s := New()

	for year := 2020; year < 2024; year++ {
		require.NoError(t, s.InsertCurrentStats(ctx, &db.PopulationStats{ID: uuid.New(), Year: year}))
		assert.Equal(t, 1, s.CurrentCount())
	}

	current, err := s.CurrentStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2023, current.Year)
}

func TestStore_CreateNewsSlugTaken(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateNews(ctx, &db.News{ID: uuid.New(), Slug: "rapat-desa"}))
	err := s.CreateNews(ctx, &db.News{ID: uuid.New(), Slug: "rapat-desa"})
	assert.ErrorIs(t, err, db.ErrSlugTaken)
}

func TestStore_PublishedNewsOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		s.PutNews(db.News{ID: uuid.New(), Slug: uuid.NewString(), IsPublished: true, PublishedAt: &at, Category: "Umum"})
	}
	s.PutNews(db.News{ID: uuid.New(), Slug: "draf"})

	page, total, err := s.PublishedNews(ctx, db.NewsFilter{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.True(t, page[0].PublishedAt.After(*page[1].PublishedAt))

	_, _, err = s.PublishedNews(ctx, db.NewsFilter{Limit: 0})
	assert.Error(t, err)
}
