package desa

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

const (
	CategoryAll     = "Semua"
	CategoryDefault = "Umum"

	NewsPerPage  = 9
	relatedLimit = 3
)

// Categories lists the accepted news categories in display order.
var Categories = []string{"Umum", "Kegiatan", "Pengumuman", "Pembangunan"}

var newsViews = []string{ViewAdminNews, ViewNews, ViewHome}

// NewsInput is the admin news form.
type NewsInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Excerpt     string `json:"excerpt" form:"excerpt"`
	Content     string `json:"content" form:"content" validate:"required"`
	Category    string `json:"category" form:"category" validate:"oneof=Umum Kegiatan Pengumuman Pembangunan"`
	CoverURL    string `json:"cover_url" form:"cover_url"`
	IsPublished bool   `json:"is_published" form:"is_published"`
}

func (m *Manager) validateNews(in *NewsInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Category = orDefault(in.Category, CategoryDefault)

	if in.Title == "" || in.Content == "" {
		return invalid("Judul dan konten wajib diisi.")
	}

	if err := m.validate.Struct(in); err != nil {
		return invalid("Kategori berita tidak valid.")
	}

	return nil
}

// CreateNews stores a new article. Published articles get published_at = now.
func (m *Manager) CreateNews(ctx context.Context, in NewsInput) (*Result, error) {
	if err := m.validateNews(&in); err != nil {
		return nil, err
	}

	now := m.now()
	news := &db.News{
		ID:          m.newID(),
		Title:       in.Title,
		Excerpt:     optional(in.Excerpt),
		Content:     in.Content,
		Category:    in.Category,
		CoverURL:    optional(in.CoverURL),
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsPublished {
		news.PublishedAt = &now
	}

	if err := m.insertWithSlug(ctx, news, in.Title); err != nil {
		return nil, storeFailed("Gagal menyimpan", err)
	}

	m.cache.Invalidate(newsViews...)

	return &Result{Message: "Berita berhasil disimpan!", ID: news.ID}, nil
}

// UpdateNews overwrites an article. published_at is set only when the edit
// publishes a draft; every other edit keeps the stored value.
func (m *Manager) UpdateNews(ctx context.Context, id uuid.UUID, in NewsInput) (*Result, error) {
	if err := m.validateNews(&in); err != nil {
		return nil, err
	}

	current, err := m.store.NewsByID(ctx, id)
	if err != nil {
		return nil, storeFailed("Gagal mengupdate", err)
	} else if current == nil {
		return nil, fmt.Errorf("news %s: %w", id, ErrNotFound)
	}

	now := m.now()
	if in.IsPublished && !current.IsPublished {
		current.PublishedAt = &now
	}

	current.Title = in.Title
	current.Excerpt = optional(in.Excerpt)
	current.Content = in.Content
	current.Category = in.Category
	current.CoverURL = optional(in.CoverURL)
	current.IsPublished = in.IsPublished
	current.UpdatedAt = now

	if err := m.store.UpdateNews(ctx, current); err != nil {
		return nil, storeFailed("Gagal mengupdate", err)
	}

	m.cache.Invalidate(newsViews...)

	return &Result{Message: "Berita berhasil diupdate!", ID: id}, nil
}

func (m *Manager) DeleteNews(ctx context.Context, id uuid.UUID) (*Result, error) {
	if err := m.store.DeleteNews(ctx, id); err != nil {
		return nil, storeFailed("Gagal menghapus", err)
	}

	m.cache.Invalidate(newsViews...)

	return &Result{Message: "Berita berhasil dihapus.", ID: id}, nil
}

// ToggleNews flips the stored publish state. Publishing stamps published_at,
// unpublishing clears it.
func (m *Manager) ToggleNews(ctx context.Context, id uuid.UUID) (*Result, error) {
	current, err := m.store.NewsByID(ctx, id)
	if err != nil {
		return nil, storeFailed("Gagal", err)
	} else if current == nil {
		return nil, fmt.Errorf("news %s: %w", id, ErrNotFound)
	}

	published := !current.IsPublished
	if published {
		now := m.now()
		err = m.store.SetNewsPublished(ctx, id, true, &now)
	} else {
		err = m.store.SetNewsPublished(ctx, id, false, nil)
	}
	if err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(newsViews...)

	if published {
		return &Result{Message: "Berita dipublikasikan.", ID: id}, nil
	}
	return &Result{Message: "Berita disembunyikan.", ID: id}, nil
}

// NewsPage is one page of the public news listing.
type NewsPage struct {
	News       []db.News
	Category   string
	Page       int
	TotalCount int
	TotalPages int
}

// NewsList returns published news of category ("" or Semua for all) on the
// given 1-based page.
func (m *Manager) NewsList(ctx context.Context, category string, page int) (*NewsPage, error) {
	category = strings.TrimSpace(category)
	if category == CategoryAll {
		category = ""
	}
	if page < 1 {
		page = 1
	}

	news, total, err := m.store.PublishedNews(ctx, db.NewsFilter{
		Category: category,
		Limit:    NewsPerPage,
		Offset:   (page - 1) * NewsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("db get published news: %w", err)
	}

	result := &NewsPage{
		News:       news,
		Category:   orDefault(category, CategoryAll),
		Page:       page,
		TotalCount: total,
		TotalPages: (total + NewsPerPage - 1) / NewsPerPage,
	}

	return result, nil
}

// NewsDetail is an article with up to three published siblings of its category.
type NewsDetail struct {
	News    db.News
	IsDraft bool
	Related []db.News
}

// NewsBySlug returns the article for the detail page, nil when it does not
// exist or is a draft and preview is false. Published articles viewed without
// preview record a view.
func (m *Manager) NewsBySlug(ctx context.Context, slug string, preview bool) (*NewsDetail, error) {
	news, err := m.store.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get news by slug: %w", err)
	} else if news == nil || (!news.IsPublished && !preview) {
		return nil, nil
	}

	if news.IsPublished && !preview && m.views != nil {
		m.views.Record(news.ID)
	}

	related, err := m.store.RelatedNews(ctx, news.Category, news.Slug, relatedLimit)
	if err != nil {
		return nil, fmt.Errorf("db get related news: %w", err)
	}

	return &NewsDetail{
		News:    *news,
		IsDraft: !news.IsPublished,
		Related: related,
	}, nil
}

// NewsByID returns any article, drafts included, for the admin editor.
func (m *Manager) NewsByID(ctx context.Context, id uuid.UUID) (*db.News, error) {
	news, err := m.store.NewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}

	return news, nil
}

// AllNews lists every article for the admin table, newest first.
func (m *Manager) AllNews(ctx context.Context) ([]db.News, error) {
	news, err := m.store.AllNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get all news: %w", err)
	}

	return news, nil
}
