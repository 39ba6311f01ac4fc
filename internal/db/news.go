package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// NewsFilter selects published news for the public listing.
// An empty Category means every category.
type NewsFilter struct {
	Category string
	Limit    int
	Offset   int
}

// NewsSlugExists reports whether any news row already uses slug.
func (r *Repository) NewsSlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check news slug: %w", err)
	}

	return exists, nil
}

// CreateNews inserts n. A slug collision reported by the unique constraint
// is returned as ErrSlugTaken so the caller can pick another slug.
func (r *Repository) CreateNews(ctx context.Context, n *News) error {
	_, err := r.db.ModelContext(ctx, n).Insert()
	if isUniqueViolation(err, newsSlugConstraint) {
		return fmt.Errorf("insert news %q: %w", n.Slug, ErrSlugTaken)
	} else if err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *Repository) NewsByID(ctx context.Context, id uuid.UUID) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// NewsBySlug returns the item regardless of its publish state; callers decide
// whether a draft may be shown.
func (r *Repository) NewsBySlug(ctx context.Context, slug string) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by slug: %w", err)
	}

	return news, nil
}

// UpdateNews overwrites the editable columns of n. Slug, views and created_at
// are never touched by an edit.
func (r *Repository) UpdateNews(ctx context.Context, n *News) error {
	res, err := r.db.ModelContext(ctx, n).
		Column("title", "excerpt", "content", "category", "cover_url",
			"is_published", "published_at", "updated_at").
		WherePK().
		Update()
	if err = affected(res, err); err != nil {
		return fmt.Errorf("failed to update news %s: %w", n.ID, err)
	}

	return nil
}

func (r *Repository) SetNewsPublished(ctx context.Context, id uuid.UUID, published bool, publishedAt *time.Time) error {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`"is_published" = ?`, published).
		Set(`"published_at" = ?`, publishedAt).
		Where(`"id" = ?`, id).
		Update()
	if err = affected(res, err); err != nil {
		return fmt.Errorf("failed to set news %s published=%t: %w", id, published, err)
	}

	return nil
}

func (r *Repository) DeleteNews(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"id" = ?`, id).
		Delete()
	if err = affected(res, err); err != nil {
		return fmt.Errorf("failed to delete news %s: %w", id, err)
	}

	return nil
}

// IncrementNewsViews bumps the counter in place, so concurrent readers never
// overwrite each other's increments.
func (r *Repository) IncrementNewsViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`"views" = "views" + 1`).
		Where(`"id" = ?`, id).
		Where(`"is_published" = TRUE`).
		Update()
	if err != nil {
		return fmt.Errorf("failed to increment news views: %w", err)
	}

	return nil
}

// PublishedNews returns one page of published news ordered by published_at DESC
// together with the total number of rows matching the filter.
func (r *Repository) PublishedNews(ctx context.Context, filter NewsFilter) ([]News, int, error) {
	if filter.Limit < 1 || filter.Offset < 0 {
		return nil, 0, fmt.Errorf(
			"limit must be greater than 0 and offset not negative: limit=%d, offset=%d",
			filter.Limit, filter.Offset,
		)
	}

	var news []News
	query := r.db.ModelContext(ctx, &news).
		Where(`"t"."is_published" = TRUE`)

	if filter.Category != "" {
		query = query.Where(`"t"."category" = ?`, filter.Category)
	}

	count, err := query.
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Limit(filter.Limit).
		Offset(filter.Offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query published news: %w", err)
	}

	return news, count, nil
}

// RelatedNews returns published items of the same category, excluding slug.
func (r *Repository) RelatedNews(ctx context.Context, category, excludeSlug string, limit int) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."is_published" = TRUE`).
		Where(`"t"."category" = ?`, category).
		Where(`"t"."slug" <> ?`, excludeSlug).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query related news: %w", err)
	}

	return news, nil
}

// AllNews lists every item, drafts included, newest first.
func (r *Repository) AllNews(ctx context.Context) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."created_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCounts(ctx context.Context) (total, published int, err error) {
	total, err = r.db.ModelContext(ctx, (*News)(nil)).Count()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count news: %w", err)
	}

	published, err = r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."is_published" = TRUE`).
		Count()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count published news: %w", err)
	}

	return total, published, nil
}
