package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// MaxSortOrder returns the highest sort_order stored for kind, 0 for an empty table.
func (r *Repository) MaxSortOrder(ctx context.Context, kind Kind) (int, error) {
	table, err := kind.table()
	if err != nil {
		return 0, err
	}

	var maxOrder int
	_, err = r.db.QueryOneContext(ctx, pg.Scan(&maxOrder),
		`SELECT COALESCE(MAX("sort_order"), 0) FROM ?`, pg.Ident(table))
	if err != nil {
		return 0, fmt.Errorf("failed to get max sort order of %s: %w", table, err)
	}

	return maxOrder, nil
}

// DeleteSorted removes a single row by id. Siblings keep their sort_order.
func (r *Repository) DeleteSorted(ctx context.Context, kind Kind, id uuid.UUID) error {
	table, err := kind.table()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM ? WHERE "id" = ?`, pg.Ident(table), id)
	if err = affected(res, err); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", table, id, err)
	}

	return nil
}

// ToggleActive flips is_active in place and returns the new value.
func (r *Repository) ToggleActive(ctx context.Context, kind Kind, id uuid.UUID) (bool, error) {
	table, err := kind.table()
	if err != nil {
		return false, err
	}

	var active bool
	_, err = r.db.QueryOneContext(ctx, pg.Scan(&active),
		`UPDATE ? SET "is_active" = NOT "is_active" WHERE "id" = ? RETURNING "is_active"`,
		pg.Ident(table), id)
	if errors.Is(err, pg.ErrNoRows) {
		return false, fmt.Errorf("toggle %s %s: %w", table, id, ErrNotFound)
	} else if err != nil {
		return false, fmt.Errorf("failed to toggle %s %s: %w", table, id, err)
	}

	return active, nil
}

func (r *Repository) Count(ctx context.Context, kind Kind) (int, error) {
	table, err := kind.table()
	if err != nil {
		return 0, err
	}

	var count int
	_, err = r.db.QueryOneContext(ctx, pg.Scan(&count), `SELECT COUNT(*) FROM ?`, pg.Ident(table))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return count, nil
}

func (r *Repository) CreateService(ctx context.Context, s *VillageService) error {
	if _, err := r.db.ModelContext(ctx, s).Insert(); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *Repository) UpdateService(ctx context.Context, s *VillageService) error {
	res, err := r.db.ModelContext(ctx, s).
		Column("title", "description", "requirements", "icon").
		WherePK().
		Update()
	if err = affected(res, err); err != nil {
		return fmt.Errorf("failed to update service %s: %w", s.ID, err)
	}
	return nil
}

// Services lists services by sort_order; activeOnly hides deactivated rows.
func (r *Repository) Services(ctx context.Context, activeOnly bool) ([]VillageService, error) {
	var list []VillageService
	query := r.db.ModelContext(ctx, &list)
	if activeOnly {
		query = query.Where(`"t"."is_active" = TRUE`)
	}

	if err := query.OrderExpr(`"t"."sort_order" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}

	return list, nil
}

func (r *Repository) CreateGalleryItem(ctx context.Context, g *GalleryItem) error {
	if _, err := r.db.ModelContext(ctx, g).Insert(); err != nil {
		return fmt.Errorf("failed to insert gallery item: %w", err)
	}
	return nil
}

// Gallery lists photos by sort_order. limit <= 0 means no limit.
func (r *Repository) Gallery(ctx context.Context, activeOnly bool, limit int) ([]GalleryItem, error) {
	var list []GalleryItem
	query := r.db.ModelContext(ctx, &list)
	if activeOnly {
		query = query.Where(`"t"."is_active" = TRUE`)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.OrderExpr(`"t"."sort_order" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to query gallery: %w", err)
	}

	return list, nil
}

func (r *Repository) CreateProgram(ctx context.Context, p *PriorityProgram) error {
	if _, err := r.db.ModelContext(ctx, p).Insert(); err != nil {
		return fmt.Errorf("failed to insert priority program: %w", err)
	}
	return nil
}

func (r *Repository) Programs(ctx context.Context, activeOnly bool) ([]PriorityProgram, error) {
	var list []PriorityProgram
	query := r.db.ModelContext(ctx, &list)
	if activeOnly {
		query = query.Where(`"t"."is_active" = TRUE`)
	}

	if err := query.OrderExpr(`"t"."sort_order" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to query priority programs: %w", err)
	}

	return list, nil
}

func (r *Repository) CreateOfficial(ctx context.Context, o *VillageOfficial) error {
	if _, err := r.db.ModelContext(ctx, o).Insert(); err != nil {
		return fmt.Errorf("failed to insert village official: %w", err)
	}
	return nil
}

func (r *Repository) Officials(ctx context.Context, activeOnly bool) ([]VillageOfficial, error) {
	var list []VillageOfficial
	query := r.db.ModelContext(ctx, &list)
	if activeOnly {
		query = query.Where(`"t"."is_active" = TRUE`)
	}

	if err := query.OrderExpr(`"t"."sort_order" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to query village officials: %w", err)
	}

	return list, nil
}
