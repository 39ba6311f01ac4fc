package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// InsertCurrentStats demotes the previous current snapshot and inserts s as
// the new current one inside a single transaction. The partial unique index
// on is_current rejects a concurrent second current row.
func (r *Repository) InsertCurrentStats(ctx context.Context, s *PopulationStats) error {
	s.IsCurrent = true

	return r.RunInTransaction(ctx, func(tx *Repository) error {
		_, err := tx.db.ModelContext(ctx, (*PopulationStats)(nil)).
			Set(`"is_current" = FALSE`).
			Where(`"is_current" = TRUE`).
			Update()
		if err != nil {
			return fmt.Errorf("failed to demote current stats: %w", err)
		}

		if _, err := tx.db.ModelContext(ctx, s).Insert(); err != nil {
			return fmt.Errorf("failed to insert current stats: %w", err)
		}

		return nil
	})
}

func (r *Repository) CurrentStats(ctx context.Context) (*PopulationStats, error) {
	stats := &PopulationStats{}
	err := r.db.ModelContext(ctx, stats).
		Where(`"t"."is_current" = TRUE`).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get current stats: %w", err)
	}

	return stats, nil
}

// StatsHistory lists every snapshot, latest year first.
func (r *Repository) StatsHistory(ctx context.Context) ([]PopulationStats, error) {
	var list []PopulationStats
	err := r.db.ModelContext(ctx, &list).
		OrderExpr(`"t"."year" DESC, "t"."recorded_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query stats history: %w", err)
	}

	return list, nil
}

func (r *Repository) InsertAgeDistribution(ctx context.Context, rows []AgeDistribution) error {
	if len(rows) == 0 {
		return nil
	}

	if _, err := r.db.ModelContext(ctx, &rows).Insert(); err != nil {
		return fmt.Errorf("failed to insert age distribution: %w", err)
	}

	return nil
}

func (r *Repository) InsertOccupationDistribution(ctx context.Context, rows []OccupationDistribution) error {
	if len(rows) == 0 {
		return nil
	}

	if _, err := r.db.ModelContext(ctx, &rows).Insert(); err != nil {
		return fmt.Errorf("failed to insert occupation distribution: %w", err)
	}

	return nil
}

func (r *Repository) InsertEducationDistribution(ctx context.Context, rows []EducationDistribution) error {
	if len(rows) == 0 {
		return nil
	}

	if _, err := r.db.ModelContext(ctx, &rows).Insert(); err != nil {
		return fmt.Errorf("failed to insert education distribution: %w", err)
	}

	return nil
}

func (r *Repository) AgeDistribution(ctx context.Context, statsID uuid.UUID) ([]AgeDistribution, error) {
	var rows []AgeDistribution
	err := r.db.ModelContext(ctx, &rows).
		Where(`"t"."stats_id" = ?`, statsID).
		OrderExpr(`"t"."position" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query age distribution: %w", err)
	}

	return rows, nil
}

func (r *Repository) OccupationDistribution(ctx context.Context, statsID uuid.UUID) ([]OccupationDistribution, error) {
	var rows []OccupationDistribution
	err := r.db.ModelContext(ctx, &rows).
		Where(`"t"."stats_id" = ?`, statsID).
		OrderExpr(`"t"."count" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query occupation distribution: %w", err)
	}

	return rows, nil
}

func (r *Repository) EducationDistribution(ctx context.Context, statsID uuid.UUID) ([]EducationDistribution, error) {
	var rows []EducationDistribution
	err := r.db.ModelContext(ctx, &rows).
		Where(`"t"."stats_id" = ?`, statsID).
		OrderExpr(`"t"."count" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query education distribution: %w", err)
	}

	return rows, nil
}
