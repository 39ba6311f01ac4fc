package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// Both profile tables hold a single row.
const profileRowID = 1

func (r *Repository) KadesProfile(ctx context.Context) (*KadesProfile, error) {
	profile := &KadesProfile{ID: profileRowID}
	err := r.db.ModelContext(ctx, profile).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get kades profile: %w", err)
	}

	return profile, nil
}

// SaveKadesProfile writes the singleton row, creating it on first use.
func (r *Repository) SaveKadesProfile(ctx context.Context, p *KadesProfile) error {
	p.ID = profileRowID
	_, err := r.db.ModelContext(ctx, p).
		OnConflict(`("id") DO UPDATE`).
		Set(`"full_name" = EXCLUDED."full_name"`).
		Set(`"title" = EXCLUDED."title"`).
		Set(`"period" = EXCLUDED."period"`).
		Set(`"photo_url" = EXCLUDED."photo_url"`).
		Set(`"welcome_speech" = EXCLUDED."welcome_speech"`).
		Set(`"updated_at" = EXCLUDED."updated_at"`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to save kades profile: %w", err)
	}

	return nil
}

func (r *Repository) VillageProfile(ctx context.Context) (*VillageProfile, error) {
	profile := &VillageProfile{ID: profileRowID}
	err := r.db.ModelContext(ctx, profile).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get village profile: %w", err)
	}

	return profile, nil
}

// UpdateVisiMisi replaces visi and the ordered misi list. A nil misi stores NULL.
func (r *Repository) UpdateVisiMisi(ctx context.Context, visi *string, misi []string, updatedAt time.Time) error {
	res, err := r.db.ModelContext(ctx, (*VillageProfile)(nil)).
		Set(`"visi" = ?`, visi).
		Set(`"misi" = ?`, pg.Array(misi)).
		Set(`"updated_at" = ?`, updatedAt).
		Where(`"id" = ?`, profileRowID).
		Update()
	if err = affected(res, err); err != nil {
		return fmt.Errorf("failed to update visi misi: %w", err)
	}

	return nil
}
