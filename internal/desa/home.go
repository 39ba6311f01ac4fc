package desa

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"golang.org/x/sync/errgroup"
)

const (
	homeNewsLimit    = 7
	homeGalleryLimit = 8
)

// Home is the landing page.
type Home struct {
	Kades    *db.KadesProfile
	Programs []db.PriorityProgram
	Stats    *StatsSnapshot
	News     []db.News
	Services []db.VillageService
	Gallery  []db.GalleryItem
}

// Home loads every landing page section concurrently.
func (m *Manager) Home(ctx context.Context) (*Home, error) {
	var home Home
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if home.Kades, err = m.store.KadesProfile(ctx); err != nil {
			return fmt.Errorf("db get kades profile: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if home.Programs, err = m.store.Programs(ctx, true); err != nil {
			return fmt.Errorf("db get programs: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		home.Stats, err = m.CurrentStats(ctx)
		return err
	})
	g.Go(func() error {
		news, _, err := m.store.PublishedNews(ctx, db.NewsFilter{Limit: homeNewsLimit})
		if err != nil {
			return fmt.Errorf("db get latest news: %w", err)
		}
		home.News = news
		return nil
	})
	g.Go(func() (err error) {
		if home.Services, err = m.store.Services(ctx, true); err != nil {
			return fmt.Errorf("db get services: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if home.Gallery, err = m.store.Gallery(ctx, true, homeGalleryLimit); err != nil {
			return fmt.Errorf("db get gallery: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &home, nil
}

// Dashboard holds the admin landing counters.
type Dashboard struct {
	TotalNews       int
	PublishedNews   int
	TotalServices   int
	TotalGallery    int
	TotalPopulation int
	StatsYear       int
	HasStats        bool
}

func (m *Manager) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	var err error

	if d.TotalNews, d.PublishedNews, err = m.store.NewsCounts(ctx); err != nil {
		return nil, fmt.Errorf("db count news: %w", err)
	}
	if d.TotalServices, err = m.store.Count(ctx, db.KindService); err != nil {
		return nil, fmt.Errorf("db count services: %w", err)
	}
	if d.TotalGallery, err = m.store.Count(ctx, db.KindGallery); err != nil {
		return nil, fmt.Errorf("db count gallery: %w", err)
	}

	stats, err := m.store.CurrentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get current stats: %w", err)
	} else if stats != nil {
		d.TotalPopulation, d.StatsYear, d.HasStats = stats.TotalPopulation, stats.Year, true
	}

	return &d, nil
}
