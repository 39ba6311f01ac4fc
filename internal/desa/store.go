package desa

import (
	"context"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

type NewsStore interface {
	NewsSlugExists(ctx context.Context, slug string) (bool, error)
	CreateNews(ctx context.Context, n *db.News) error
	NewsByID(ctx context.Context, id uuid.UUID) (*db.News, error)
	NewsBySlug(ctx context.Context, slug string) (*db.News, error)
	UpdateNews(ctx context.Context, n *db.News) error
	SetNewsPublished(ctx context.Context, id uuid.UUID, published bool, publishedAt *time.Time) error
	DeleteNews(ctx context.Context, id uuid.UUID) error
	IncrementNewsViews(ctx context.Context, id uuid.UUID) error
	PublishedNews(ctx context.Context, filter db.NewsFilter) ([]db.News, int, error)
	RelatedNews(ctx context.Context, category, excludeSlug string, limit int) ([]db.News, error)
	AllNews(ctx context.Context) ([]db.News, error)
	NewsCounts(ctx context.Context) (total, published int, err error)
}

type StatsStore interface {
	InsertCurrentStats(ctx context.Context, s *db.PopulationStats) error
	CurrentStats(ctx context.Context) (*db.PopulationStats, error)
	StatsHistory(ctx context.Context) ([]db.PopulationStats, error)
	InsertAgeDistribution(ctx context.Context, rows []db.AgeDistribution) error
	InsertOccupationDistribution(ctx context.Context, rows []db.OccupationDistribution) error
	InsertEducationDistribution(ctx context.Context, rows []db.EducationDistribution) error
	AgeDistribution(ctx context.Context, statsID uuid.UUID) ([]db.AgeDistribution, error)
	OccupationDistribution(ctx context.Context, statsID uuid.UUID) ([]db.OccupationDistribution, error)
	EducationDistribution(ctx context.Context, statsID uuid.UUID) ([]db.EducationDistribution, error)
}

type ContentStore interface {
	MaxSortOrder(ctx context.Context, kind db.Kind) (int, error)
	DeleteSorted(ctx context.Context, kind db.Kind, id uuid.UUID) error
	ToggleActive(ctx context.Context, kind db.Kind, id uuid.UUID) (bool, error)
	Count(ctx context.Context, kind db.Kind) (int, error)
	CreateService(ctx context.Context, s *db.VillageService) error
	UpdateService(ctx context.Context, s *db.VillageService) error
	Services(ctx context.Context, activeOnly bool) ([]db.VillageService, error)
	CreateGalleryItem(ctx context.Context, g *db.GalleryItem) error
	Gallery(ctx context.Context, activeOnly bool, limit int) ([]db.GalleryItem, error)
	CreateProgram(ctx context.Context, p *db.PriorityProgram) error
	Programs(ctx context.Context, activeOnly bool) ([]db.PriorityProgram, error)
	CreateOfficial(ctx context.Context, o *db.VillageOfficial) error
	Officials(ctx context.Context, activeOnly bool) ([]db.VillageOfficial, error)
}

type ProfileStore interface {
	KadesProfile(ctx context.Context) (*db.KadesProfile, error)
	SaveKadesProfile(ctx context.Context, p *db.KadesProfile) error
	VillageProfile(ctx context.Context) (*db.VillageProfile, error)
	UpdateVisiMisi(ctx context.Context, visi *string, misi []string, updatedAt time.Time) error
}

// Store is everything the Manager reads and writes. *db.Repository implements it.
type Store interface {
	NewsStore
	StatsStore
	ContentStore
	ProfileStore
}

var _ Store = (*db.Repository)(nil)
