// Package memstore is an in-memory implementation of the desa store used by
// tests. It follows the constraints of the PostgreSQL schema: unique slugs,
// a single current statistics row and singleton profiles.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	news       map[uuid.UUID]db.News
	stats      map[uuid.UUID]db.PopulationStats
	age        []db.AgeDistribution
	occupation []db.OccupationDistribution
	education  []db.EducationDistribution
	services   map[uuid.UUID]db.VillageService
	gallery    map[uuid.UUID]db.GalleryItem
	programs   map[uuid.UUID]db.PriorityProgram
	officials  map[uuid.UUID]db.VillageOfficial
	kades      db.KadesProfile
	village    db.VillageProfile
	failures   map[string]error
}

func New() *Store {
	return &Store{
		news:      make(map[uuid.UUID]db.News),
		stats:     make(map[uuid.UUID]db.PopulationStats),
		services:  make(map[uuid.UUID]db.VillageService),
		gallery:   make(map[uuid.UUID]db.GalleryItem),
		programs:  make(map[uuid.UUID]db.PriorityProgram),
		officials: make(map[uuid.UUID]db.VillageOfficial),
		kades:     db.KadesProfile{ID: 1},
		village:   db.VillageProfile{ID: 1},
		failures:  make(map[string]error),
	}
}

// FailOn makes every later call of method return err. A nil err clears it.
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		delete(s.failures, method)
		return
	}
	s.failures[method] = err
}

func (s *Store) fail(method string) error {
	return s.failures[method]
}

func (s *Store) NewsSlugExists(_ context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("NewsSlugExists"); err != nil {
		return false, err
	}

	for _, n := range s.news {
		if n.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateNews(_ context.Context, n *db.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("CreateNews"); err != nil {
		return err
	}

	for _, existing := range s.news {
		if existing.Slug == n.Slug {
			return fmt.Errorf("insert news %q: %w", n.Slug, db.ErrSlugTaken)
		}
	}

	s.news[n.ID] = *n
	return nil
}

// PutNews stores n as is, bypassing slug checks.
func (s *Store) PutNews(n db.News) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.news[n.ID] = n
}

func (s *Store) NewsByID(_ context.Context, id uuid.UUID) (*db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("NewsByID"); err != nil {
		return nil, err
	}

	n, ok := s.news[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (s *Store) NewsBySlug(_ context.Context, slug string) (*db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("NewsBySlug"); err != nil {
		return nil, err
	}

	for _, n := range s.news {
		if n.Slug == slug {
			return &n, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateNews(_ context.Context, n *db.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("UpdateNews"); err != nil {
		return err
	}

	current, ok := s.news[n.ID]
	if !ok {
		return db.ErrNotFound
	}

	current.Title = n.Title
	current.Excerpt = n.Excerpt
	current.Content = n.Content
	current.Category = n.Category
	current.CoverURL = n.CoverURL
	current.IsPublished = n.IsPublished
	current.PublishedAt = n.PublishedAt
	current.UpdatedAt = n.UpdatedAt
	s.news[n.ID] = current

	return nil
}

func (s *Store) SetNewsPublished(_ context.Context, id uuid.UUID, published bool, publishedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("SetNewsPublished"); err != nil {
		return err
	}

	n, ok := s.news[id]
	if !ok {
		return db.ErrNotFound
	}

	n.IsPublished = published
	n.PublishedAt = publishedAt
	s.news[id] = n

	return nil
}

func (s *Store) DeleteNews(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("DeleteNews"); err != nil {
		return err
	}

	if _, ok := s.news[id]; !ok {
		return db.ErrNotFound
	}

	delete(s.news, id)
	return nil
}

func (s *Store) IncrementNewsViews(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("IncrementNewsViews"); err != nil {
		return err
	}

	if n, ok := s.news[id]; ok && n.IsPublished {
		n.Views++
		s.news[id] = n
	}
	return nil
}

// published returns published news ordered by published_at DESC, NULLs last.
func (s *Store) published(category string) []db.News {
	var list []db.News
	for _, n := range s.news {
		if n.IsPublished && (category == "" || n.Category == category) {
			list = append(list, n)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].PublishedAt, list[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.After(*b)
	})

	return list
}

func (s *Store) PublishedNews(_ context.Context, filter db.NewsFilter) ([]db.News, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("PublishedNews"); err != nil {
		return nil, 0, err
	}

	if filter.Limit < 1 || filter.Offset < 0 {
		return nil, 0, fmt.Errorf("invalid pagination: limit=%d, offset=%d", filter.Limit, filter.Offset)
	}

	list := s.published(filter.Category)
	total := len(list)

	if filter.Offset >= total {
		return nil, total, nil
	}

	end := min(filter.Offset+filter.Limit, total)
	return list[filter.Offset:end], total, nil
}

func (s *Store) RelatedNews(_ context.Context, category, excludeSlug string, limit int) ([]db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("RelatedNews"); err != nil {
		return nil, err
	}

	var related []db.News
	for _, n := range s.published(category) {
		if n.Slug == excludeSlug {
			continue
		}
		if len(related) == limit {
			break
		}
		related = append(related, n)
	}

	return related, nil
}

func (s *Store) AllNews(_ context.Context) ([]db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("AllNews"); err != nil {
		return nil, err
	}

	list := make([]db.News, 0, len(s.news))
	for _, n := range s.news {
		list = append(list, n)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list, nil
}

func (s *Store) NewsCounts(_ context.Context) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("NewsCounts"); err != nil {
		return 0, 0, err
	}

	published := 0
	for _, n := range s.news {
		if n.IsPublished {
			published++
		}
	}

	return len(s.news), published, nil
}
