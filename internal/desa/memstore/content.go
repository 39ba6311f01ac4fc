package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

type sorted struct {
	id        uuid.UUID
	sortOrder int
	active    bool
}

func (s *Store) rows(kind db.Kind) ([]sorted, error) {
	var list []sorted
	switch kind {
	case db.KindService:
		for _, r := range s.services {
			list = append(list, sorted{r.ID, r.SortOrder, r.IsActive})
		}
	case db.KindGallery:
		for _, r := range s.gallery {
			list = append(list, sorted{r.ID, r.SortOrder, r.IsActive})
		}
	case db.KindProgram:
		for _, r := range s.programs {
			list = append(list, sorted{r.ID, r.SortOrder, r.IsActive})
		}
	case db.KindOfficial:
		for _, r := range s.officials {
			list = append(list, sorted{r.ID, r.SortOrder, r.IsActive})
		}
	default:
		return nil, fmt.Errorf("unknown kind %d", kind)
	}

	return list, nil
}

func (s *Store) MaxSortOrder(_ context.Context, kind db.Kind) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("MaxSortOrder"); err != nil {
		return 0, err
	}

	list, err := s.rows(kind)
	if err != nil {
		return 0, err
	}

	maxOrder := 0
	for _, r := range list {
		maxOrder = max(maxOrder, r.sortOrder)
	}
	return maxOrder, nil
}

func (s *Store) DeleteSorted(_ context.Context, kind db.Kind, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("DeleteSorted"); err != nil {
		return err
	}

	var found bool
	switch kind {
	case db.KindService:
		_, found = s.services[id]
		delete(s.services, id)
	case db.KindGallery:
		_, found = s.gallery[id]
		delete(s.gallery, id)
	case db.KindProgram:
		_, found = s.programs[id]
		delete(s.programs, id)
	case db.KindOfficial:
		_, found = s.officials[id]
		delete(s.officials, id)
	default:
		return fmt.Errorf("unknown kind %d", kind)
	}

	if !found {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) ToggleActive(_ context.Context, kind db.Kind, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("ToggleActive"); err != nil {
		return false, err
	}

	switch kind {
	case db.KindService:
		if r, ok := s.services[id]; ok {
			r.IsActive = !r.IsActive
			s.services[id] = r
			return r.IsActive, nil
		}
	case db.KindGallery:
		if r, ok := s.gallery[id]; ok {
			r.IsActive = !r.IsActive
			s.gallery[id] = r
			return r.IsActive, nil
		}
	case db.KindProgram:
		if r, ok := s.programs[id]; ok {
			r.IsActive = !r.IsActive
			s.programs[id] = r
			return r.IsActive, nil
		}
	case db.KindOfficial:
		if r, ok := s.officials[id]; ok {
			r.IsActive = !r.IsActive
			s.officials[id] = r
			return r.IsActive, nil
		}
	default:
		return false, fmt.Errorf("unknown kind %d", kind)
	}

	return false, db.ErrNotFound
}

func (s *Store) Count(_ context.Context, kind db.Kind) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.rows(kind)
	return len(list), err
}

func (s *Store) CreateService(_ context.Context, v *db.VillageService) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("CreateService"); err != nil {
		return err
	}

	s.services[v.ID] = *v
	return nil
}

func (s *Store) UpdateService(_ context.Context, v *db.VillageService) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("UpdateService"); err != nil {
		return err
	}

	current, ok := s.services[v.ID]
	if !ok {
		return db.ErrNotFound
	}

	current.Title = v.Title
	current.Description = v.Description
	current.Requirements = v.Requirements
	current.Icon = v.Icon
	s.services[v.ID] = current

	return nil
}

func (s *Store) Services(_ context.Context, activeOnly bool) ([]db.VillageService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []db.VillageService
	for _, r := range s.services {
		if !activeOnly || r.IsActive {
			list = append(list, r)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (s *Store) CreateGalleryItem(_ context.Context, g *db.GalleryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("CreateGalleryItem"); err != nil {
		return err
	}

	s.gallery[g.ID] = *g
	return nil
}

func (s *Store) Gallery(_ context.Context, activeOnly bool, limit int) ([]db.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []db.GalleryItem
	for _, r := range s.gallery {
		if !activeOnly || r.IsActive {
			list = append(list, r)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *Store) CreateProgram(_ context.Context, p *db.PriorityProgram) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("CreateProgram"); err != nil {
		return err
	}

	s.programs[p.ID] = *p
	return nil
}

func (s *Store) Programs(_ context.Context, activeOnly bool) ([]db.PriorityProgram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []db.PriorityProgram
	for _, r := range s.programs {
		if !activeOnly || r.IsActive {
			list = append(list, r)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (s *Store) CreateOfficial(_ context.Context, o *db.VillageOfficial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("CreateOfficial"); err != nil {
		return err
	}

	s.officials[o.ID] = *o
	return nil
}

func (s *Store) Officials(_ context.Context, activeOnly bool) ([]db.VillageOfficial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []db.VillageOfficial
	for _, r := range s.officials {
		if !activeOnly || r.IsActive {
			list = append(list, r)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (s *Store) KadesProfile(_ context.Context) (*db.KadesProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("KadesProfile"); err != nil {
		return nil, err
	}

	p := s.kades
	return &p, nil
}

func (s *Store) SaveKadesProfile(_ context.Context, p *db.KadesProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("SaveKadesProfile"); err != nil {
		return err
	}

	p.ID = 1
	s.kades = *p
	return nil
}

func (s *Store) VillageProfile(_ context.Context) (*db.VillageProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("VillageProfile"); err != nil {
		return nil, err
	}

	p := s.village
	p.Misi = append([]string(nil), s.village.Misi...)
	return &p, nil
}

func (s *Store) UpdateVisiMisi(_ context.Context, visi *string, misi []string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("UpdateVisiMisi"); err != nil {
		return err
	}

	s.village.Visi = visi
	s.village.Misi = misi
	s.village.UpdatedAt = updatedAt
	return nil
}
