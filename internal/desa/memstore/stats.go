package memstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

// InsertCurrentStats demotes the current row and inserts st under one lock,
// so no reader observes zero or two current rows.
func (s *Store) InsertCurrentStats(_ context.Context, st *db.PopulationStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("InsertCurrentStats"); err != nil {
		return err
	}

	if _, ok := s.stats[st.ID]; ok {
		return fmt.Errorf("duplicate stats id %s", st.ID)
	}

	for id, existing := range s.stats {
		if existing.IsCurrent {
			existing.IsCurrent = false
			s.stats[id] = existing
		}
	}

	st.IsCurrent = true
	s.stats[st.ID] = *st

	return nil
}

func (s *Store) CurrentStats(_ context.Context) (*db.PopulationStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("CurrentStats"); err != nil {
		return nil, err
	}

	for _, st := range s.stats {
		if st.IsCurrent {
			return &st, nil
		}
	}
	return nil, nil
}

// CurrentCount returns how many rows are flagged current.
func (s *Store) CurrentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, st := range s.stats {
		if st.IsCurrent {
			count++
		}
	}
	return count
}

func (s *Store) StatsHistory(_ context.Context) ([]db.PopulationStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail("StatsHistory"); err != nil {
		return nil, err
	}

	list := make([]db.PopulationStats, 0, len(s.stats))
	for _, st := range s.stats {
		list = append(list, st)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}
		return list[i].RecordedAt.After(list[j].RecordedAt)
	})

	return list, nil
}

func (s *Store) InsertAgeDistribution(_ context.Context, rows []db.AgeDistribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(rows) == 0 {
		return nil
	}
	if err := s.fail("InsertAgeDistribution"); err != nil {
		return err
	}

	s.age = append(s.age, rows...)
	return nil
}

func (s *Store) InsertOccupationDistribution(_ context.Context, rows []db.OccupationDistribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(rows) == 0 {
		return nil
	}
	if err := s.fail("InsertOccupationDistribution"); err != nil {
		return err
	}

	s.occupation = append(s.occupation, rows...)
	return nil
}

func (s *Store) InsertEducationDistribution(_ context.Context, rows []db.EducationDistribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(rows) == 0 {
		return nil
	}
	if err := s.fail("InsertEducationDistribution"); err != nil {
		return err
	}

	s.education = append(s.education, rows...)
	return nil
}

func (s *Store) AgeDistribution(_ context.Context, statsID uuid.UUID) ([]db.AgeDistribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []db.AgeDistribution
	for _, r := range s.age {
		if r.StatsID == statsID {
			rows = append(rows, r)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	return rows, nil
}

func (s *Store) OccupationDistribution(_ context.Context, statsID uuid.UUID) ([]db.OccupationDistribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []db.OccupationDistribution
	for _, r := range s.occupation {
		if r.StatsID == statsID {
			rows = append(rows, r)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows, nil
}

func (s *Store) EducationDistribution(_ context.Context, statsID uuid.UUID) ([]db.EducationDistribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []db.EducationDistribution
	for _, r := range s.education {
		if r.StatsID == statsID {
			rows = append(rows, r)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows, nil
}
