package desa

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

var statsViews = []string{ViewAdminStatistics, ViewStatistics, ViewHome}

// StatsInput is the yearly statistics form. The breakdown lists arrive as
// JSON arrays serialized into single form fields.
type StatsInput struct {
	Year            FormInt `json:"year" form:"year" swaggertype:"integer"`
	TotalPopulation FormInt `json:"total_population" form:"total_population" swaggertype:"integer"`
	TotalMale       FormInt `json:"total_male" form:"total_male" swaggertype:"integer"`
	TotalFemale     FormInt `json:"total_female" form:"total_female" swaggertype:"integer"`
	TotalFamilies   FormInt `json:"total_families" form:"total_families" swaggertype:"integer"`
	TotalRW         FormInt `json:"total_rw" form:"total_rw" swaggertype:"integer"`
	TotalRT         FormInt `json:"total_rt" form:"total_rt" swaggertype:"integer"`
	Notes           string  `json:"notes" form:"notes"`

	AgeGroups   string `json:"age_groups" form:"age_groups"`
	Occupations string `json:"occupations" form:"occupations"`
	Educations  string `json:"educations" form:"educations"`
}

type AgeGroupRow struct {
	AgeGroup    string  `json:"age_group"`
	MaleCount   FormInt `json:"male_count"`
	FemaleCount FormInt `json:"female_count"`
}

type OccupationRow struct {
	Occupation string  `json:"occupation"`
	Count      FormInt `json:"count"`
}

type EducationRow struct {
	Level string  `json:"level"`
	Count FormInt `json:"count"`
}

// AgeRows keeps rows where at least one count is non-zero, in submitted order.
func AgeRows(statsID uuid.UUID, rows []AgeGroupRow, newID func() uuid.UUID) []db.AgeDistribution {
	var result []db.AgeDistribution
	for _, r := range rows {
		male, female := r.MaleCount.Int(), r.FemaleCount.Int()
		if male == 0 && female == 0 {
			continue
		}

		result = append(result, db.AgeDistribution{
			ID:          newID(),
			StatsID:     statsID,
			Position:    len(result),
			AgeGroup:    strings.TrimSpace(r.AgeGroup),
			MaleCount:   male,
			FemaleCount: female,
		})
	}

	return result
}

func OccupationRows(statsID uuid.UUID, rows []OccupationRow, newID func() uuid.UUID) []db.OccupationDistribution {
	var result []db.OccupationDistribution
	for _, r := range rows {
		if r.Count.Int() == 0 {
			continue
		}

		result = append(result, db.OccupationDistribution{
			ID:         newID(),
			StatsID:    statsID,
			Occupation: strings.TrimSpace(r.Occupation),
			Count:      r.Count.Int(),
		})
	}

	return result
}

func EducationRows(statsID uuid.UUID, rows []EducationRow, newID func() uuid.UUID) []db.EducationDistribution {
	var result []db.EducationDistribution
	for _, r := range rows {
		if r.Count.Int() == 0 {
			continue
		}

		result = append(result, db.EducationDistribution{
			ID:      newID(),
			StatsID: statsID,
			Level:   strings.TrimSpace(r.Level),
			Count:   r.Count.Int(),
		})
	}

	return result
}

// decodeBreakdown parses one serialized list. Blank input yields nothing and
// unparseable input is logged and ignored.
func decodeBreakdown[T any](ctx context.Context, m *Manager, field, raw string) []T {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var rows []T
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		m.logger.WarnContext(ctx, "ignoring unparseable breakdown", "field", field, "error", err)
		return nil
	}

	return rows
}

// SaveStats records a new current snapshot. Demoting the previous current row
// and inserting the new one happen atomically; breakdown rows are written
// afterwards and their failures are only logged.
func (m *Manager) SaveStats(ctx context.Context, in StatsInput) (*Result, error) {
	if !in.Year.Valid || !in.TotalPopulation.Valid {
		return nil, invalid("Tahun dan total penduduk wajib diisi.")
	}

	stats := &db.PopulationStats{
		ID:              m.newID(),
		Year:            in.Year.Value,
		TotalPopulation: in.TotalPopulation.Value,
		TotalMale:       in.TotalMale.Int(),
		TotalFemale:     in.TotalFemale.Int(),
		TotalFamilies:   in.TotalFamilies.Int(),
		TotalRW:         in.TotalRW.Int(),
		TotalRT:         in.TotalRT.Int(),
		Notes:           optional(in.Notes),
		IsCurrent:       true,
		RecordedAt:      m.now(),
	}

	if err := m.store.InsertCurrentStats(ctx, stats); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	age := AgeRows(stats.ID, decodeBreakdown[AgeGroupRow](ctx, m, "age_groups", in.AgeGroups), m.newID)
	if err := m.store.InsertAgeDistribution(ctx, age); err != nil {
		m.logger.WarnContext(ctx, "failed to save age distribution", "statsId", stats.ID, "error", err)
	}

	occ := OccupationRows(stats.ID, decodeBreakdown[OccupationRow](ctx, m, "occupations", in.Occupations), m.newID)
	if err := m.store.InsertOccupationDistribution(ctx, occ); err != nil {
		m.logger.WarnContext(ctx, "failed to save occupation distribution", "statsId", stats.ID, "error", err)
	}

	edu := EducationRows(stats.ID, decodeBreakdown[EducationRow](ctx, m, "educations", in.Educations), m.newID)
	if err := m.store.InsertEducationDistribution(ctx, edu); err != nil {
		m.logger.WarnContext(ctx, "failed to save education distribution", "statsId", stats.ID, "error", err)
	}

	m.cache.Invalidate(statsViews...)

	return &Result{Message: "Data statistik berhasil disimpan sebagai data terkini!", ID: stats.ID}, nil
}

// StatsSnapshot is a statistics row with its breakdowns.
type StatsSnapshot struct {
	db.PopulationStats
	Age         []db.AgeDistribution
	Occupations []db.OccupationDistribution
	Educations  []db.EducationDistribution
}

// CurrentStats returns the current snapshot with breakdowns, nil when none exists.
func (m *Manager) CurrentStats(ctx context.Context) (*StatsSnapshot, error) {
	stats, err := m.store.CurrentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get current stats: %w", err)
	} else if stats == nil {
		return nil, nil
	}

	snapshot := &StatsSnapshot{PopulationStats: *stats}

	if snapshot.Age, err = m.store.AgeDistribution(ctx, stats.ID); err != nil {
		return nil, fmt.Errorf("db get age distribution: %w", err)
	}
	if snapshot.Occupations, err = m.store.OccupationDistribution(ctx, stats.ID); err != nil {
		return nil, fmt.Errorf("db get occupation distribution: %w", err)
	}
	if snapshot.Educations, err = m.store.EducationDistribution(ctx, stats.ID); err != nil {
		return nil, fmt.Errorf("db get education distribution: %w", err)
	}

	return snapshot, nil
}

// Statistics is the statistics page: the current snapshot plus every recorded year.
type Statistics struct {
	Current *StatsSnapshot
	History []db.PopulationStats
}

func (m *Manager) Statistics(ctx context.Context) (*Statistics, error) {
	current, err := m.CurrentStats(ctx)
	if err != nil {
		return nil, err
	}

	history, err := m.store.StatsHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get stats history: %w", err)
	}

	return &Statistics{Current: current, History: history}, nil
}
