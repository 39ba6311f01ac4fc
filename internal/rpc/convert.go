package rpc

import (
	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNewsSummary(n db.News) NewsSummary {
	return NewsSummary{
		NewsID:      n.ID.String(),
		Slug:        n.Slug,
		Title:       n.Title,
		Excerpt:     n.Excerpt,
		CoverURL:    n.CoverURL,
		Category:    n.Category,
		Views:       n.Views,
		PublishedAt: n.PublishedAt,
	}
}

func NewNewsPage(p *desa.NewsPage) *NewsPage {
	return &NewsPage{
		News:       Map(p.News, NewNewsSummary),
		Category:   p.Category,
		Page:       p.Page,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

func NewNewsDetail(d *desa.NewsDetail) *NewsDetail {
	return &NewsDetail{
		News:    News{NewsSummary: NewNewsSummary(d.News), Content: d.News.Content},
		Related: Map(d.Related, NewNewsSummary),
	}
}

func NewService(s db.VillageService) Service {
	return Service{
		ServiceID:    s.ID.String(),
		Title:        s.Title,
		Description:  s.Description,
		Icon:         s.Icon,
		Requirements: s.Requirements,
	}
}

func NewGalleryItem(g db.GalleryItem) GalleryItem {
	return GalleryItem{
		GalleryItemID: g.ID.String(),
		Title:         g.Title,
		Description:   g.Description,
		ImageURL:      g.ImageURL,
		Category:      g.Category,
	}
}

// NewStatsSnapshot flattens the breakdowns. Age rows carry the male count
// in Count and the female count in Female.
func NewStatsSnapshot(s *desa.StatsSnapshot) *StatsSnapshot {
	if s == nil {
		return nil
	}

	return &StatsSnapshot{
		Year:            s.Year,
		TotalPopulation: s.TotalPopulation,
		TotalMale:       s.TotalMale,
		TotalFemale:     s.TotalFemale,
		TotalFamilies:   s.TotalFamilies,
		TotalRW:         s.TotalRW,
		TotalRT:         s.TotalRT,
		Notes:           s.Notes,
		RecordedAt:      s.RecordedAt,
		Age: Map(s.Age, func(a db.AgeDistribution) Breakdown {
			return Breakdown{Label: a.AgeGroup, Count: a.MaleCount, Female: &a.FemaleCount}
		}),
		Occupations: Map(s.Occupations, func(o db.OccupationDistribution) Breakdown {
			return Breakdown{Label: o.Occupation, Count: o.Count}
		}),
		Educations: Map(s.Educations, func(e db.EducationDistribution) Breakdown {
			return Breakdown{Label: e.Level, Count: e.Count}
		}),
	}
}
