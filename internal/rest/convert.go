package rest

import (
	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/google/uuid"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func newMutationResponse(res *desa.Result) MutationResponse {
	resp := MutationResponse{Success: true, Message: res.Message}
	if res.ID != uuid.Nil {
		resp.ID = res.ID.String()
	}
	return resp
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

func NewNews(n db.News) News {
	return News{
		NewsID:      n.ID.String(),
		Slug:        n.Slug,
		Title:       n.Title,
		Excerpt:     n.Excerpt,
		Content:     n.Content,
		CoverURL:    n.CoverURL,
		Category:    n.Category,
		IsPublished: n.IsPublished,
		Views:       n.Views,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func NewNewsPage(p *desa.NewsPage) NewsPage {
	return NewsPage{
		News:       Map(p.News, NewNewsSummary),
		Categories: append([]string{desa.CategoryAll}, desa.Categories...),
		Category:   p.Category,
		Page:       p.Page,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

func NewNewsDetail(d *desa.NewsDetail) NewsDetail {
	return NewsDetail{
		News:    NewNews(d.News),
		IsDraft: d.IsDraft,
		Related: Map(d.Related, NewNewsSummary),
	}
}

func NewService(s db.VillageService) Service {
	return Service{
		ServiceID:    s.ID.String(),
		SortOrder:    s.SortOrder,
		Title:        s.Title,
		Description:  s.Description,
		Icon:         s.Icon,
		Requirements: s.Requirements,
		IsActive:     s.IsActive,
	}
}

func NewGalleryItem(g db.GalleryItem) GalleryItem {
	return GalleryItem{
		GalleryItemID: g.ID.String(),
		Title:         g.Title,
		Description:   g.Description,
		ImageURL:      g.ImageURL,
		Category:      g.Category,
		SortOrder:     g.SortOrder,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
	}
}

func NewProgram(p db.PriorityProgram) Program {
	return Program{
		ProgramID:   p.ID.String(),
		SortOrder:   p.SortOrder,
		Title:       p.Title,
		Description: p.Description,
		Icon:        p.Icon,
		IsActive:    p.IsActive,
	}
}

func NewOfficial(o db.VillageOfficial) Official {
	return Official{
		OfficialID: o.ID.String(),
		FullName:   o.FullName,
		Position:   o.Position,
		PhotoURL:   o.PhotoURL,
		SortOrder:  o.SortOrder,
		IsActive:   o.IsActive,
	}
}

func NewKades(k *db.KadesProfile) *Kades {
	if k == nil {
		return nil
	}

	return &Kades{
		FullName:      k.FullName,
		Title:         k.Title,
		Period:        k.Period,
		PhotoURL:      k.PhotoURL,
		WelcomeSpeech: k.WelcomeSpeech,
		UpdatedAt:     k.UpdatedAt,
	}
}

func NewVillage(v *db.VillageProfile) *Village {
	if v == nil {
		return nil
	}

	return &Village{
		VillageName:     v.VillageName,
		Tagline:         v.Tagline,
		Address:         v.Address,
		Kecamatan:       v.Kecamatan,
		Kabupaten:       v.Kabupaten,
		Visi:            v.Visi,
		Misi:            v.Misi,
		EstablishedYear: v.EstablishedYear,
		AreaHa:          v.AreaHa,
		MapsEmbedURL:    v.MapsEmbedURL,
		HeroImageURL:    v.HeroImageURL,
		UpdatedAt:       v.UpdatedAt,
	}
}

func NewStats(s db.PopulationStats) Stats {
	return Stats{
		StatsID:         s.ID.String(),
		Year:            s.Year,
		TotalPopulation: s.TotalPopulation,
		TotalMale:       s.TotalMale,
		TotalFemale:     s.TotalFemale,
		TotalFamilies:   s.TotalFamilies,
		TotalRW:         s.TotalRW,
		TotalRT:         s.TotalRT,
		Notes:           s.Notes,
		IsCurrent:       s.IsCurrent,
		RecordedAt:      s.RecordedAt,
	}
}

func NewStatsSnapshot(s *desa.StatsSnapshot) *StatsSnapshot {
	if s == nil {
		return nil
	}

	return &StatsSnapshot{
		Stats: NewStats(s.PopulationStats),
		Age: Map(s.Age, func(a db.AgeDistribution) AgeGroup {
			return AgeGroup{AgeGroup: a.AgeGroup, MaleCount: a.MaleCount, FemaleCount: a.FemaleCount}
		}),
		Occupations: Map(s.Occupations, func(o db.OccupationDistribution) Occupation {
			return Occupation{Occupation: o.Occupation, Count: o.Count}
		}),
		Educations: Map(s.Educations, func(e db.EducationDistribution) Education {
			return Education{Level: e.Level, Count: e.Count}
		}),
	}
}

func NewStatistics(s *desa.Statistics) Statistics {
	return Statistics{
		Current: NewStatsSnapshot(s.Current),
		History: Map(s.History, NewStats),
	}
}

func NewHome(h *desa.Home) Home {
	return Home{
		Kades:    NewKades(h.Kades),
		Programs: Map(h.Programs, NewProgram),
		Stats:    NewStatsSnapshot(h.Stats),
		News:     Map(h.News, NewNewsSummary),
		Services: Map(h.Services, NewService),
		Gallery:  Map(h.Gallery, NewGalleryItem),
	}
}

func NewProfile(p *desa.Profile) Profile {
	return Profile{
		Village:   NewVillage(p.Village),
		Officials: Map(p.Officials, NewOfficial),
	}
}

func NewAdminProfile(p *desa.AdminProfile) AdminProfile {
	return AdminProfile{
		Kades:     NewKades(p.Kades),
		Village:   NewVillage(p.Village),
		Programs:  Map(p.Programs, NewProgram),
		Officials: Map(p.Officials, NewOfficial),
	}
}

func NewDashboard(d *desa.Dashboard) Dashboard {
	return Dashboard{
		TotalNews:       d.TotalNews,
		PublishedNews:   d.PublishedNews,
		TotalServices:   d.TotalServices,
		TotalGallery:    d.TotalGallery,
		TotalPopulation: d.TotalPopulation,
		StatsYear:       d.StatsYear,
		HasStats:        d.HasStats,
	}
}
