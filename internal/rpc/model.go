package rpc

import "time"

type NewsFilter struct {
	//kategori category filter, Semua or empty for all
	Kategori string `json:"kategori,omitempty"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
}

type NewsSummary struct {
	NewsID      string     `json:"newsId"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	CoverURL    *string    `json:"coverUrl"`
	Category    string     `json:"category"`
	Views       int        `json:"views"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type News struct {
	NewsSummary
	Content string `json:"content"`
}

type NewsPage struct {
	News       []NewsSummary `json:"news"`
	Category   string        `json:"category"`
	Page       int           `json:"page"`
	TotalCount int           `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
}

type NewsDetail struct {
	News    News          `json:"news"`
	Related []NewsSummary `json:"related"`
}

type Service struct {
	ServiceID    string  `json:"serviceId"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Requirements *string `json:"requirements"`
}

type GalleryItem struct {
	GalleryItemID string  `json:"galleryItemId"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"imageUrl"`
	Category      *string `json:"category"`
}

type Breakdown struct {
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Female *int   `json:"female,omitempty"`
}

type StatsSnapshot struct {
	Year            int         `json:"year"`
	TotalPopulation int         `json:"totalPopulation"`
	TotalMale       int         `json:"totalMale"`
	TotalFemale     int         `json:"totalFemale"`
	TotalFamilies   int         `json:"totalFamilies"`
	TotalRW         int         `json:"totalRw"`
	TotalRT         int         `json:"totalRt"`
	Notes           *string     `json:"notes"`
	RecordedAt      time.Time   `json:"recordedAt"`
	Age             []Breakdown `json:"age"`
	Occupations     []Breakdown `json:"occupations"`
	Educations      []Breakdown `json:"educations"`
}
