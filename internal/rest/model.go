package rest

import "time"

// MutationResponse is the body of every admin write.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
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
	NewsID      string     `json:"newsId"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     string     `json:"content"`
	CoverURL    *string    `json:"coverUrl"`
	Category    string     `json:"category"`
	IsPublished bool       `json:"isPublished"`
	Views       int        `json:"views"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type NewsPage struct {
	News       []NewsSummary `json:"news"`
	Categories []string      `json:"categories"`
	Category   string        `json:"category"`
	Page       int           `json:"page"`
	TotalCount int           `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
}

type NewsDetail struct {
	News    News          `json:"news"`
	IsDraft bool          `json:"isDraft"`
	Related []NewsSummary `json:"related"`
}

type Service struct {
	ServiceID    string  `json:"serviceId"`
	SortOrder    int     `json:"sortOrder"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Requirements *string `json:"requirements"`
	IsActive     bool    `json:"isActive"`
}

type GalleryItem struct {
	GalleryItemID string    `json:"galleryItemId"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"imageUrl"`
	Category      *string   `json:"category"`
	SortOrder     int       `json:"sortOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Program struct {
	ProgramID   string  `json:"programId"`
	SortOrder   int     `json:"sortOrder"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    bool    `json:"isActive"`
}

type Official struct {
	OfficialID string  `json:"officialId"`
	FullName   string  `json:"fullName"`
	Position   string  `json:"position"`
	PhotoURL   *string `json:"photoUrl"`
	SortOrder  int     `json:"sortOrder"`
	IsActive   bool    `json:"isActive"`
}

type Kades struct {
	FullName      string    `json:"fullName"`
	Title         *string   `json:"title"`
	Period        *string   `json:"period"`
	PhotoURL      *string   `json:"photoUrl"`
	WelcomeSpeech *string   `json:"welcomeSpeech"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Village struct {
	VillageName     string    `json:"villageName"`
	Tagline         *string   `json:"tagline"`
	Address         *string   `json:"address"`
	Kecamatan       string    `json:"kecamatan"`
	Kabupaten       string    `json:"kabupaten"`
	Visi            *string   `json:"visi"`
	Misi            []string  `json:"misi"`
	EstablishedYear *int      `json:"establishedYear"`
	AreaHa          *float64  `json:"areaHa"`
	MapsEmbedURL    *string   `json:"mapsEmbedUrl"`
	HeroImageURL    *string   `json:"heroImageUrl"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AgeGroup struct {
	AgeGroup    string `json:"ageGroup"`
	MaleCount   int    `json:"maleCount"`
	FemaleCount int    `json:"femaleCount"`
}

type Occupation struct {
	Occupation string `json:"occupation"`
	Count      int    `json:"count"`
}

type Education struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type Stats struct {
	StatsID         string    `json:"statsId"`
	Year            int       `json:"year"`
	TotalPopulation int       `json:"totalPopulation"`
	TotalMale       int       `json:"totalMale"`
	TotalFemale     int       `json:"totalFemale"`
	TotalFamilies   int       `json:"totalFamilies"`
	TotalRW         int       `json:"totalRw"`
	TotalRT         int       `json:"totalRt"`
	Notes           *string   `json:"notes"`
	IsCurrent       bool      `json:"isCurrent"`
	RecordedAt      time.Time `json:"recordedAt"`
}

type StatsSnapshot struct {
	Stats
	Age         []AgeGroup   `json:"age"`
	Occupations []Occupation `json:"occupations"`
	Educations  []Education  `json:"educations"`
}

type Statistics struct {
	Current *StatsSnapshot `json:"current"`
	History []Stats        `json:"history"`
}

type Home struct {
	Kades    *Kades         `json:"kades"`
	Programs []Program      `json:"programs"`
	Stats    *StatsSnapshot `json:"stats"`
	News     []NewsSummary  `json:"news"`
	Services []Service      `json:"services"`
	Gallery  []GalleryItem  `json:"gallery"`
}

type Profile struct {
	Village   *Village   `json:"village"`
	Officials []Official `json:"officials"`
}

type AdminProfile struct {
	Kades     *Kades     `json:"kades"`
	Village   *Village   `json:"village"`
	Programs  []Program  `json:"programs"`
	Officials []Official `json:"officials"`
}

type Dashboard struct {
	TotalNews       int  `json:"totalNews"`
	PublishedNews   int  `json:"publishedNews"`
	TotalServices   int  `json:"totalServices"`
	TotalGallery    int  `json:"totalGallery"`
	TotalPopulation int  `json:"totalPopulation"`
	StatsYear       int  `json:"statsYear"`
	HasStats        bool `json:"hasStats"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
