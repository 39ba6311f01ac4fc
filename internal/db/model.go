// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/google/uuid"
)

var Tables = struct {
	Admin struct {
		Name, Alias string
	}
	AgeDistribution struct {
		Name, Alias string
	}
	EducationDistribution struct {
		Name, Alias string
	}
	GalleryItem struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	KadesProfile struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	OccupationDistribution struct {
		Name, Alias string
	}
	PopulationStats struct {
		Name, Alias string
	}
	PriorityProgram struct {
		Name, Alias string
	}
	VillageOfficial struct {
		Name, Alias string
	}
	VillageProfile struct {
		Name, Alias string
	}
	VillageService struct {
		Name, Alias string
	}
}{
	Admin: struct {
		Name, Alias string
	}{
		Name:  "admins",
		Alias: "t",
	},
	AgeDistribution: struct {
		Name, Alias string
	}{
		Name:  "age_distribution",
		Alias: "t",
	},
	EducationDistribution: struct {
		Name, Alias string
	}{
		Name:  "education_distribution",
		Alias: "t",
	},
	GalleryItem: struct {
		Name, Alias string
	}{
		Name:  "gallery",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	KadesProfile: struct {
		Name, Alias string
	}{
		Name:  "kades_profile",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	OccupationDistribution: struct {
		Name, Alias string
	}{
		Name:  "occupation_distribution",
		Alias: "t",
	},
	PopulationStats: struct {
		Name, Alias string
	}{
		Name:  "population_stats",
		Alias: "t",
	},
	PriorityProgram: struct {
		Name, Alias string
	}{
		Name:  "priority_programs",
		Alias: "t",
	},
	VillageOfficial: struct {
		Name, Alias string
	}{
		Name:  "village_officials",
		Alias: "t",
	},
	VillageProfile: struct {
		Name, Alias string
	}{
		Name:  "village_profile",
		Alias: "t",
	},
	VillageService: struct {
		Name, Alias string
	}{
		Name:  "village_services",
		Alias: "t",
	},
}

type Admin struct {
	tableName struct{} `pg:"admins,alias:t,discard_unknown_columns"`

	ID           uuid.UUID `pg:"id,pk,type:uuid"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"password_hash,use_zero"`
	CreatedAt    time.Time `pg:"created_at,use_zero"`
}

type AgeDistribution struct {
	tableName struct{} `pg:"age_distribution,alias:t,discard_unknown_columns"`

	ID          uuid.UUID `pg:"id,pk,type:uuid"`
	StatsID     uuid.UUID `pg:"stats_id,type:uuid,use_zero"`
	Position    int       `pg:"position,use_zero"`
	AgeGroup    string    `pg:"age_group,use_zero"`
	MaleCount   int       `pg:"male_count,use_zero"`
	FemaleCount int       `pg:"female_count,use_zero"`
}

type EducationDistribution struct {
	tableName struct{} `pg:"education_distribution,alias:t,discard_unknown_columns"`

	ID      uuid.UUID `pg:"id,pk,type:uuid"`
	StatsID uuid.UUID `pg:"stats_id,type:uuid,use_zero"`
	Level   string    `pg:"level,use_zero"`
	Count   int       `pg:"count,use_zero"`
}

type GalleryItem struct {
	tableName struct{} `pg:"gallery,alias:t,discard_unknown_columns"`

	ID          uuid.UUID `pg:"id,pk,type:uuid"`
	Title       string    `pg:"title,use_zero"`
	Description *string   `pg:"description"`
	ImageURL    *string   `pg:"image_url"`
	Category    *string   `pg:"category"`
	SortOrder   int       `pg:"sort_order,use_zero"`
	IsActive    bool      `pg:"is_active,use_zero"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`
}

type KadesProfile struct {
	tableName struct{} `pg:"kades_profile,alias:t,discard_unknown_columns"`

	ID            int       `pg:"id,pk"`
	FullName      string    `pg:"full_name,use_zero"`
	Title         *string   `pg:"title"`
	Period        *string   `pg:"period"`
	PhotoURL      *string   `pg:"photo_url"`
	WelcomeSpeech *string   `pg:"welcome_speech"`
	UpdatedAt     time.Time `pg:"updated_at,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          uuid.UUID  `pg:"id,pk,type:uuid"`
	Slug        string     `pg:"slug,use_zero"`
	Title       string     `pg:"title,use_zero"`
	Excerpt     *string    `pg:"excerpt"`
	Content     string     `pg:"content,use_zero"`
	CoverURL    *string    `pg:"cover_url"`
	Category    string     `pg:"category,use_zero"`
	IsPublished bool       `pg:"is_published,use_zero"`
	Views       int        `pg:"views,use_zero"`
	PublishedAt *time.Time `pg:"published_at"`
	CreatedAt   time.Time  `pg:"created_at,use_zero"`
	UpdatedAt   time.Time  `pg:"updated_at,use_zero"`
}

type OccupationDistribution struct {
	tableName struct{} `pg:"occupation_distribution,alias:t,discard_unknown_columns"`

	ID         uuid.UUID `pg:"id,pk,type:uuid"`
	StatsID    uuid.UUID `pg:"stats_id,type:uuid,use_zero"`
	Occupation string    `pg:"occupation,use_zero"`
	Count      int       `pg:"count,use_zero"`
}

type PopulationStats struct {
	tableName struct{} `pg:"population_stats,alias:t,discard_unknown_columns"`

	ID              uuid.UUID `pg:"id,pk,type:uuid"`
	Year            int       `pg:"year,use_zero"`
	TotalPopulation int       `pg:"total_population,use_zero"`
	TotalMale       int       `pg:"total_male,use_zero"`
	TotalFemale     int       `pg:"total_female,use_zero"`
	TotalFamilies   int       `pg:"total_families,use_zero"`
	TotalRW         int       `pg:"total_rw,use_zero"`
	TotalRT         int       `pg:"total_rt,use_zero"`
	Notes           *string   `pg:"notes"`
	IsCurrent       bool      `pg:"is_current,use_zero"`
	RecordedAt      time.Time `pg:"recorded_at,use_zero"`
}

type PriorityProgram struct {
	tableName struct{} `pg:"priority_programs,alias:t,discard_unknown_columns"`

	ID          uuid.UUID `pg:"id,pk,type:uuid"`
	SortOrder   int       `pg:"sort_order,use_zero"`
	Title       string    `pg:"title,use_zero"`
	Description *string   `pg:"description"`
	Icon        *string   `pg:"icon"`
	IsActive    bool      `pg:"is_active,use_zero"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`
	UpdatedAt   time.Time `pg:"updated_at,use_zero"`
}

type VillageOfficial struct {
	tableName struct{} `pg:"village_officials,alias:t,discard_unknown_columns"`

	ID        uuid.UUID `pg:"id,pk,type:uuid"`
	FullName  string    `pg:"full_name,use_zero"`
	Position  string    `pg:"position,use_zero"`
	PhotoURL  *string   `pg:"photo_url"`
	SortOrder int       `pg:"sort_order,use_zero"`
	IsActive  bool      `pg:"is_active,use_zero"`
}

type VillageProfile struct {
	tableName struct{} `pg:"village_profile,alias:t,discard_unknown_columns"`

	ID              int       `pg:"id,pk"`
	VillageName     string    `pg:"village_name,use_zero"`
	Tagline         *string   `pg:"tagline"`
	Address         *string   `pg:"address"`
	Kecamatan       string    `pg:"kecamatan,use_zero"`
	Kabupaten       string    `pg:"kabupaten,use_zero"`
	Visi            *string   `pg:"visi"`
	Misi            []string  `pg:"misi,array"`
	EstablishedYear *int      `pg:"established_year"`
	AreaHa          *float64  `pg:"area_ha"`
	MapsEmbedURL    *string   `pg:"maps_embed_url"`
	HeroImageURL    *string   `pg:"hero_image_url"`
	UpdatedAt       time.Time `pg:"updated_at,use_zero"`
}

type VillageService struct {
	tableName struct{} `pg:"village_services,alias:t,discard_unknown_columns"`

	ID           uuid.UUID `pg:"id,pk,type:uuid"`
	SortOrder    int       `pg:"sort_order,use_zero"`
	Title        string    `pg:"title,use_zero"`
	Description  *string   `pg:"description"`
	Icon         *string   `pg:"icon"`
	Requirements *string   `pg:"requirements"`
	IsActive     bool      `pg:"is_active,use_zero"`
}
