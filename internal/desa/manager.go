package desa

import (
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Views name the logical pages whose cached renderings a mutation makes stale.
const (
	ViewHome       = "/"
	ViewNews       = "/berita"
	ViewServices   = "/layanan"
	ViewGallery    = "/galeri"
	ViewProfile    = "/profil"
	ViewStatistics = "/statistik"

	ViewAdminNews       = "/admin/berita"
	ViewAdminServices   = "/admin/layanan"
	ViewAdminGallery    = "/admin/galeri"
	ViewAdminProfile    = "/admin/profil"
	ViewAdminStatistics = "/admin/statistik"
)

// Invalidator drops cached renderings of the given views.
type Invalidator interface {
	Invalidate(views ...string)
}

// ViewRecorder accepts a news view increment without blocking the caller.
type ViewRecorder interface {
	Record(newsID uuid.UUID) bool
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(...string) {}

// Result is the outcome of a successful mutation.
type Result struct {
	Message string
	ID      uuid.UUID
}

type Manager struct {
	store    Store
	views    ViewRecorder
	cache    Invalidator
	logger   *slog.Logger
	validate *validator.Validate

	now   func() time.Time
	newID func() uuid.UUID
}

// NewManager wires the content layer. cache may be nil when nothing is cached.
func NewManager(store Store, views ViewRecorder, cache Invalidator, logger *slog.Logger) *Manager {
	if cache == nil {
		cache = nopInvalidator{}
	}

	return &Manager{
		store:    store,
		views:    views,
		cache:    cache,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		newID:    uuid.New,
	}
}
