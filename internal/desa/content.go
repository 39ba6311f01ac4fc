package desa

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
)

const (
	defaultServiceIcon = "📋"
	defaultProgramIcon = "🏛️"
)

// ServiceInput is the admin service form, used for create and update.
type ServiceInput struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Requirements string `json:"requirements" form:"requirements"`
	Icon         string `json:"icon" form:"icon"`
}

type GalleryInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	ImageURL    string `json:"image_url" form:"image_url" validate:"omitempty,url"`
	Category    string `json:"category" form:"category"`
}

type ProgramInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Icon        string `json:"icon" form:"icon"`
}

type OfficialInput struct {
	FullName string `json:"full_name" form:"full_name"`
	Position string `json:"position" form:"position"`
	PhotoURL string `json:"photo_url" form:"photo_url" validate:"omitempty,url"`
}

// toggleMessages holds the activate/deactivate messages per kind.
var toggleMessages = map[db.Kind][2]string{
	db.KindService:  {"Layanan diaktifkan.", "Layanan dinonaktifkan."},
	db.KindGallery:  {"Foto ditampilkan.", "Foto disembunyikan."},
	db.KindProgram:  {"Program diaktifkan.", "Program dinonaktifkan."},
	db.KindOfficial: {"Perangkat desa diaktifkan.", "Perangkat desa dinonaktifkan."},
}

var deleteMessages = map[db.Kind]string{
	db.KindService:  "Layanan berhasil dihapus.",
	db.KindGallery:  "Foto berhasil dihapus.",
	db.KindProgram:  "Program dihapus.",
	db.KindOfficial: "Perangkat desa dihapus.",
}

// mutationViews lists stale views per kind, for create/delete and for toggle.
var mutationViews = map[db.Kind][2][]string{
	db.KindService: {
		{ViewAdminServices, ViewServices, ViewHome},
		{ViewAdminServices, ViewServices},
	},
	db.KindGallery: {
		{ViewAdminGallery, ViewGallery, ViewHome},
		{ViewAdminGallery, ViewGallery},
	},
	db.KindProgram: {
		{ViewAdminProfile, ViewHome},
		{ViewAdminProfile, ViewHome},
	},
	db.KindOfficial: {
		{ViewAdminProfile, ViewProfile},
		{ViewAdminProfile, ViewProfile},
	},
}

// nextSortOrder returns max(sort_order) + 1, which is 1 for an empty table.
func (m *Manager) nextSortOrder(ctx context.Context, kind db.Kind) (int, error) {
	maxOrder, err := m.store.MaxSortOrder(ctx, kind)
	if err != nil {
		return 0, err
	}

	return maxOrder + 1, nil
}

func (m *Manager) CreateService(ctx context.Context, in ServiceInput) (*Result, error) {
	service, err := m.serviceFromInput(in)
	if err != nil {
		return nil, err
	}

	if service.SortOrder, err = m.nextSortOrder(ctx, db.KindService); err != nil {
		return nil, storeFailed("Gagal", err)
	}
	service.ID = m.newID()
	service.IsActive = true

	if err := m.store.CreateService(ctx, service); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(mutationViews[db.KindService][0]...)

	return &Result{Message: "Layanan berhasil ditambahkan!", ID: service.ID}, nil
}

// UpdateService rewrites the text fields of a service. Sort order and
// is_active are untouched.
func (m *Manager) UpdateService(ctx context.Context, id uuid.UUID, in ServiceInput) (*Result, error) {
	service, err := m.serviceFromInput(in)
	if err != nil {
		return nil, err
	}
	service.ID = id

	if err := m.store.UpdateService(ctx, service); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(mutationViews[db.KindService][0]...)

	return &Result{Message: "Layanan berhasil diupdate!", ID: id}, nil
}

func (m *Manager) serviceFromInput(in ServiceInput) (*db.VillageService, error) {
	title := optional(in.Title)
	if title == nil {
		return nil, invalid("Judul layanan wajib diisi.")
	}

	icon := orDefault(in.Icon, defaultServiceIcon)
	return &db.VillageService{
		Title:        *title,
		Description:  optional(in.Description),
		Requirements: optional(in.Requirements),
		Icon:         &icon,
	}, nil
}

func (m *Manager) CreateGalleryItem(ctx context.Context, in GalleryInput) (*Result, error) {
	title := optional(in.Title)
	if title == nil {
		return nil, invalid("Judul foto wajib diisi.")
	}

	in.ImageURL = orDefault(in.ImageURL, "")
	if err := m.validate.Struct(in); err != nil {
		return nil, invalid("URL foto tidak valid.")
	}

	sortOrder, err := m.nextSortOrder(ctx, db.KindGallery)
	if err != nil {
		return nil, storeFailed("Gagal", err)
	}

	item := &db.GalleryItem{
		ID:          m.newID(),
		Title:       *title,
		Description: optional(in.Description),
		ImageURL:    optional(in.ImageURL),
		Category:    optional(in.Category),
		SortOrder:   sortOrder,
		IsActive:    true,
		CreatedAt:   m.now(),
	}

	if err := m.store.CreateGalleryItem(ctx, item); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(mutationViews[db.KindGallery][0]...)

	return &Result{Message: "Foto berhasil ditambahkan!", ID: item.ID}, nil
}

func (m *Manager) CreateProgram(ctx context.Context, in ProgramInput) (*Result, error) {
	title := optional(in.Title)
	if title == nil {
		return nil, invalid("Judul program wajib diisi.")
	}

	sortOrder, err := m.nextSortOrder(ctx, db.KindProgram)
	if err != nil {
		return nil, storeFailed("Gagal", err)
	}

	now := m.now()
	icon := orDefault(in.Icon, defaultProgramIcon)
	program := &db.PriorityProgram{
		ID:          m.newID(),
		SortOrder:   sortOrder,
		Title:       *title,
		Description: optional(in.Description),
		Icon:        &icon,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.store.CreateProgram(ctx, program); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(mutationViews[db.KindProgram][0]...)

	return &Result{Message: "Program berhasil ditambahkan!", ID: program.ID}, nil
}

func (m *Manager) CreateOfficial(ctx context.Context, in OfficialInput) (*Result, error) {
	fullName, position := optional(in.FullName), optional(in.Position)
	if fullName == nil || position == nil {
		return nil, invalid("Nama dan jabatan wajib diisi.")
	}

	in.PhotoURL = orDefault(in.PhotoURL, "")
	if err := m.validate.Struct(in); err != nil {
		return nil, invalid("URL foto tidak valid.")
	}

	sortOrder, err := m.nextSortOrder(ctx, db.KindOfficial)
	if err != nil {
		return nil, storeFailed("Gagal", err)
	}

	official := &db.VillageOfficial{
		ID:        m.newID(),
		FullName:  *fullName,
		Position:  *position,
		PhotoURL:  optional(in.PhotoURL),
		SortOrder: sortOrder,
		IsActive:  true,
	}

	if err := m.store.CreateOfficial(ctx, official); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(mutationViews[db.KindOfficial][0]...)

	return &Result{Message: "Perangkat desa berhasil ditambahkan!", ID: official.ID}, nil
}

// Delete removes a sort-ordered row. Remaining rows keep their sort_order.
func (m *Manager) Delete(ctx context.Context, kind db.Kind, id uuid.UUID) (*Result, error) {
	if err := m.store.DeleteSorted(ctx, kind, id); err != nil {
		return nil, storeFailed("Gagal menghapus", err)
	}

	m.cache.Invalidate(mutationViews[kind][0]...)

	return &Result{Message: deleteMessages[kind], ID: id}, nil
}

// Toggle flips is_active of a sort-ordered row.
func (m *Manager) Toggle(ctx context.Context, kind db.Kind, id uuid.UUID) (*Result, error) {
	active, err := m.store.ToggleActive(ctx, kind, id)
	if err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(mutationViews[kind][1]...)

	msg := toggleMessages[kind]
	if active {
		return &Result{Message: msg[0], ID: id}, nil
	}
	return &Result{Message: msg[1], ID: id}, nil
}

// Services lists services by sort order; activeOnly hides deactivated ones.
func (m *Manager) Services(ctx context.Context, activeOnly bool) ([]db.VillageService, error) {
	list, err := m.store.Services(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("db get services: %w", err)
	}
	return list, nil
}

func (m *Manager) Gallery(ctx context.Context, activeOnly bool) ([]db.GalleryItem, error) {
	list, err := m.store.Gallery(ctx, activeOnly, 0)
	if err != nil {
		return nil, fmt.Errorf("db get gallery: %w", err)
	}
	return list, nil
}
