package desa

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/desa-portal/internal/db"
)

type KadesInput struct {
	FullName      string `json:"full_name" form:"full_name"`
	Title         string `json:"title" form:"title"`
	Period        string `json:"period" form:"period"`
	PhotoURL      string `json:"photo_url" form:"photo_url"`
	WelcomeSpeech string `json:"welcome_speech" form:"welcome_speech"`
}

// VisiMisiInput carries misi as newline separated text, one item per line.
type VisiMisiInput struct {
	Visi string `json:"visi" form:"visi"`
	Misi string `json:"misi" form:"misi"`
}

// SplitMisi splits newline separated text into trimmed, non-empty items.
// It returns nil when no item is left.
func SplitMisi(text string) []string {
	var misi []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			misi = append(misi, line)
		}
	}

	return misi
}

func (m *Manager) UpdateKades(ctx context.Context, in KadesInput) (*Result, error) {
	fullName := optional(in.FullName)
	if fullName == nil {
		return nil, invalid("Nama kepala desa wajib diisi.")
	}

	profile := &db.KadesProfile{
		FullName:      *fullName,
		Title:         optional(in.Title),
		Period:        optional(in.Period),
		PhotoURL:      optional(in.PhotoURL),
		WelcomeSpeech: optional(in.WelcomeSpeech),
		UpdatedAt:     m.now(),
	}

	if err := m.store.SaveKadesProfile(ctx, profile); err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(ViewAdminProfile, ViewProfile, ViewHome)

	return &Result{Message: "Profil kepala desa berhasil diupdate!"}, nil
}

func (m *Manager) UpdateVisiMisi(ctx context.Context, in VisiMisiInput) (*Result, error) {
	err := m.store.UpdateVisiMisi(ctx, optional(in.Visi), SplitMisi(in.Misi), m.now())
	if err != nil {
		return nil, storeFailed("Gagal", err)
	}

	m.cache.Invalidate(ViewAdminProfile, ViewProfile)

	return &Result{Message: "Visi & misi berhasil diupdate!"}, nil
}

// Profile is the public profile page.
type Profile struct {
	Village   *db.VillageProfile
	Officials []db.VillageOfficial
}

func (m *Manager) Profile(ctx context.Context) (*Profile, error) {
	village, err := m.store.VillageProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get village profile: %w", err)
	}

	officials, err := m.store.Officials(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("db get officials: %w", err)
	}

	return &Profile{Village: village, Officials: officials}, nil
}

// AdminProfile is the profile editor payload, inactive rows included.
type AdminProfile struct {
	Kades     *db.KadesProfile
	Village   *db.VillageProfile
	Programs  []db.PriorityProgram
	Officials []db.VillageOfficial
}

func (m *Manager) AdminProfile(ctx context.Context) (*AdminProfile, error) {
	kades, err := m.store.KadesProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get kades profile: %w", err)
	}

	village, err := m.store.VillageProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get village profile: %w", err)
	}

	programs, err := m.store.Programs(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("db get programs: %w", err)
	}

	officials, err := m.store.Officials(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("db get officials: %w", err)
	}

	return &AdminProfile{
		Kades:     kades,
		Village:   village,
		Programs:  programs,
		Officials: officials,
	}, nil
}
