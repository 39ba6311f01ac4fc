package desa

import (
	"testing"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateService_SortOrder(t *testing.T) {
	f := newFixture(t)

	var ids []uuid.UUID
	for _, title := range []string{"Surat Domisili", "Surat Pengantar KTP", "Izin Usaha"} {
		res, err := f.manager.CreateService(f.ctx, ServiceInput{Title: title})
		require.NoError(t, err)
		assert.Equal(t, "Layanan berhasil ditambahkan!", res.Message)
		ids = append(ids, res.ID)
	}

	services, err := f.manager.Services(f.ctx, false)
	require.NoError(t, err)
	require.Len(t, services, 3)
	for i, s := range services {
		assert.Equal(t, i+1, s.SortOrder)
		assert.True(t, s.IsActive)
		require.NotNil(t, s.Icon)
		assert.Equal(t, defaultServiceIcon, *s.Icon)
	}
	assert.Equal(t, []string{ViewAdminServices, ViewServices, ViewHome}, f.cache.last())

	// deleting the middle row leaves a gap and keeps sibling orders
	_, err = f.manager.Delete(f.ctx, db.KindService, ids[1])
	require.NoError(t, err)

	services, err = f.manager.Services(f.ctx, false)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, 1, services[0].SortOrder)
	assert.Equal(t, 3, services[1].SortOrder)

	// the next insert continues after the current max
	res, err := f.manager.CreateService(f.ctx, ServiceInput{Title: "Legalisir"})
	require.NoError(t, err)
	services, err = f.manager.Services(f.ctx, false)
	require.NoError(t, err)
	assert.Equal(t, res.ID, services[2].ID)
	assert.Equal(t, 4, services[2].SortOrder)
}

func TestManager_UpdateService(t *testing.T) {
	f := newFixture(t)

	res, err := f.manager.CreateService(f.ctx, ServiceInput{Title: "Surat Domisili", Icon: "🏠"})
	require.NoError(t, err)

	_, err = f.manager.UpdateService(f.ctx, res.ID, ServiceInput{Title: "Surat Keterangan Domisili", Requirements: "KTP\nKK"})
	require.NoError(t, err)

	services, err := f.manager.Services(f.ctx, true)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Surat Keterangan Domisili", services[0].Title)
	assert.Equal(t, defaultServiceIcon, *services[0].Icon)
	assert.Equal(t, "KTP\nKK", *services[0].Requirements)
	assert.Equal(t, 1, services[0].SortOrder)

	_, err = f.manager.UpdateService(f.ctx, uuid.New(), ServiceInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.manager.UpdateService(f.ctx, res.ID, ServiceInput{Title: " "})
	msg, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Judul layanan wajib diisi.", msg)
}

func TestManager_Toggle(t *testing.T) {
	f := newFixture(t)

	gallery, err := f.manager.CreateGalleryItem(f.ctx, GalleryInput{Title: "Panen Raya", ImageURL: "https://cdn.desa.id/panen.jpg"})
	require.NoError(t, err)

	res, err := f.manager.Toggle(f.ctx, db.KindGallery, gallery.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foto disembunyikan.", res.Message)
	assert.Equal(t, []string{ViewAdminGallery, ViewGallery}, f.cache.last())

	active, err := f.manager.Gallery(f.ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	res, err = f.manager.Toggle(f.ctx, db.KindGallery, gallery.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foto ditampilkan.", res.Message)

	_, err = f.manager.Toggle(f.ctx, db.KindService, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_CreateGalleryItem_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.CreateGalleryItem(f.ctx, GalleryInput{Title: ""})
	msg, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Judul foto wajib diisi.", msg)

	_, err = f.manager.CreateGalleryItem(f.ctx, GalleryInput{Title: "Foto", ImageURL: "bukan url"})
	msg, ok = IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "URL foto tidak valid.", msg)
}

func TestManager_ProgramsAndOfficials(t *testing.T) {
	f := newFixture(t)

	program, err := f.manager.CreateProgram(f.ctx, ProgramInput{Title: "Desa Digital"})
	require.NoError(t, err)
	assert.Equal(t, []string{ViewAdminProfile, ViewHome}, f.cache.last())

	_, err = f.manager.CreateOfficial(f.ctx, OfficialInput{FullName: "Siti Aminah", Position: ""})
	msg, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Nama dan jabatan wajib diisi.", msg)

	official, err := f.manager.CreateOfficial(f.ctx, OfficialInput{FullName: "Siti Aminah", Position: "Sekretaris Desa"})
	require.NoError(t, err)
	assert.Equal(t, []string{ViewAdminProfile, ViewProfile}, f.cache.last())

	profile, err := f.manager.AdminProfile(f.ctx)
	require.NoError(t, err)
	require.Len(t, profile.Programs, 1)
	assert.Equal(t, defaultProgramIcon, *profile.Programs[0].Icon)
	assert.Equal(t, 1, profile.Programs[0].SortOrder)
	require.Len(t, profile.Officials, 1)
	assert.Equal(t, 1, profile.Officials[0].SortOrder)

	res, err := f.manager.Toggle(f.ctx, db.KindOfficial, official.ID)
	require.NoError(t, err)
	assert.Equal(t, "Perangkat desa dinonaktifkan.", res.Message)

	public, err := f.manager.Profile(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, public.Officials)

	res, err = f.manager.Delete(f.ctx, db.KindProgram, program.ID)
	require.NoError(t, err)
	assert.Equal(t, "Program dihapus.", res.Message)

	_, err = f.manager.Delete(f.ctx, db.KindProgram, program.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
