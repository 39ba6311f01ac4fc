package desa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMisi(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "Lines", text: "Meningkatkan pelayanan\nMembangun jalan", want: []string{"Meningkatkan pelayanan", "Membangun jalan"}},
		{name: "TrimsAndDropsBlanks", text: "  satu  \r\n\n   \n dua\n", want: []string{"satu", "dua"}},
		{name: "Empty", text: "", want: nil},
		{name: "OnlyWhitespace", text: " \n\t\n", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMisi(tt.text))
		})
	}
}

func TestManager_UpdateVisiMisi(t *testing.T) {
	f := newFixture(t)

	res, err := f.manager.UpdateVisiMisi(f.ctx, VisiMisiInput{
		Visi: " Desa mandiri dan sejahtera ",
		Misi: "Pelayanan prima\n\nPembangunan merata",
	})
	require.NoError(t, err)
	assert.Equal(t, "Visi & misi berhasil diupdate!", res.Message)
	assert.Equal(t, []string{ViewAdminProfile, ViewProfile}, f.cache.last())

	profile, err := f.manager.Profile(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, profile.Village.Visi)
	assert.Equal(t, "Desa mandiri dan sejahtera", *profile.Village.Visi)
	assert.Equal(t, []string{"Pelayanan prima", "Pembangunan merata"}, profile.Village.Misi)

	_, err = f.manager.UpdateVisiMisi(f.ctx, VisiMisiInput{})
	require.NoError(t, err)

	profile, err = f.manager.Profile(f.ctx)
	require.NoError(t, err)
	assert.Nil(t, profile.Village.Visi)
	assert.Nil(t, profile.Village.Misi)
}

func TestManager_UpdateKades(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.UpdateKades(f.ctx, KadesInput{FullName: "  "})
	msg, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Nama kepala desa wajib diisi.", msg)

	res, err := f.manager.UpdateKades(f.ctx, KadesInput{
		FullName:      " Budi Santoso ",
		Period:        "2021-2027",
		WelcomeSpeech: "Selamat datang",
	})
	require.NoError(t, err)
	assert.Equal(t, "Profil kepala desa berhasil diupdate!", res.Message)
	assert.Equal(t, []string{ViewAdminProfile, ViewProfile, ViewHome}, f.cache.last())

	profile, err := f.manager.AdminProfile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", profile.Kades.FullName)
	assert.Nil(t, profile.Kades.Title)
	assert.Equal(t, "2021-2027", *profile.Kades.Period)
	assert.True(t, profile.Kades.UpdatedAt.Equal(baseTime))
}
