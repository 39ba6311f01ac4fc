package desa

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/desa/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Home(t *testing.T) {
	f := newFixture(t)

	for i := range 9 {
		f.publishedNews(t, fmt.Sprintf("Kegiatan Desa %d", i), "Kegiatan", baseTime.Add(time.Duration(i)*time.Hour))
	}
	for i := range 10 {
		_, err := f.manager.CreateGalleryItem(f.ctx, GalleryInput{Title: fmt.Sprintf("Foto %d", i)})
		require.NoError(t, err)
	}
	_, err := f.manager.CreateService(f.ctx, ServiceInput{Title: "Surat Domisili"})
	require.NoError(t, err)
	_, err = f.manager.CreateProgram(f.ctx, ProgramInput{Title: "Desa Digital"})
	require.NoError(t, err)
	_, err = f.manager.SaveStats(f.ctx, validStats(2024))
	require.NoError(t, err)

	home, err := f.manager.Home(f.ctx)
	require.NoError(t, err)

	require.Len(t, home.News, homeNewsLimit)
	assert.Equal(t, "Kegiatan Desa 8", home.News[0].Title)
	require.Len(t, home.Gallery, homeGalleryLimit)
	assert.Equal(t, 1, home.Gallery[0].SortOrder)
	assert.Len(t, home.Services, 1)
	assert.Len(t, home.Programs, 1)
	require.NotNil(t, home.Stats)
	assert.Equal(t, 2024, home.Stats.Year)
	assert.NotNil(t, home.Kades)
}

func TestManager_Home_StoreFailure(t *testing.T) {
	store := memstore.New()
	store.FailOn("KadesProfile", errors.New("timeout"))
	f := newFixtureWithStore(t, store)

	_, err := f.manager.Home(f.ctx)
	assert.ErrorContains(t, err, "timeout")
}

func TestManager_Dashboard(t *testing.T) {
	f := newFixture(t)

	d, err := f.manager.Dashboard(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, Dashboard{}, *d)

	f.publishedNews(t, "Kerja Bakti", "Kegiatan", baseTime)
	_, err = f.manager.CreateNews(f.ctx, NewsInput{Title: "Draf", Content: "isi"})
	require.NoError(t, err)
	_, err = f.manager.CreateService(f.ctx, ServiceInput{Title: "Surat Domisili"})
	require.NoError(t, err)
	_, err = f.manager.SaveStats(f.ctx, validStats(2024))
	require.NoError(t, err)

	d, err = f.manager.Dashboard(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, Dashboard{
		TotalNews:       2,
		PublishedNews:   1,
		TotalServices:   1,
		TotalGallery:    0,
		TotalPopulation: 3120,
		StatsYear:       2024,
		HasStats:        true,
	}, *d)
}
