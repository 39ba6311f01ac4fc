package desa

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "PunctuationAndDigits", title: "Pembangunan Jalan Desa 2024!!", want: "pembangunan-jalan-desa-2024"},
		{name: "Diacritics", title: "Kafé Désa Ümum", want: "kafe-desa-umum"},
		{name: "CollapsesWhitespace", title: "  Rapat   Desa \t Bulanan  ", want: "rapat-desa-bulanan"},
		{name: "CollapsesHyphens", title: "Musrenbang -- 2025 - RKP", want: "musrenbang-2025-rkp"},
		{name: "LeadingTrailingHyphens", title: "- Pengumuman -", want: "pengumuman"},
		{name: "Underscores", title: "dana_desa tahap_1", want: "danadesa-tahap1"},
		{name: "OnlyPunctuationFallsBack", title: "!!! ???", want: "berita"},
		{name: "EmptyFallsBack", title: "", want: "berita"},
		{name: "NonLatinFallsBack", title: "ニュース", want: "berita"},
		{name: "IdeographicSpace", title: "Rapat\u3000Desa", want: "rapat-desa"},
		{name: "EmSpace", title: "Rapat\u2003Desa 2024", want: "rapat-desa-2024"},
		{name: "NoBreakSpace", title: "Dana\u00a0Desa", want: "dana-desa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Charset(t *testing.T) {
	titles := []string{
		"Pembangunan Jalan Desa 2024!!",
		"  --Hello__World--  ",
		"Çağrı: Gotong-Royong @ RW 05",
		"100% Warga Ikut Vaksin",
		"Émile's «Café»",
		"\n\n",
		"a-b-c-",
	}

	for _, title := range titles {
		slug := Slugify(title)
		assert.Regexp(t, slugPattern, slug, "title %q", title)
	}
}

func TestSlugify_CapsLength(t *testing.T) {
	title := strings.Repeat("Pembangunan Jalan ", 300)

	slug := Slugify(title)
	assert.LessOrEqual(t, len(slug), maxSlugLen)
	assert.Regexp(t, slugPattern, slug)
	assert.True(t, strings.HasPrefix(slug, "pembangunan-jalan-pembangunan"))

	// a cut that lands on a separator leaves no trailing hyphen
	exact := strings.Repeat("a", maxSlugLen-1) + " b"
	assert.Equal(t, strings.Repeat("a", maxSlugLen-1), Slugify(exact))
}

func TestManager_CreateNews_LongTitle(t *testing.T) {
	f := newFixture(t)

	title := strings.Repeat("Musyawarah Desa ", 340)
	res, err := f.manager.CreateNews(f.ctx, NewsInput{Title: title, Content: "isi"})
	require.NoError(t, err)

	first := f.news(t, res.ID)
	assert.LessOrEqual(t, len(first.Slug), maxSlugLen)
	assert.Regexp(t, slugPattern, first.Slug)

	// the suffix goes on the capped slug
	f.clock.Advance(time.Millisecond)
	res, err = f.manager.CreateNews(f.ctx, NewsInput{Title: title, Content: "isi"})
	require.NoError(t, err)

	second := f.news(t, res.ID)
	assert.Equal(t, fmt.Sprintf("%s-%d", first.Slug, f.clock.Now().UnixMilli()), second.Slug)
}

func TestManager_CreateNews_DuplicateTitleGetsSuffix(t *testing.T) {
	f := newFixture(t)

	first, err := f.manager.CreateNews(f.ctx, NewsInput{Title: "Rapat Desa", Content: "isi"})
	require.NoError(t, err)

	f.clock.Advance(time.Millisecond)
	second, err := f.manager.CreateNews(f.ctx, NewsInput{Title: "Rapat Desa", Content: "isi"})
	require.NoError(t, err)

	a, b := f.news(t, first.ID), f.news(t, second.ID)
	assert.Equal(t, "rapat-desa", a.Slug)
	assert.Equal(t, fmt.Sprintf("rapat-desa-%d", f.clock.Now().UnixMilli()), b.Slug)
	assert.NotEqual(t, a.Slug, b.Slug)
}

// racingStore reports every slug as free but rejects the first inserts,
// the way a concurrent writer winning the unique constraint would.
type racingStore struct {
	*memstore.Store
	conflicts int
	slugs     []string
}

func (s *racingStore) NewsSlugExists(context.Context, string) (bool, error) {
	return false, nil
}

func (s *racingStore) CreateNews(ctx context.Context, n *db.News) error {
	s.slugs = append(s.slugs, n.Slug)
	if s.conflicts > 0 {
		s.conflicts--
		return fmt.Errorf("insert news %q: %w", n.Slug, db.ErrSlugTaken)
	}
	return s.Store.CreateNews(ctx, n)
}

func TestManager_CreateNews_RetriesOnUniqueViolation(t *testing.T) {
	store := &racingStore{Store: memstore.New(), conflicts: 2}
	f := newFixtureWithStore(t, store)

	res, err := f.manager.CreateNews(f.ctx, NewsInput{Title: "Rapat Desa", Content: "isi"})
	require.NoError(t, err)

	ms := baseTime.UnixMilli()
	assert.Equal(t, []string{
		"rapat-desa",
		fmt.Sprintf("rapat-desa-%d", ms),
		fmt.Sprintf("rapat-desa-%d", ms+1),
	}, store.slugs)

	saved, err := store.NewsByID(f.ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, store.slugs[2], saved.Slug)
}

func TestManager_CreateNews_GivesUpAfterMaxAttempts(t *testing.T) {
	store := &racingStore{Store: memstore.New(), conflicts: maxSlugAttempts}
	f := newFixtureWithStore(t, store)

	_, err := f.manager.CreateNews(f.ctx, NewsInput{Title: "Rapat Desa", Content: "isi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrSlugTaken)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Contains(t, storeErr.Message, "Gagal menyimpan")
	assert.Len(t, store.slugs, maxSlugAttempts)
}

func TestManager_CreateNews_SlugLookupFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.store.FailOn("NewsSlugExists", errors.New("connection reset"))

	res, err := f.manager.CreateNews(f.ctx, NewsInput{Title: "Kerja Bakti", Content: "isi"})
	require.NoError(t, err)
	assert.Equal(t, "kerja-bakti", f.news(t, res.ID).Slug)
}
