package desa

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"golang.org/x/text/unicode/norm"
)

const (
	fallbackSlug    = "berita"
	maxSlugAttempts = 3
	// maxSlugLen keeps news_slug_key within the btree row limit. The
	// millisecond suffix is added on top.
	maxSlugLen = 100
)

var (
	// \pZ covers unicode spaces such as U+3000, \s only matches ASCII.
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\pZ\s-]+`)
	slugSeparators   = regexp.MustCompile(`[\pZ\s-]+`)
)

// Slugify turns a title into a URL-safe identifier made of [a-z0-9-], at most
// maxSlugLen characters long.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var buf strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf.WriteRune(r)
	}
	s = buf.String()

	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	// only ASCII is left, so byte length is rune length
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}

	if s == "" {
		return fallbackSlug
	}

	return s
}

// insertWithSlug stores n under the slug derived from title. An existing slug
// gets a millisecond suffix up front; a unique violation on insert retries with
// a fresh suffix.
func (m *Manager) insertWithSlug(ctx context.Context, n *db.News, title string) error {
	base := Slugify(title)
	slug := base

	var last int64
	exists, err := m.store.NewsSlugExists(ctx, base)
	if err != nil {
		m.logger.WarnContext(ctx, "slug lookup failed", "slug", base, "error", err)
	} else if exists {
		slug, last = m.suffixedSlug(base, last)
	}

	for attempt := 1; ; attempt++ {
		n.Slug = slug

		err := m.store.CreateNews(ctx, n)
		if err == nil || !errors.Is(err, db.ErrSlugTaken) {
			return err
		}

		if attempt == maxSlugAttempts {
			return fmt.Errorf("slug %q still taken after %d attempts: %w", base, attempt, err)
		}

		m.logger.InfoContext(ctx, "slug taken on insert, retrying", "slug", slug, "attempt", attempt)
		slug, last = m.suffixedSlug(base, last)
	}
}

// suffixedSlug appends the current unix milliseconds, never reusing a suffix
// at or below last.
func (m *Manager) suffixedSlug(base string, last int64) (string, int64) {
	ms := m.now().UnixMilli()
	if ms <= last {
		ms = last + 1
	}

	return fmt.Sprintf("%s-%d", base, ms), ms
}
