package desa

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa/memstore"
	"github.com/google/uuid"
)

var baseTime = time.Date(2024, 8, 17, 9, 0, 0, 0, time.UTC)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// recordingCache remembers every invalidated view.
type recordingCache struct {
	mu    sync.Mutex
	calls [][]string
}

func (c *recordingCache) Invalidate(views ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, views)
}

func (c *recordingCache) last() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return nil
	}
	return c.calls[len(c.calls)-1]
}

// recordingViews counts Record calls per article.
type recordingViews struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int
}

func (v *recordingViews) Record(id uuid.UUID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.counts == nil {
		v.counts = make(map[uuid.UUID]int)
	}
	v.counts[id]++
	return true
}

func (v *recordingViews) count(id uuid.UUID) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counts[id]
}

// testClock is a settable clock for published_at assertions.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type fixture struct {
	ctx     context.Context
	manager *Manager
	store   *memstore.Store
	cache   *recordingCache
	views   *recordingViews
	clock   *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStore(t, memstore.New())
}

func newFixtureWithStore(t *testing.T, store Store) *fixture {
	t.Helper()

	f := &fixture{
		ctx:   context.Background(),
		cache: &recordingCache{},
		views: &recordingViews{},
		clock: &testClock{now: baseTime},
	}
	if ms, ok := store.(*memstore.Store); ok {
		f.store = ms
	}

	f.manager = NewManager(store, f.views, f.cache, noOpLogger())
	f.manager.now = f.clock.Now

	return f
}

func (f *fixture) news(t *testing.T, id uuid.UUID) db.News {
	t.Helper()

	n, err := f.manager.store.NewsByID(f.ctx, id)
	if err != nil || n == nil {
		t.Fatalf("news %s not found: %v", id, err)
	}
	return *n
}

func (f *fixture) publishedNews(t *testing.T, title, category string, at time.Time) db.News {
	t.Helper()

	n := db.News{
		ID:          uuid.New(),
		Slug:        Slugify(title),
		Title:       title,
		Content:     "<p>" + title + "</p>",
		Category:    category,
		IsPublished: true,
		PublishedAt: &at,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	f.store.PutNews(n)
	return n
}
