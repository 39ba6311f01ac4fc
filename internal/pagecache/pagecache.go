// Package pagecache keeps rendered GET responses of public pages in a
// bounded LRU. Every entry is tagged with the logical view it belongs to,
// so a mutation can drop all renderings of the views it made stale.
package pagecache

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DefaultMaxEntries = 512
	DefaultTTL        = 5 * time.Minute

	cacheHeader = "X-Cache"
)

var lookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "desa",
	Subsystem: "pagecache",
	Name:      "lookups_total",
	Help:      "Page cache lookups by result.",
}, []string{"result"})

type entry struct {
	view        string
	contentType string
	body        []byte
	storedAt    time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	lru   *lru.Cache
	views map[string]map[string]struct{}
	// generations counts invalidations per view
	generations map[string]uint64
	ttl   time.Duration
	now   func() time.Time
}

// New creates a cache holding at most maxEntries responses for ttl each.
// Non-positive values fall back to the defaults.
func New(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		lru:   lru.New(maxEntries),
		views:       make(map[string]map[string]struct{}),
		generations: make(map[string]uint64),
		ttl:         ttl,
		now:         time.Now,
	}
	c.lru.OnEvicted = c.untag

	return c
}

// untag runs under mu from inside lru calls.
func (c *Cache) untag(key lru.Key, value any) {
	e := value.(*entry)
	keys := c.views[e.view]
	delete(keys, key.(string))
	if len(keys) == 0 {
		delete(c.views, e.view)
	}
}

func (c *Cache) get(key string) (*entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	e := v.(*entry)
	if c.now().Sub(e.storedAt) > c.ttl {
		c.lru.Remove(key)
		return nil, false
	}

	return e, true
}

func (c *Cache) generation(view string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[view]
}

// put stores e unless its view was invalidated after gen was read.
func (c *Cache) put(key string, e *entry, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[e.view] != gen {
		return false
	}

	// re-adding an existing key keeps the old tag set consistent
	c.lru.Remove(key)
	c.lru.Add(key, e)

	keys, ok := c.views[e.view]
	if !ok {
		keys = make(map[string]struct{})
		c.views[e.view] = keys
	}
	keys[key] = struct{}{}

	return true
}

// Invalidate drops every cached response tagged with any of views.
func (c *Cache) Invalidate(views ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, view := range views {
		c.generations[view]++

		keys := make([]string, 0, len(c.views[view]))
		for key := range c.views[view] {
			keys = append(keys, key)
		}
		for _, key := range keys {
			c.lru.Remove(key)
		}
	}
}

// Len returns the number of cached responses.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

// Middleware serves GET requests of view from the cache and stores
// successful responses keyed by request URI.
func (c *Cache) Middleware(view string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if req.Method != http.MethodGet {
				return next(ctx)
			}

			key := req.RequestURI
			if e, ok := c.get(key); ok {
				lookups.WithLabelValues("hit").Inc()
				ctx.Response().Header().Set(cacheHeader, "HIT")
				return ctx.Blob(http.StatusOK, e.contentType, e.body)
			}
			lookups.WithLabelValues("miss").Inc()

			// a render that started before an invalidation must not be stored
			gen := c.generation(view)

			res := ctx.Response()
			res.Header().Set(cacheHeader, "MISS")
			rec := &recorder{ResponseWriter: res.Writer}
			res.Writer = rec

			err := next(ctx)
			res.Writer = rec.ResponseWriter
			if err != nil || res.Status != http.StatusOK {
				return err
			}

			c.put(key, &entry{
				view:        view,
				contentType: res.Header().Get(echo.HeaderContentType),
				body:        rec.body.Bytes(),
				storedAt:    c.now(),
			}, gen)

			return nil
		}
	}
}

// recorder copies the response body while writing it through.
type recorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
