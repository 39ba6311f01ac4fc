package rpc

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/daniilsolovey/desa-portal/internal/desa/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (http.Handler, *memstore.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New()
	manager := desa.NewManager(store, nil, nil, logger)

	return New(logger, manager), store
}

func call(t *testing.T, srv http.Handler, method, params string) rpcResponse {
	t.Helper()

	body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `"`
	if params != "" {
		body += `,"params":` + params
	}
	body += `}`

	req := httptest.NewRequest(http.MethodPost, "/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func putNews(store *memstore.Store, slug, category string, published bool, at time.Time) {
	store.PutNews(db.News{
		ID:          uuid.New(),
		Slug:        slug,
		Title:       slug,
		Content:     "<p>" + slug + "</p>",
		Category:    category,
		IsPublished: published,
		PublishedAt: &at,
	})
}

func TestPortalService_News(t *testing.T) {
	srv, store := newTestServer(t)
	at := time.Date(2024, 8, 17, 9, 0, 0, 0, time.UTC)
	putNews(store, "lomba-agustusan", "Kegiatan", true, at)
	putNews(store, "jalan-desa", "Pembangunan", true, at.Add(time.Hour))
	putNews(store, "draf", "Kegiatan", false, at)

	resp := call(t, srv, "portal.news", `{"filter":{"kategori":"Kegiatan"}}`)
	require.Nil(t, resp.Error)

	var page NewsPage
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "Kegiatan", page.Category)
	require.Len(t, page.News, 1)
	assert.Equal(t, "lomba-agustusan", page.News[0].Slug)

	resp = call(t, srv, "portal.news", `[{"page":1}]`)
	require.Nil(t, resp.Error)
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, "jalan-desa", page.News[0].Slug)
}

func TestPortalService_NewsBySlug(t *testing.T) {
	srv, store := newTestServer(t)
	at := time.Date(2024, 8, 17, 9, 0, 0, 0, time.UTC)
	putNews(store, "lomba-agustusan", "Kegiatan", true, at)
	putNews(store, "kerja-bakti", "Kegiatan", true, at.Add(time.Hour))
	putNews(store, "draf", "Kegiatan", false, at)

	resp := call(t, srv, "portal.newsBySlug", `{"slug":"lomba-agustusan"}`)
	require.Nil(t, resp.Error)

	var detail NewsDetail
	require.NoError(t, json.Unmarshal(resp.Result, &detail))
	assert.Equal(t, "<p>lomba-agustusan</p>", detail.News.Content)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "kerja-bakti", detail.Related[0].Slug)

	resp = call(t, srv, "portal.newsBySlug", `{"slug":"draf"}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	resp = call(t, srv, "portal.newsBySlug", `{"slug":""}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)
}

func TestPortalService_CurrentStats(t *testing.T) {
	srv, store := newTestServer(t)

	resp := call(t, srv, "portal.currentStats", "")
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	stats := &db.PopulationStats{ID: uuid.New(), Year: 2024, TotalPopulation: 3120}
	require.NoError(t, store.InsertCurrentStats(t.Context(), stats))
	require.NoError(t, store.InsertAgeDistribution(t.Context(), []db.AgeDistribution{
		{ID: uuid.New(), StatsID: stats.ID, AgeGroup: "0-4", MaleCount: 120, FemaleCount: 115},
	}))

	resp = call(t, srv, "portal.currentStats", "")
	require.Nil(t, resp.Error)

	var snapshot StatsSnapshot
	require.NoError(t, json.Unmarshal(resp.Result, &snapshot))
	assert.Equal(t, 3120, snapshot.TotalPopulation)
	require.Len(t, snapshot.Age, 1)
	assert.Equal(t, "0-4", snapshot.Age[0].Label)
	assert.Equal(t, 120, snapshot.Age[0].Count)
	assert.Equal(t, 115, *snapshot.Age[0].Female)
}

func TestPortalService_ServicesAndGallery(t *testing.T) {
	srv, store := newTestServer(t)

	icon := "📋"
	require.NoError(t, store.CreateService(t.Context(), &db.VillageService{ID: uuid.New(), SortOrder: 2, Title: "Izin Usaha", Icon: &icon, IsActive: true}))
	require.NoError(t, store.CreateService(t.Context(), &db.VillageService{ID: uuid.New(), SortOrder: 1, Title: "Surat Domisili", Icon: &icon, IsActive: true}))
	require.NoError(t, store.CreateService(t.Context(), &db.VillageService{ID: uuid.New(), SortOrder: 3, Title: "Nonaktif"}))

	resp := call(t, srv, "portal.services", "")
	require.Nil(t, resp.Error)

	var services []Service
	require.NoError(t, json.Unmarshal(resp.Result, &services))
	require.Len(t, services, 2)
	assert.Equal(t, "Surat Domisili", services[0].Title)
	assert.Equal(t, "Izin Usaha", services[1].Title)

	resp = call(t, srv, "portal.gallery", "")
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `[]`, string(resp.Result))

	resp = call(t, srv, "portal.unknown", "")
	require.NotNil(t, resp.Error)
}
