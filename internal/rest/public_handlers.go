package rest

import (
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

// NewsListRequest is the public listing query.
type NewsListRequest struct {
	Kategori string
	Page     int
}

// Home handles GET /api/v1/beranda
// @Summary Home page
// @Description Kades profile, active programs, current statistics, latest news, services and gallery
// @Tags public
// @Produce json
// @Success 200 {object} rest.Home
// @Failure 500 {object} map[string]string
// @Router /api/v1/beranda [get]
func (h *Handler) Home(c echo.Context) error {
	home, err := h.manager.Home(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewHome(home))
}

// NewsList handles GET /api/v1/berita
// @Summary Published news
// @Description Published news ordered by publishedAt DESC, 9 per page
// @Tags public
// @Produce json
// @Param kategori query string false "Category, Semua for all"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.NewsPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/berita [get]
func (h *Handler) NewsList(c echo.Context) error {
	var req NewsListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.manager.NewsList(c.Request().Context(), req.Kategori, req.Page)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsPage(page))
}

// NewsDetail handles GET /api/v1/berita/:slug
// @Summary News detail
// @Description Published article with up to 3 related ones. Drafts are visible to an admin with preview=true.
// @Tags public
// @Produce json
// @Param slug path string true "News slug"
// @Param preview query bool false "Admin preview, does not count a view"
// @Success 200 {object} rest.NewsDetail
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/berita/{slug} [get]
func (h *Handler) NewsDetail(c echo.Context) error {
	preview := false
	if want, _ := strconv.ParseBool(c.QueryParam("preview")); want {
		_, preview = h.sessionAdmin(c)
	}

	detail, err := h.manager.NewsBySlug(c.Request().Context(), c.Param("slug"), preview)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if detail == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNewsDetail(detail))
}

// Services handles GET /api/v1/layanan
// @Summary Active village services
// @Tags public
// @Produce json
// @Success 200 {array} rest.Service
// @Failure 500 {object} map[string]string
// @Router /api/v1/layanan [get]
func (h *Handler) Services(c echo.Context) error {
	list, err := h.manager.Services(c.Request().Context(), true)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewService))
}

// Gallery handles GET /api/v1/galeri
// @Summary Active gallery photos
// @Tags public
// @Produce json
// @Success 200 {array} rest.GalleryItem
// @Failure 500 {object} map[string]string
// @Router /api/v1/galeri [get]
func (h *Handler) Gallery(c echo.Context) error {
	list, err := h.manager.Gallery(c.Request().Context(), true)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewGalleryItem))
}

// Profile handles GET /api/v1/profil
// @Summary Village profile
// @Description Village profile with visi, misi and active officials
// @Tags public
// @Produce json
// @Success 200 {object} rest.Profile
// @Failure 500 {object} map[string]string
// @Router /api/v1/profil [get]
func (h *Handler) Profile(c echo.Context) error {
	profile, err := h.manager.Profile(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewProfile(profile))
}

// Statistics handles GET /api/v1/statistik
// @Summary Population statistics
// @Description Current snapshot with breakdowns and the history of every recorded year
// @Tags public
// @Produce json
// @Success 200 {object} rest.Statistics
// @Failure 500 {object} map[string]string
// @Router /api/v1/statistik [get]
func (h *Handler) Statistics(c echo.Context) error {
	stats, err := h.manager.Statistics(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewStatistics(stats))
}
