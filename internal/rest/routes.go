package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/rpc/"
)

// RegisterRoutes builds the echo router. rpcServer is mounted at /rpc/ when set.
func (h *Handler) RegisterRoutes(rpcServer http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.SwaggerDoc)
	if rpcServer != nil {
		e.Any(rpcPath, echo.WrapHandler(rpcServer))
	}

	api := e.Group(apiV1Prefix)
	h.registerPublicRoutes(api)
	h.registerAdminRoutes(api)

	return e
}

func (h *Handler) registerPublicRoutes(api *echo.Group) {
	api.GET("/beranda", h.Home, h.cached(desa.ViewHome)...)
	api.GET("/berita", h.NewsList, h.cached(desa.ViewNews)...)
	// detail pages count views and allow admin preview, so they bypass the cache
	api.GET("/berita/:slug", h.NewsDetail)
	api.GET("/layanan", h.Services, h.cached(desa.ViewServices)...)
	api.GET("/galeri", h.Gallery, h.cached(desa.ViewGallery)...)
	api.GET("/profil", h.Profile, h.cached(desa.ViewProfile)...)
	api.GET("/statistik", h.Statistics, h.cached(desa.ViewStatistics)...)
}

func (h *Handler) registerAdminRoutes(api *echo.Group) {
	api.POST("/admin/login", h.Login)
	api.POST("/admin/logout", h.Logout)

	admin := api.Group("/admin", h.requireAdmin)

	admin.GET("/dashboard", h.Dashboard)

	admin.GET("/berita", h.AdminNews)
	admin.POST("/berita", h.CreateNews)
	admin.GET("/berita/:id", h.AdminNewsByID)
	admin.PUT("/berita/:id", h.UpdateNews)
	admin.DELETE("/berita/:id", h.DeleteNews)
	admin.POST("/berita/:id/toggle", h.ToggleNews)

	admin.GET("/layanan", h.AdminServices)
	admin.POST("/layanan", h.CreateService)
	admin.PUT("/layanan/:id", h.UpdateService)
	admin.DELETE("/layanan/:id", h.deleteSorted(db.KindService))
	admin.POST("/layanan/:id/toggle", h.toggleSorted(db.KindService))

	admin.GET("/galeri", h.AdminGallery)
	admin.POST("/galeri", h.CreateGalleryItem)
	admin.DELETE("/galeri/:id", h.deleteSorted(db.KindGallery))
	admin.POST("/galeri/:id/toggle", h.toggleSorted(db.KindGallery))

	admin.GET("/profil", h.AdminProfile)
	admin.PUT("/profil/kades", h.UpdateKades)
	admin.PUT("/profil/visi-misi", h.UpdateVisiMisi)
	admin.POST("/profil/program", h.CreateProgram)
	admin.DELETE("/profil/program/:id", h.deleteSorted(db.KindProgram))
	admin.POST("/profil/program/:id/toggle", h.toggleSorted(db.KindProgram))
	admin.POST("/profil/perangkat", h.CreateOfficial)
	admin.DELETE("/profil/perangkat/:id", h.deleteSorted(db.KindOfficial))
	admin.POST("/profil/perangkat/:id/toggle", h.toggleSorted(db.KindOfficial))

	admin.GET("/statistik", h.AdminStatistics)
	admin.POST("/statistik", h.SaveStats)
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.LogAttrs(c.Request().Context(), slog.LevelInfo, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
			)
			return nil
		},
	})
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			return h.handleError(c, err, http.StatusServiceUnavailable, "database unavailable")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger doc unavailable")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}
