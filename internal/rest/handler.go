package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daniilsolovey/desa-portal/internal/auth"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/daniilsolovey/desa-portal/internal/pagecache"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookie = "desa_session"
	adminIDKey    = "adminId"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	manager *desa.Manager
	auth    *auth.Service
	cache   *pagecache.Cache
	db      Pinger
	log     *slog.Logger

	// SecureCookie marks the session cookie Secure. Enable behind TLS.
	SecureCookie bool
}

// NewHandler creates the REST handler. cache and db may be nil.
func NewHandler(manager *desa.Manager, authService *auth.Service, cache *pagecache.Cache, db Pinger, log *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		auth:    authService,
		cache:   cache,
		db:      db,
		log:     log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	if statusCode >= http.StatusInternalServerError && err != nil {
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleMutation writes the outcome of an admin write.
func (h *Handler) handleMutation(c echo.Context, res *desa.Result, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, newMutationResponse(res))
	}

	status, message := http.StatusInternalServerError, "Gagal: internal error"
	var storeErr *desa.StoreError

	switch msg, ok := desa.IsValidation(err); {
	case ok:
		status, message = http.StatusBadRequest, msg
	case errors.Is(err, desa.ErrNotFound):
		status, message = http.StatusNotFound, "Data tidak ditemukan."
	case errors.As(err, &storeErr):
		message = storeErr.Message
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("mutation failed", "error", err, "path", c.Path())
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	} else {
		h.log.Warn("mutation rejected", "error", err, "statusCode", status, "path", c.Path())
	}

	return c.JSON(status, MutationResponse{Success: false, Message: message})
}

func parseID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// sessionToken returns the bearer token, falling back to the session cookie.
func sessionToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func (h *Handler) sessionAdmin(c echo.Context) (uuid.UUID, bool) {
	token := sessionToken(c)
	if token == "" {
		return uuid.Nil, false
	}

	id, err := h.auth.Verify(token)
	if err != nil {
		h.log.Debug("session rejected", "error", err)
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := h.sessionAdmin(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}

		c.Set(adminIDKey, id)
		return next(c)
	}
}

// cached returns the page cache middleware for view, none without a cache.
func (h *Handler) cached(view string) []echo.MiddlewareFunc {
	if h.cache == nil {
		return nil
	}
	return []echo.MiddlewareFunc{h.cache.Middleware(view)}
}
