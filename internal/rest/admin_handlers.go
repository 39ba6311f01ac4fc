package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/auth"
	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/admin/login
// @Summary Admin login
// @Description Checks email and password, returns a session token and sets the session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/admin/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	session, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return h.handleError(c, err, http.StatusUnauthorized, "Email atau password salah.")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// Logout handles POST /api/v1/admin/logout
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} rest.MutationResponse
// @Router /api/v1/admin/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, MutationResponse{Success: true, Message: "Berhasil keluar."})
}

// Dashboard handles GET /api/v1/admin/dashboard
// @Summary Admin dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.Dashboard
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.manager.Dashboard(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewDashboard(d))
}

// AdminNews handles GET /api/v1/admin/berita
// @Summary All news, drafts included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.News
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/berita [get]
func (h *Handler) AdminNews(c echo.Context) error {
	list, err := h.manager.AllNews(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewNews))
}

// AdminNewsByID handles GET /api/v1/admin/berita/:id
// @Summary News for the editor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/berita/{id} [get]
func (h *Handler) AdminNewsByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	news, err := h.manager.NewsByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if news == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// CreateNews handles POST /api/v1/admin/berita
// @Summary Create news
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.NewsInput true "News form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/berita [post]
func (h *Handler) CreateNews(c echo.Context) error {
	var in desa.NewsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.CreateNews(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// UpdateNews handles PUT /api/v1/admin/berita/:id
// @Summary Update news
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Param body body desa.NewsInput true "News form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.MutationResponse
// @Router /api/v1/admin/berita/{id} [put]
func (h *Handler) UpdateNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var in desa.NewsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.UpdateNews(c.Request().Context(), id, in)
	return h.handleMutation(c, res, err)
}

// DeleteNews handles DELETE /api/v1/admin/berita/:id
// @Summary Delete news
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.MutationResponse
// @Router /api/v1/admin/berita/{id} [delete]
func (h *Handler) DeleteNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	res, err := h.manager.DeleteNews(c.Request().Context(), id)
	return h.handleMutation(c, res, err)
}

// ToggleNews handles POST /api/v1/admin/berita/:id/toggle
// @Summary Publish or unpublish news
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "News ID"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.MutationResponse
// @Router /api/v1/admin/berita/{id}/toggle [post]
func (h *Handler) ToggleNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	res, err := h.manager.ToggleNews(c.Request().Context(), id)
	return h.handleMutation(c, res, err)
}

// AdminServices handles GET /api/v1/admin/layanan
// @Summary All services, inactive included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.Service
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/layanan [get]
func (h *Handler) AdminServices(c echo.Context) error {
	list, err := h.manager.Services(c.Request().Context(), false)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewService))
}

// CreateService handles POST /api/v1/admin/layanan
// @Summary Add a service
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.ServiceInput true "Service form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/layanan [post]
func (h *Handler) CreateService(c echo.Context) error {
	var in desa.ServiceInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.CreateService(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// UpdateService handles PUT /api/v1/admin/layanan/:id
// @Summary Update a service
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param body body desa.ServiceInput true "Service form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.MutationResponse
// @Router /api/v1/admin/layanan/{id} [put]
func (h *Handler) UpdateService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var in desa.ServiceInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.UpdateService(c.Request().Context(), id, in)
	return h.handleMutation(c, res, err)
}

// AdminGallery handles GET /api/v1/admin/galeri
// @Summary All gallery photos, hidden included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.GalleryItem
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/galeri [get]
func (h *Handler) AdminGallery(c echo.Context) error {
	list, err := h.manager.Gallery(c.Request().Context(), false)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list, NewGalleryItem))
}

// CreateGalleryItem handles POST /api/v1/admin/galeri
// @Summary Add a gallery photo
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.GalleryInput true "Gallery form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/galeri [post]
func (h *Handler) CreateGalleryItem(c echo.Context) error {
	var in desa.GalleryInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.CreateGalleryItem(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// AdminProfile handles GET /api/v1/admin/profil
// @Summary Profile editor payload
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.AdminProfile
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/profil [get]
func (h *Handler) AdminProfile(c echo.Context) error {
	profile, err := h.manager.AdminProfile(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewAdminProfile(profile))
}

// UpdateKades handles PUT /api/v1/admin/profil/kades
// @Summary Update the village head profile
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.KadesInput true "Kades form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/profil/kades [put]
func (h *Handler) UpdateKades(c echo.Context) error {
	var in desa.KadesInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.UpdateKades(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// UpdateVisiMisi handles PUT /api/v1/admin/profil/visi-misi
// @Summary Update visi and misi
// @Description misi is newline separated, one item per line
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.VisiMisiInput true "Visi misi form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/profil/visi-misi [put]
func (h *Handler) UpdateVisiMisi(c echo.Context) error {
	var in desa.VisiMisiInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.UpdateVisiMisi(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// CreateProgram handles POST /api/v1/admin/profil/program
// @Summary Add a priority program
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.ProgramInput true "Program form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/profil/program [post]
func (h *Handler) CreateProgram(c echo.Context) error {
	var in desa.ProgramInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.CreateProgram(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// CreateOfficial handles POST /api/v1/admin/profil/perangkat
// @Summary Add a village official
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.OfficialInput true "Official form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/profil/perangkat [post]
func (h *Handler) CreateOfficial(c echo.Context) error {
	var in desa.OfficialInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.CreateOfficial(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}

// deleteSorted handles DELETE of a service, gallery photo, program or official.
// @Summary Delete a sort-ordered row
// @Description Deletes a service, gallery photo, priority program or village official. Siblings keep their order.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.MutationResponse
// @Router /api/v1/admin/layanan/{id} [delete]
// @Router /api/v1/admin/galeri/{id} [delete]
// @Router /api/v1/admin/profil/program/{id} [delete]
// @Router /api/v1/admin/profil/perangkat/{id} [delete]
func (h *Handler) deleteSorted(kind db.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}

		res, err := h.manager.Delete(c.Request().Context(), kind, id)
		return h.handleMutation(c, res, err)
	}
}

// toggleSorted flips is_active of a service, gallery photo, program or official.
// @Summary Toggle a sort-ordered row
// @Description Activates or deactivates a service, gallery photo, priority program or village official
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.MutationResponse
// @Router /api/v1/admin/layanan/{id}/toggle [post]
// @Router /api/v1/admin/galeri/{id}/toggle [post]
// @Router /api/v1/admin/profil/program/{id}/toggle [post]
// @Router /api/v1/admin/profil/perangkat/{id}/toggle [post]
func (h *Handler) toggleSorted(kind db.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}

		res, err := h.manager.Toggle(c.Request().Context(), kind, id)
		return h.handleMutation(c, res, err)
	}
}

// AdminStatistics handles GET /api/v1/admin/statistik
// @Summary Current statistics and history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.Statistics
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/statistik [get]
func (h *Handler) AdminStatistics(c echo.Context) error {
	stats, err := h.manager.Statistics(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewStatistics(stats))
}

// SaveStats handles POST /api/v1/admin/statistik
// @Summary Record a statistics snapshot
// @Description Stores a new current snapshot. age_groups, occupations and educations are JSON encoded lists.
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body desa.StatsInput true "Statistics form"
// @Success 200 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.MutationResponse
// @Router /api/v1/admin/statistik [post]
func (h *Handler) SaveStats(c echo.Context) error {
	var in desa.StatsInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.manager.SaveStats(c.Request().Context(), in)
	return h.handleMutation(c, res, err)
}
