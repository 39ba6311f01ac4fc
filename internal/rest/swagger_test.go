package rest

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/daniilsolovey/desa-portal/docs"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDoc_CoversRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, swaggerPath, "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := decode[struct {
		Paths map[string]map[string]any `json:"paths"`
	}](t, rec)

	documented := 0
	for _, route := range env.e.Routes() {
		if route.Path != healthPath && !strings.HasPrefix(route.Path, apiV1Prefix) {
			continue
		}
		// groups with middleware register catch-all not-found routes
		if route.Method == echo.RouteNotFound || strings.HasSuffix(route.Path, "*") {
			continue
		}

		path := pathParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "route %s %s is not documented", route.Method, route.Path) {
			assert.Contains(t, ops, strings.ToLower(route.Method), "route %s %s", route.Method, route.Path)
			documented++
		}
	}

	assert.Equal(t, 37, documented)
}
