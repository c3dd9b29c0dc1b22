package dkssite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handlePostsAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Content.Site().Catalog.Posts())
}

var routeMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// otherMethods returns every routable method except allowed.
func otherMethods(allowed ...string) []string {
	var out []string
	for _, m := range routeMethods {
		skip := false
		for _, a := range allowed {
			if m == a {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, m)
		}
	}
	return out
}

// methodNotAllowed answers with 405, an Allow header and a JSON error.
func methodNotAllowed(allowed ...string) echo.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAllow, allow)
		return c.JSON(http.StatusMethodNotAllowed, errorResponse{
			Error: fmt.Sprintf("Method %s not allowed", c.Request().Method),
		})
	}
}
