package dkssite

import (
	"embed"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains the site's static assets: site.css, stories.js
// and favicon.svg.
//
//go:embed public/*
var EmbeddedAssets embed.FS

var publicFS = echo.MustSubFS(EmbeddedAssets, "public")

// registerStatic serves /public from the static dir when one is configured,
// otherwise from the embedded assets. The favicon always comes from the
// embedded assets.
func (a *App) registerStatic() {
	if a.staticDir != "" {
		a.Echo.Static("/public", a.staticDir)
	} else {
		a.Echo.StaticFS("/public", publicFS)
	}
	a.Echo.FileFS("/favicon.svg", "favicon.svg", publicFS)
}
