package ogcard

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/ogcard/render"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false))
	}
	return Render(c, a.Views.AdminHome(c.QueryParam("msg")))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminLogin(true))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminInvalidate drops the content snapshot so the next card request
// sees fresh records. Used by authoring tools after publishing.
func (a *App) handleAdminInvalidate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=cache+invalidated")
}

// handleAdminPreview shows the rendered card for a path together with its
// fingerprint and versioned URL, for visual QA before publishing.
func (a *App) handleAdminPreview(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	p, meta, err := a.resolvePreview(c.QueryParam("path"))
	if err != nil {
		return err
	}
	fp := Fingerprint(meta)
	return Render(c, a.Views.Preview(p, fp, VersionedImageURL(p, fp)))
}

// handleAdminPreviewSVG serves the intermediate vector stage of the card,
// before rasterization.
func (a *App) handleAdminPreviewSVG(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	_, meta, err := a.resolvePreview(c.QueryParam("path"))
	if err != nil {
		return err
	}
	doc, err := render.SVG(a.card(meta), a.fonts)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", doc)
}

func (a *App) resolvePreview(rawPath string) (string, Metadata, error) {
	p, err := NormalizePath(rawPath)
	if err != nil {
		return "", Metadata{}, echo.NewHTTPError(http.StatusNotFound, "no content at that path")
	}
	meta, err := a.resolver.Resolve(p)
	if errors.Is(err, ErrNotFound) {
		return "", Metadata{}, echo.NewHTTPError(http.StatusNotFound, "no content at that path")
	}
	if err != nil {
		return "", Metadata{}, err
	}
	return p, meta, nil
}
