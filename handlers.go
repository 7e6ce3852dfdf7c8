package ogcard

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/ogcard/render"
)

// handleCard serves GET /og/<path>[.jpg][?v=...]. Resolution failures
// short-circuit with an empty 404 before any render work; render failures
// propagate to the error handler as 500s.
func (a *App) handleCard(c echo.Context) error {
	raw := "/" + c.Param("*")
	raw = strings.TrimSuffix(raw, ".jpg")

	meta, err := a.resolver.Resolve(raw)
	if errors.Is(err, ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	img, err := render.JPEG(a.card(meta), a.fonts)
	if err != nil {
		return err
	}

	// Presence of the v parameter alone marks the URL as fingerprinted;
	// its value is irrelevant.
	resp := BuildResponse(img, c.QueryParams().Has("v"))
	c.Response().Header().Set("Cache-Control", resp.CacheControl)
	return c.Blob(http.StatusOK, resp.ContentType, resp.Body)
}

// handleCardURL serves GET /og-url/<path>: the fingerprinted image URL for a
// content path, for page templates that emit og:image tags.
func (a *App) handleCardURL(c echo.Context) error {
	raw := "/" + c.Param("*")
	p, err := NormalizePath(strings.TrimSuffix(raw, ".jpg"))
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}
	meta, err := a.resolver.Resolve(p)
	if errors.Is(err, ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, VersionedImageURL(p, Fingerprint(meta)))
}

// card pairs resolved metadata with the site identity footer.
func (a *App) card(meta Metadata) render.Card {
	footer := a.Config.Name
	if meta.HideFooter {
		footer = ""
	}
	return render.Card{
		Title:                meta.Title,
		Description:          meta.Description,
		AccentColor:          meta.AccentColor,
		SecondaryAccentColor: meta.SecondaryAccentColor,
		TextColor:            meta.TextColor,
		BackgroundColor:      meta.BackgroundColor,
		Footer:               footer,
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errors.Is(err, ErrNotFound) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
