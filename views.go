package ogcard

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds the templ components rendered for the service's HTML
// surfaces (admin pages and error pages). Embedders may replace any of them;
// nil members fall back to the built-in pages.
type ViewFuncs struct {
	AdminLogin  func(showError bool) templ.Component
	AdminHome   func(message string) templ.Component
	Preview     func(path, fingerprint, imageURL string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.AdminLogin == nil {
		v.AdminLogin = defaultAdminLogin
	}
	if v.AdminHome == nil {
		v.AdminHome = defaultAdminHome
	}
	if v.Preview == nil {
		v.Preview = defaultPreview
	}
	if v.NotFound == nil {
		v.NotFound = defaultNotFound
	}
	if v.ServerError == nil {
		v.ServerError = defaultServerError
	}
}

// page wraps a body fragment in a minimal HTML document.
func page(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!doctype html><html><head><meta charset="utf-8"><title>%s</title></head><body>%s</body></html>`,
			html.EscapeString(title), body)
		return err
	})
}

func defaultAdminLogin(showError bool) templ.Component {
	msg := ""
	if showError {
		msg = `<p>Wrong password.</p>`
	}
	return page("ogcard admin", msg+
		`<form method="post" action="/admin/login/">`+
		`<input type="password" name="password" autofocus>`+
		`<button>Log in</button></form>`)
}

func defaultAdminHome(message string) templ.Component {
	msg := ""
	if message != "" {
		msg = "<p>" + html.EscapeString(message) + "</p>"
	}
	return page("ogcard admin", msg+
		`<form method="get" action="/admin/preview/">`+
		`<input type="text" name="path" placeholder="/posts/hello">`+
		`<button>Preview card</button></form>`+
		`<form method="post" action="/admin/invalidate/"><button>Invalidate content cache</button></form>`+
		`<form method="post" action="/admin/logout/"><button>Log out</button></form>`)
}

func defaultPreview(path, fingerprint, imageURL string) templ.Component {
	body := fmt.Sprintf(
		`<h1>%s</h1><p>fingerprint <code>%s</code></p>`+
			`<img src="%s" width="600" alt="card preview">`+
			`<p><a href="/admin/preview.svg?path=%s">vector stage</a> · <a href="/admin/">back</a></p>`,
		html.EscapeString(path), html.EscapeString(fingerprint),
		html.EscapeString(imageURL), url.QueryEscape(path))
	return page("preview "+path, body)
}

func defaultNotFound() templ.Component {
	return page("Not found", `<h1>404</h1><p>Nothing here.</p>`)
}

func defaultServerError() templ.Component {
	return page("Server error", `<h1>500</h1><p>Something went wrong.</p>`)
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
