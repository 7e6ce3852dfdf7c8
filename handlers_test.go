package ogcard

import (
	"bytes"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	src := mapSource{
		"/posts/foo": {
			Path:        "/posts/foo",
			Kind:        KindPost,
			Title:       "Foo",
			Description: "A post about foo.",
			Published:   true,
		},
		"/long": {
			Path:      "/long",
			Kind:      KindPage,
			Title:     strings.Repeat("an exceedingly long title ", 40),
			Published: true,
		},
	}
	a := New(SiteConfig{
		Name:          "Example",
		AdminPassword: "hunter2",
		SessionSecret: "0123456789abcdef",
	}, WithContentSource(src))
	if err := a.initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	return a
}

func do(a *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestCardHandlerServesJPEG(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/og/posts/foo.jpg", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/jpeg") {
		t.Errorf("Content-Type = %q, want image/jpeg", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=0, must-revalidate" {
		t.Errorf("Cache-Control = %q, want must-revalidate policy", cc)
	}

	img, err := jpeg.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a decodable JPEG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1200 || b.Dy() != 630 {
		t.Errorf("canvas = %dx%d, want 1200x630", b.Dx(), b.Dy())
	}
}

func TestCardHandlerVersionedCache(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/og/posts/foo.jpg?v=deadbeef", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=31536000, immutable" {
		t.Errorf("Cache-Control = %q, want immutable policy", cc)
	}
}

func TestCardHandlerNotFound(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/og/does-not-exist.jpg", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("404 body length = %d, want empty", rec.Body.Len())
	}
}

func TestCardHandlerNormalizesPath(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/og/posts/foo/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("trailing slash: status = %d, want 200", rec.Code)
	}

	rec = do(a, httptest.NewRequest(http.MethodGet, "/og/posts/../posts/foo.jpg", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("traversal: status = %d, want 404", rec.Code)
	}
}

func TestCardHandlerLongTitle(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/og/long.jpg", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("long title: status = %d, want 200", rec.Code)
	}
}

func TestCardURLHandler(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/og-url/posts/foo", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !regexp.MustCompile(`^/og/posts/foo\.jpg\?v=[0-9a-f]{8}$`).MatchString(body) {
		t.Errorf("body = %q, want versioned image URL", body)
	}

	// The URL must embed the same fingerprint the resolver would produce.
	meta, err := a.resolver.Resolve("/posts/foo")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := VersionedImageURL("/posts/foo", Fingerprint(meta)); body != want {
		t.Errorf("body = %q, want %q", body, want)
	}

	rec = do(a, httptest.NewRequest(http.MethodGet, "/og-url/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing path: status = %d, want 404", rec.Code)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	a := newTestApp(t)

	rec := do(a, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password") {
		t.Error("expected login form for unauthenticated request")
	}

	rec = do(a, httptest.NewRequest(http.MethodPost, "/admin/invalidate/", nil))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("invalidate without session: status = %d, want 303", rec.Code)
	}
}

func TestAdminLogin(t *testing.T) {
	a := newTestApp(t)

	form := strings.NewReader("password=wrong")
	req := httptest.NewRequest(http.MethodPost, "/admin/login/", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(a, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Wrong password") {
		t.Errorf("wrong password: status = %d, want 200 with error page", rec.Code)
	}

	form = strings.NewReader("password=hunter2")
	req = httptest.NewRequest(http.MethodPost, "/admin/login/", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = do(a, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("correct password: status = %d, want 303", rec.Code)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie after login")
	}
}
