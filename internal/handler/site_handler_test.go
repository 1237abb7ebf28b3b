package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/routes"
)

func newSiteTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{SiteURL: "https://superengulfing.com"}
	h := NewSiteHandler(cfg, nil, nil, nil, zerolog.Nop())

	r := gin.New()
	for _, route := range routes.Table() {
		r.GET(route.Pattern, h.Page(route))
	}
	r.GET("/am/admin", h.LegacyAdminRedirect)
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)
	return r
}

func TestPublicPageDescriptor(t *testing.T) {
	r := newSiteTestRouter(t)

	tests := []struct {
		path   string
		page   string
		locale string
	}{
		{"/", "home", "en"},
		{"/am", "home", "am"},
		{"/course", "course", "en"},
		{"/am/mentorship", "mentorship", "am"},
		{"/login", "login", "en"},
		{"/am/login", "login", "am"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d", tt.path, w.Code)
			continue
		}

		var body struct {
			Page      string `json:"page"`
			Locale    string `json:"locale"`
			Canonical string `json:"canonical"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tt.path, err)
		}
		if body.Page != tt.page || body.Locale != tt.locale {
			t.Errorf("%s: got page=%q locale=%q, want %q/%q", tt.path, body.Page, body.Locale, tt.page, tt.locale)
		}
		if want := "https://superengulfing.com" + tt.path; body.Canonical != want {
			t.Errorf("%s: canonical %q, want %q", tt.path, body.Canonical, want)
		}
	}
}

func TestDashboardWithoutTokenRedirects(t *testing.T) {
	r := newSiteTestRouter(t)

	tests := map[string]string{
		"/dashboard":             "/login",
		"/dashboard/academy":     "/login",
		"/dashboard/settings":    "/login",
		"/am/dashboard":          "/am/login",
		"/am/dashboard/academy":  "/am/login",
		"/am/dashboard/settings": "/am/login",
	}

	for path, want := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("%s: status %d, want 302", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != want {
			t.Errorf("%s: Location %q, want %q", path, loc, want)
		}
	}
}

func TestThankYouGate(t *testing.T) {
	r := newSiteTestRouter(t)

	// confirmed=1 renders the page.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thank-you?confirmed=1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("confirmed: status %d", w.Code)
	}

	// A bare hit bounces to the locale's landing page.
	tests := map[string]string{
		"/thank-you":    "/",
		"/am/thank-you": "/am",
	}
	for path, want := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusFound {
			t.Errorf("%s: status %d, want 302", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != want {
			t.Errorf("%s: Location %q, want %q", path, loc, want)
		}
	}
}

func TestLegacyAdminRedirect(t *testing.T) {
	r := newSiteTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/am/admin", nil))

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("status %d, want 301", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/am" {
		t.Errorf("Location %q, want /am", loc)
	}
}

func TestRobotsEndpoint(t *testing.T) {
	r := newSiteTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := w.Body.String()
	for _, disallow := range routes.DisallowedPaths() {
		if !strings.Contains(body, "Disallow: "+disallow+"\n") {
			t.Errorf("missing disallow for %s:\n%s", disallow, body)
		}
	}
	if !strings.Contains(body, "Sitemap: https://superengulfing.com/sitemap.xml") {
		t.Errorf("missing sitemap line:\n%s", body)
	}
}

func TestSitemapEndpoint(t *testing.T) {
	r := newSiteTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type %q", ct)
	}
	body := w.Body.String()
	for _, private := range []string{"/dashboard", "admin2admin10", "/thank-you", "/set-password"} {
		if strings.Contains(body, private) {
			t.Errorf("sitemap leaks %s:\n%s", private, body)
		}
	}
}
