package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ServesSiteFiles(t *testing.T) {
	h := Handler()

	cases := map[string]string{
		"/":          `id="contactForm"`,
		"/script.js": "async function handleFormSubmit(event)",
		"/style.css": ".reveal",
	}
	for path, want := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("%s: body missing %q", path, want)
		}
	}
}

func TestHandler_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope.txt", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
