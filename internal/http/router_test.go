package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/pokemon-gateway/internal/app/entities"
	"github.com/preston-bernstein/pokemon-gateway/internal/http/handlers"
	"github.com/preston-bernstein/pokemon-gateway/internal/testutil"
)

func newTestRouter() http.Handler {
	p := &testutil.PayloadProvider{Payloads: map[string]string{"ditto": testutil.DittoPayload}}
	h := handlers.NewHandler(entities.NewService(p), "Pokemon API", nil)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/":               http.StatusOK,
		"/health":         http.StatusOK,
		"/entity/ditto":   http.StatusOK,
		"/pokemon/ditto":  http.StatusOK,
		"/entity/missing": http.StatusNotFound,
		"/entity/":        http.StatusNotFound,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json 404 body, got content type %q", got)
	}
}

func TestRouterRejectsNonGet(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/", "/health", "/entity/ditto"} {
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("route %s expected 405, got %d", path, rr.Code)
		}
	}
}
