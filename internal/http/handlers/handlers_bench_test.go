package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/pokemon-gateway/internal/testutil"
)

func BenchmarkEntityByIdentifier(b *testing.B) {
	h := newTestHandler(dittoProvider())
	req := httptest.NewRequest(http.MethodGet, "/entity/ditto", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.EntityByIdentifier(rr, req)
	}
}

func BenchmarkRoot(b *testing.B) {
	h := newTestHandler(testutil.PanicProvider{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.Root(rr, req)
	}
}
