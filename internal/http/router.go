package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/pokemon-gateway/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/entity/", handler.EntityByIdentifier)
	mux.HandleFunc("/pokemon/", handler.EntityByIdentifier)
	return mux
}
