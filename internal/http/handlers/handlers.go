package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/preston-bernstein/pokemon-gateway/internal/app/entities"
	domainentities "github.com/preston-bernstein/pokemon-gateway/internal/domain/entities"
	"github.com/preston-bernstein/pokemon-gateway/internal/logging"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

const (
	entityPrefix  = "/entity/"
	pokemonPrefix = "/pokemon/"

	detailNotFound       = "Not found"
	detailMethod         = "Method not allowed"
	detailUnavailable    = "Unable to connect to upstream service"
	detailMalformed      = "Upstream service returned an unexpected payload"
	detailShuttingDown   = "Service shutting down"
	detailEntityNotFound = "Entity with identifier '%s' not found"
)

// Handler wires HTTP routes to the entity service.
type Handler struct {
	svc         *entities.Service
	serviceName string
	logger      *slog.Logger

	shuttingDown atomic.Bool
}

// NewHandler constructs a Handler.
func NewHandler(svc *entities.Service, serviceName string, logger *slog.Logger) *Handler {
	return &Handler{
		svc:         svc,
		serviceName: serviceName,
		logger:      logger,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/":
		h.Root(w, r)
	case r.URL.Path == "/health":
		h.Health(w, r)
	case strings.HasPrefix(r.URL.Path, entityPrefix), strings.HasPrefix(r.URL.Path, pokemonPrefix):
		h.EntityByIdentifier(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, detailNotFound, h.logger)
	}
}

// Root reports that the service is running. It never reaches upstream.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, detailNotFound, h.logger)
		return
	}
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, detailMethod, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, domainentities.RootResponse{Message: h.serviceName + " is running"}, h.logger)
}

// BeginShutdown makes Health report 503 for the rest of the process lifetime.
func (h *Handler) BeginShutdown() {
	h.shuttingDown.Store(true)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, detailMethod, h.logger)
		return
	}
	if h.shuttingDown.Load() || r.Context().Err() != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, detailShuttingDown, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// EntityByIdentifier fetches and normalizes a single entity.
// Expects /entity/{identifier} or /pokemon/{identifier}.
func (h *Handler) EntityByIdentifier(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, detailMethod, h.logger)
		return
	}

	// Ids that cannot form a single upstream path segment match no route.
	identifier, ok := identifierFromPath(r)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, detailNotFound, h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	entity, err := h.svc.Entity(r.Context(), identifier)
	if err != nil {
		status, detail := classify(err, identifier)
		logging.Warn(logger, "entity request failed",
			logging.FieldIdentifier, identifier,
			logging.FieldStatusCode, status,
			"error", err,
		)
		writeError(w, r, status, detail, h.logger)
		return
	}

	logging.Debug(logger, "served entity", logging.FieldIdentifier, identifier)
	writeJSON(w, nethttp.StatusOK, entity, h.logger)
}

func identifierFromPath(r *nethttp.Request) (string, bool) {
	raw := r.URL.EscapedPath()
	switch {
	case strings.HasPrefix(raw, entityPrefix):
		raw = strings.TrimPrefix(raw, entityPrefix)
	case strings.HasPrefix(raw, pokemonPrefix):
		raw = strings.TrimPrefix(raw, pokemonPrefix)
	default:
		return "", false
	}

	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// classify maps a service error onto a status code and detail message.
func classify(err error, identifier string) (int, string) {
	switch {
	case errors.Is(err, providers.ErrNotFound):
		return nethttp.StatusNotFound, fmt.Sprintf(detailEntityNotFound, identifier)
	case errors.Is(err, providers.ErrUnavailable):
		return nethttp.StatusServiceUnavailable, detailUnavailable
	default:
		// ErrMalformedPayload and anything unclassified.
		return nethttp.StatusBadGateway, detailMalformed
	}
}
