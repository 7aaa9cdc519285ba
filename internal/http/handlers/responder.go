package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/pokemon-gateway/internal/logging"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigStd.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, detail string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Detail: detail}, loggerFromContext(r, logger))
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
