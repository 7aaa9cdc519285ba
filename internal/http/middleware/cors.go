package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// Methods advertised on preflight when the configured list is a wildcard.
var allMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// CORSConfig lists what cross-origin callers may do. "*" in any list is a wildcard.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}

// CORS adds cross-origin headers and answers preflight requests.
// With no configured origins it returns next unchanged.
func CORS(cfg CORSConfig, next http.Handler) http.Handler {
	origins := slices.Clone(cfg.Origins)
	methods := slices.Clone(cfg.Methods)
	headers := slices.Clone(cfg.Headers)
	if len(origins) == 0 {
		return next
	}
	anyOrigin := slices.Contains(origins, "*")
	if slices.Contains(methods, "*") {
		methods = allMethods
	}
	anyHeader := slices.Contains(headers, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed := anyOrigin || slices.Contains(origins, origin)
		if allowed {
			setAllowOrigin(w, origin, anyOrigin, cfg.AllowCredentials)
		}

		preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
		if !preflight {
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
		if anyHeader {
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				w.Header().Set("Access-Control-Allow-Headers", requested)
			}
		} else if len(headers) > 0 {
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(headers, ", "))
		}
		w.Header().Set("Access-Control-Max-Age", "600")
		w.WriteHeader(http.StatusOK)
	})
}

// Credentialed responses may not use the "*" origin, so the caller's origin is echoed instead.
func setAllowOrigin(w http.ResponseWriter, origin string, anyOrigin, credentials bool) {
	h := w.Header()
	if anyOrigin && !credentials {
		h.Set("Access-Control-Allow-Origin", "*")
	} else {
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
	}
	if credentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
}
