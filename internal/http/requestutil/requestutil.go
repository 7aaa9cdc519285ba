package requestutil

import (
	"crypto/rand"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

var (
	useFallback atomic.Bool
	entropyMu   sync.Mutex
	entropy     = ulid.Monotonic(rand.Reader, 0)
)

// SanitizeRequestID validates the incoming request ID header and generates a new one when invalid.
func SanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID generates a monotonic ULID, falling back to a timestamp-only ULID when entropy fails.
func NewRequestID() string {
	now := time.Now()
	if !useFallback.Load() {
		entropyMu.Lock()
		id, err := ulid.New(ulid.Timestamp(now), entropy)
		entropyMu.Unlock()
		if err == nil {
			return id.String()
		}
	}
	var id ulid.ULID
	if err := id.SetTime(ulid.Timestamp(now)); err != nil {
		return strings.Repeat("0", ulid.EncodedSize)
	}
	return id.String()
}

// ClientIP extracts the client IP from X-Forwarded-For or RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
		return forwarded
	}
	return r.RemoteAddr
}
