package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

// PayloadProvider serves canned payloads keyed by identifier and records each request.
// Unknown identifiers yield a 404 StatusError.
type PayloadProvider struct {
	Payloads  map[string]string
	mu        sync.Mutex
	Requested []string
}

func (p *PayloadProvider) FetchEntity(ctx context.Context, identifier string) (providers.Payload, error) {
	_ = ctx
	p.mu.Lock()
	p.Requested = append(p.Requested, identifier)
	p.mu.Unlock()

	body, ok := p.Payloads[identifier]
	if !ok {
		return nil, &providers.StatusError{Provider: "stub", Identifier: identifier, StatusCode: http.StatusNotFound}
	}
	return providers.Payload(body), nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchEntity(ctx context.Context, identifier string) (providers.Payload, error) {
	_ = ctx
	_ = identifier
	return nil, p.Err
}

// UnavailableProvider simulates a transport failure.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchEntity(ctx context.Context, identifier string) (providers.Payload, error) {
	_ = ctx
	return nil, &providers.UnavailableError{Provider: "stub", Identifier: identifier}
}

// PanicProvider fails the test if called; used to assert a route never reaches upstream.
type PanicProvider struct{}

func (PanicProvider) FetchEntity(ctx context.Context, identifier string) (providers.Payload, error) {
	panic("upstream must not be called for " + identifier)
}
