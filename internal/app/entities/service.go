package entities

import (
	"context"

	domainentities "github.com/preston-bernstein/pokemon-gateway/internal/domain/entities"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
	"github.com/preston-bernstein/pokemon-gateway/internal/transform"
)

// Service composes the upstream fetch with the payload transform.
type Service struct {
	provider providers.EntityProvider
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.EntityProvider) *Service {
	return &Service{provider: provider}
}

// Entity fetches the identifier upstream and returns its normalized form.
// Errors match providers.ErrNotFound, providers.ErrUnavailable or
// providers.ErrMalformedPayload.
func (s *Service) Entity(ctx context.Context, identifier string) (domainentities.Entity, error) {
	payload, err := s.provider.FetchEntity(ctx, identifier)
	if err != nil {
		return domainentities.Entity{}, err
	}
	return transform.Entity(payload)
}
