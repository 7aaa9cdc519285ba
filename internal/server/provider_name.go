package server

import (
	"strings"

	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers/fixture"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers/pokeapi"
)

// normalizeProviderName names the provider for metric attributes and log fields.
// Known implementations win over the configured value, which may have fallen back.
func normalizeProviderName(raw string, provider providers.EntityProvider) string {
	switch provider.(type) {
	case *pokeapi.Client:
		return providerPokeAPI
	case *fixture.Provider:
		return providerFixture
	}
	if name := strings.ToLower(strings.TrimSpace(raw)); name != "" {
		return name
	}
	return "provider"
}
