package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/pokemon-gateway/internal/config"
	"github.com/preston-bernstein/pokemon-gateway/internal/logging"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers/fixture"
	"github.com/preston-bernstein/pokemon-gateway/internal/providers/pokeapi"
)

const (
	providerPokeAPI = "pokeapi"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.EntityProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case providerPokeAPI, "":
		return newPokeAPIClient(cfg)
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to pokeapi", slog.String(logging.FieldProvider, cfg.Provider))
		return newPokeAPIClient(cfg)
	}
}

func newPokeAPIClient(cfg config.Config) *pokeapi.Client {
	return pokeapi.NewClient(pokeapi.Config{
		BaseURL: cfg.PokeAPI.BaseURL,
		Timeout: cfg.PokeAPI.Timeout,
	})
}
