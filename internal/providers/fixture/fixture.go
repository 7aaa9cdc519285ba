package fixture

import (
	"context"
	"net/http"
	"strings"

	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

const providerName = "fixture"

// Provider serves canned upstream payloads, useful for local development and
// demos without network access. Identifiers match by name or numeric id.
type Provider struct {
	payloads map[string]string
}

// New creates a fixture provider preloaded with example entities.
func New() *Provider {
	return &Provider{
		payloads: map[string]string{
			"ditto":   dittoPayload,
			"132":     dittoPayload,
			"pikachu": pikachuPayload,
			"25":      pikachuPayload,
		},
	}
}

// FetchEntity returns the canned payload for identifier, or a 404 StatusError when unknown.
func (p *Provider) FetchEntity(ctx context.Context, identifier string) (providers.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, &providers.UnavailableError{Provider: providerName, Identifier: identifier, Err: err}
	}
	body, ok := p.payloads[strings.ToLower(identifier)]
	if !ok {
		return nil, &providers.StatusError{
			Provider:   providerName,
			Identifier: identifier,
			StatusCode: http.StatusNotFound,
			Body:       "Not Found",
		}
	}
	return providers.Payload(body), nil
}

const dittoPayload = `{
	"id": 132,
	"name": "ditto",
	"height": 3,
	"weight": 40,
	"base_experience": 101,
	"abilities": [
		{"ability": {"name": "limber", "url": "https://pokeapi.co/api/v2/ability/7/"}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "imposter", "url": "https://pokeapi.co/api/v2/ability/150/"}, "is_hidden": true, "slot": 3}
	],
	"types": [
		{"slot": 1, "type": {"name": "normal", "url": "https://pokeapi.co/api/v2/type/1/"}}
	],
	"sprites": {
		"front_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/132.png",
		"back_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/back/132.png"
	},
	"moves": [
		{"move": {"name": "transform", "url": "https://pokeapi.co/api/v2/move/144/"}}
	]
}`

const pikachuPayload = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"base_experience": 112,
	"abilities": [
		{"ability": {"name": "static", "url": "https://pokeapi.co/api/v2/ability/9/"}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "lightning-rod", "url": "https://pokeapi.co/api/v2/ability/31/"}, "is_hidden": true, "slot": 3}
	],
	"types": [
		{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}
	],
	"sprites": {
		"front_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png"
	},
	"moves": [
		{"move": {"name": "mega-punch", "url": "https://pokeapi.co/api/v2/move/5/"}},
		{"move": {"name": "pay-day", "url": "https://pokeapi.co/api/v2/move/6/"}},
		{"move": {"name": "thunder-punch", "url": "https://pokeapi.co/api/v2/move/9/"}},
		{"move": {"name": "thunder-shock", "url": "https://pokeapi.co/api/v2/move/84/"}}
	]
}`
