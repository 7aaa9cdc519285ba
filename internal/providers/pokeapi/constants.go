package pokeapi

import "time"

const (
	providerName       = "pokeapi"
	defaultBaseURL     = "https://pokeapi.co/api/v2/pokemon"
	defaultHTTPTimeout = 10 * time.Second
	// Cap on how much of an error body is kept for diagnostics.
	errorBodyLimit = 512
	// Largest success body accepted.
	maxPayloadBytes = 8 << 20
)
