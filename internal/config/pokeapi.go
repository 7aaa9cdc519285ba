package config

// PokeAPIConfig controls how we talk to the upstream PokeAPI service.
type PokeAPIConfig struct {
	BaseURL string
	Timeout Duration
}

func loadPokeAPI() PokeAPIConfig {
	return PokeAPIConfig{
		BaseURL: envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		Timeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
	}
}
