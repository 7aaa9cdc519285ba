package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	ServiceName string
	PokeAPI     PokeAPIConfig
	CORS        CORSConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		ServiceName: envOrDefault(envServiceName, defaultServiceName),
		PokeAPI:     loadPokeAPI(),
		CORS:        loadCORS(),
		Metrics:     loadMetrics(),
	}
}
