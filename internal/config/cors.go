package config

// CORSConfig lists what cross-origin callers may do. An empty origin list disables CORS handling.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}

func loadCORS() CORSConfig {
	return CORSConfig{
		Origins:          listEnvOrDefault(envCORSOrigins, defaultCORSWildcard),
		Methods:          listEnvOrDefault(envCORSMethods, defaultCORSWildcard),
		Headers:          listEnvOrDefault(envCORSHeaders, defaultCORSWildcard),
		AllowCredentials: boolEnvOrDefault(envCORSCredentials, true),
	}
}
