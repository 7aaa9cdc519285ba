package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envServiceName     = "SERVICE_NAME"
	envPokeAPIBaseURL  = "POKEAPI_BASE_URL"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envCORSMethods     = "CORS_ALLOWED_METHODS"
	envCORSHeaders     = "CORS_ALLOWED_HEADERS"
	envCORSCredentials = "CORS_ALLOW_CREDENTIALS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultProvider    = "pokeapi"
	defaultServiceName = "Pokemon API"
	defaultMetricsPort = "9090"
	defaultOtelService = "pokemon-gateway"

	defaultPokeAPIBaseURL = "https://pokeapi.co/api/v2/pokemon"
	// Single bounded wait per upstream call; there is no retry after it expires.
	defaultUpstreamTimeout = 10 * Duration(time.Second)
)

var defaultCORSWildcard = []string{"*"}
