package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 10

	defaultCatalogWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"backoffice.base_url":                        "http://localhost:8081",
		"backoffice.timeout":                         "30s",
		"backoffice.retry.max_attempts":              defaultRetryMaxAttempts,
		"backoffice.retry.initial_interval":          "100ms",
		"backoffice.retry.max_interval":              "10s",
		"backoffice.retry.multiplier":                defaultRetryMultiplier,
		"backoffice.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"backoffice.circuit_breaker.timeout":         "30s",
		"backoffice.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"backoffice.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"backoffice.rate_limit.burst_size":           defaultRateLimitBurst,

		"ops.catalog_workers": defaultCatalogWorkers,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
