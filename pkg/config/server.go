package config

import "time"

// ServerConfig controls the HTTP edge.
type ServerConfig struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// RunAPIEnabled gates the /api/runs surface. When false the Run API
	// responds 404 to every route.
	RunAPIEnabled bool `yaml:"run_api_enabled"`

	// SSEKeepaliveInterval is how often an idle SSE stream emits a
	// ": keepalive" comment frame.
	SSEKeepaliveInterval time.Duration `yaml:"sse_keepalive_interval"`

	// IdempotencyTTL is how long cached idempotent responses are replayed.
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl"`

	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig controls cross-origin behavior.
type CORSConfig struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowMethods     []string `yaml:"allow_methods"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:                 "8080",
		RunAPIEnabled:        true,
		SSEKeepaliveInterval: 15 * time.Second,
		IdempotencyTTL:       24 * time.Hour,
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowHeaders: []string{"Content-Type", "Authorization", "Idempotency-Key"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		},
	}
}

// Normalize applies the wildcard downgrade: "*" origins combined with
// credentials is not a valid CORS configuration, so credentials are
// force-disabled rather than silently shipping a broken policy.
func (c *CORSConfig) Normalize() bool {
	if !c.AllowCredentials {
		return false
	}
	for _, o := range c.AllowOrigins {
		if o == "*" {
			c.AllowCredentials = false
			return true
		}
	}
	return false
}
