// Package config handles configuration for the server component, including
// defaults, environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the bookshop server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the
//     default outside local development.
//   - TokenValidityDuration: lifetime of issued session tokens.
//   - GinMode: gin run mode (debug, release, test).
//   - CORSAllowedOrigins: comma-separated list of allowed origins,
//     "*" for any.
//   - SeedDemoData: whether to load the sample catalog and the sample
//     user at startup.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	GinMode               string
	CORSAllowedOrigins    string
	SeedDemoData          bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key default is a placeholder and must be overridden in
// any real deployment.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.SecretKey = "replace_this_with_a_strong_secret"
	c.TokenValidityDuration = 2 * time.Hour
	c.GinMode = "debug"
	c.CORSAllowedOrigins = "*"
	c.SeedDemoData = true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, from an optional JSON file, and finally from
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
