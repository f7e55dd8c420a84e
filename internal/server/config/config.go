// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags (later sources win).
package config

import "time"

// Config holds runtime settings for the AuthGate server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabasePath: SQLite database file backing the KV store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - RefreshTokenValidityDuration: refresh token lifetime; 0 means tokens never expire.
//   - BootstrapUsername: the one account allowed to sign up without an invite.
//   - LoginRatePerMinute / LoginRateBurst: per-username login throttle.
type Config struct {
	EndpointAddrGRPC             string
	DatabasePath                 string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	BootstrapUsername            string
	LoginRatePerMinute           int
	LoginRateBurst               int
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabasePath = "authgate.db"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 10 * time.Minute
	c.RefreshTokenValidityDuration = 720 * time.Hour
	c.BootstrapUsername = "tet"
	c.LoginRatePerMinute = 10
	c.LoginRateBurst = 5
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
