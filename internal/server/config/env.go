package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. Unset variables leave
// the current values alone, so env sits between the JSON file and flags
// in precedence.
type envConfig struct {
	EndpointAddrGRPC             string        `env:"AUTHGATE_GRPC_ADDR"`
	DatabasePath                 string        `env:"AUTHGATE_DB_PATH"`
	SecretKey                    string        `env:"AUTHGATE_SECRET_KEY"`
	AccessTokenValidityDuration  time.Duration `env:"AUTHGATE_ACCESS_TOKEN_TTL"`
	RefreshTokenValidityDuration time.Duration `env:"AUTHGATE_REFRESH_TOKEN_TTL"`
	BootstrapUsername            string        `env:"AUTHGATE_BOOTSTRAP_USER"`
	LoginRatePerMinute           int           `env:"AUTHGATE_LOGIN_RATE_PER_MINUTE"`
	LoginRateBurst               int           `env:"AUTHGATE_LOGIN_RATE_BURST"`
}

func parseEnv(config *Config) {
	e := envConfig{
		EndpointAddrGRPC:             config.EndpointAddrGRPC,
		DatabasePath:                 config.DatabasePath,
		SecretKey:                    config.SecretKey,
		AccessTokenValidityDuration:  config.AccessTokenValidityDuration,
		RefreshTokenValidityDuration: config.RefreshTokenValidityDuration,
		BootstrapUsername:            config.BootstrapUsername,
		LoginRatePerMinute:           config.LoginRatePerMinute,
		LoginRateBurst:               config.LoginRateBurst,
	}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = e.EndpointAddrGRPC
	config.DatabasePath = e.DatabasePath
	config.SecretKey = e.SecretKey
	config.AccessTokenValidityDuration = e.AccessTokenValidityDuration
	config.RefreshTokenValidityDuration = e.RefreshTokenValidityDuration
	config.BootstrapUsername = e.BootstrapUsername
	config.LoginRatePerMinute = e.LoginRatePerMinute
	config.LoginRateBurst = e.LoginRateBurst
}
