package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.DatabasePath, "authgate.db")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AccessTokenValidityDuration, 10*time.Minute)
	assert.Equal(t, c.RefreshTokenValidityDuration, 720*time.Hour)
	assert.Equal(t, c.BootstrapUsername, "tet")
	assert.Equal(t, c.LoginRatePerMinute, 10)
	assert.Equal(t, c.LoginRateBurst, 5)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.DatabasePath, "authgate.db")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AccessTokenValidityDuration, 10*time.Minute)
	assert.Equal(t, c.RefreshTokenValidityDuration, 720*time.Hour)
	assert.Equal(t, c.BootstrapUsername, "tet")
}
