package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverDefaults(t *testing.T) {
	cfg := Default()

	_, err := toml.Decode(`
[App]
Port = 8080

[API]
BaseURL = "http://backend:5001/api"
Timeout = "3s"

[Session]
Secure = true
TrustedOrigins = ["portal.example.uz"]

[Display]
BoardTTL = "90s"
`, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "http://backend:5001/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout.Duration)
	assert.Equal(t, 24*time.Hour, cfg.Session.Lifetime.Duration)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, []string{"portal.example.uz"}, cfg.Session.TrustedOrigins)
	assert.Equal(t, 90*time.Second, cfg.Display.BoardTTL.Duration)
	assert.Equal(t, "@every 1m", cfg.Display.ReapSchedule)
	assert.Equal(t, 100, cfg.Admin.PageSize)
}

func TestDuration_Invalid(t *testing.T) {
	cfg := Default()
	_, err := toml.Decode("[API]\nTimeout = \"soon\"\n", &cfg)
	assert.Error(t, err)
}
