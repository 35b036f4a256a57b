package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		AppEnv:           "test",
		Port:             "8080",
		DatabaseURL:      "postgres://localhost/feedbackpulse",
		SessionSecret:    "0123456789abcdef0123456789abcdef",
		AdminUsername:    "admin",
		AdminPassword:    "supersecret",
		SubmitRateLimit:  10,
		SubmitRateWindow: time.Minute,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validate(validTestConfig()))
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := validTestConfig()
	cfg.DatabaseURL = ""

	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidate_ShortSessionSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.SessionSecret = "too-short"

	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidate_ShortAdminPassword(t *testing.T) {
	cfg := validTestConfig()
	cfg.AdminPassword = "short"

	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

func TestValidate_BadRateLimit(t *testing.T) {
	cfg := validTestConfig()
	cfg.SubmitRateLimit = 0
	assert.Error(t, validate(cfg))

	cfg = validTestConfig()
	cfg.SubmitRateWindow = 0
	assert.Error(t, validate(cfg))
}
