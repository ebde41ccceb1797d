package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_ValidateSSLMode(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		expectError bool
	}{
		{"Production with empty SSL mode", "production", "", true},
		{"Production with disable SSL mode", "production", "disable", true},
		{"Production with require SSL mode", "production", "require", false},
		{"Prod with verify-full SSL mode", "prod", "verify-full", false},
		{"Development with disable SSL mode", "development", "disable", false},
		{"Test with empty SSL mode", "test", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        tt.env,
				DBSSLMode:  tt.sslMode,
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-password",
				Port:       "8480",
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	c := &Config{JWTSecret: "secret"}
	assert.Error(t, c.Validate(), "missing port should fail")

	c = &Config{Port: "8480"}
	assert.Error(t, c.Validate(), "missing JWT secret should fail")
}

func TestConfig_ValidateProductionSecrets(t *testing.T) {
	c := &Config{
		Env:        "production",
		Port:       "8480",
		JWTSecret:  "your-secret-key-change-in-production",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
	}
	assert.Error(t, c.Validate(), "default JWT secret must be rejected in production")

	c.JWTSecret = "short"
	assert.Error(t, c.Validate(), "short JWT secret must be rejected in production")

	c.JWTSecret = "secure-secret-at-least-32-chars-long"
	c.DBPassword = "password"
	assert.Error(t, c.Validate(), "default DB password must be rejected in production")
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8480", c.Port)
	assert.Equal(t, "skillswap", c.DBName)
	assert.Equal(t, "stdout", c.TracingExporter)
}
