package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewDefaultIsValid(t *testing.T) {
	cfg := NewDefault()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.HasToken() {
		t.Error("default config should not carry a token")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "custom base url",
			mutate: func(c *Config) { c.API.BaseURL = "http://localhost:8080" },
		},
		{
			name:        "base url without scheme",
			mutate:      func(c *Config) { c.API.BaseURL = "dev.lunchmoney.app" },
			wantErr:     true,
			errorString: "scheme must be http or https",
		},
		{
			name:        "negative rate",
			mutate:      func(c *Config) { c.API.RequestsPerSecond = -1 },
			wantErr:     true,
			errorString: "invalid requests per second -1",
		},
		{
			name:        "negative burst",
			mutate:      func(c *Config) { c.API.Burst = -2 },
			wantErr:     true,
			errorString: "invalid burst -2",
		},
		{
			name:        "bad currency",
			mutate:      func(c *Config) { c.Defaults.Currency = "EURO" },
			wantErr:     true,
			errorString: "invalid default currency 'EURO'",
		},
		{
			name:        "negative ttl",
			mutate:      func(c *Config) { c.Cache.TTL = -time.Second },
			wantErr:     true,
			errorString: "invalid cache ttl -1s",
		},
		{
			name:   "upper case level",
			mutate: func(c *Config) { c.Log.Level = "DEBUG" },
		},
		{
			name:        "unknown level",
			mutate:      func(c *Config) { c.Log.Level = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := NewDefault()
	cfg.API.Burst = -1
	cfg.Log.Level = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 2 {
		t.Errorf("expected 2 problems, got %d in %q", got, err.Error())
	}
}

func TestHasToken(t *testing.T) {
	cfg := NewDefault()
	cfg.API.Token = "   "
	if cfg.HasToken() {
		t.Error("blank token should not count")
	}
	cfg.API.Token = "abc"
	if !cfg.HasToken() {
		t.Error("expected token")
	}
}
