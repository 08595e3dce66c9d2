package config_test

import (
	"testing"

	"github.com/sgaunet/webui-config/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromFile(t *testing.T) {
	t.Run("normal case", func(t *testing.T) {
		cfg, err := config.NewConfigFromFile("testdata/good-cfg.yaml")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.True(t, cfg.Browser)
		require.True(t, cfg.Dev)
		require.Equal(t, "genie.local", cfg.Hostname)
		require.True(t, cfg.NoLogTime)
	})
	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := config.NewConfigFromFile("testdata/partial-cfg.yaml")
		require.NoError(t, err)
		require.True(t, cfg.Browser)
		require.False(t, cfg.Dev)
		require.Equal(t, "localhost", cfg.Hostname)
	})
	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("WEBUI_HOSTNAME", "override.local")
		cfg, err := config.NewConfigFromFile("testdata/good-cfg.yaml")
		require.NoError(t, err)
		require.Equal(t, "override.local", cfg.Hostname)
	})
	t.Run("file not found", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/unknown.yaml")
		require.Error(t, err)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.NewConfigFromFile("testdata/invalid-cfg.yaml")
		require.Error(t, err)
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("valid environment variables", func(t *testing.T) {
		t.Setenv("WEBUI_BROWSER", "true")
		t.Setenv("WEBUI_DEV", "true")
		t.Setenv("WEBUI_HOSTNAME", "10.0.0.5")
		t.Setenv("NOLOGTIME", "true")

		cfg, err := config.NewConfigFromEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.True(t, cfg.Browser)
		require.True(t, cfg.Dev)
		require.Equal(t, "10.0.0.5", cfg.Hostname)
		require.True(t, cfg.NoLogTime)
	})
	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("WEBUI_BROWSER", "maybe")
		_, err := config.NewConfigFromEnv()
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"outside browser ignores hostname", config.Config{Dev: true, Hostname: "http://x"}, false},
		{"production ignores hostname", config.Config{Browser: true, Hostname: ""}, false},
		{"dev hostname", config.Config{Browser: true, Dev: true, Hostname: "localhost"}, false},
		{"dev ipv4", config.Config{Browser: true, Dev: true, Hostname: "192.168.1.10"}, false},
		{"dev bracketed ipv6", config.Config{Browser: true, Dev: true, Hostname: "[::1]"}, false},
		{"dev empty hostname", config.Config{Browser: true, Dev: true}, true},
		{"dev scheme", config.Config{Browser: true, Dev: true, Hostname: "http://localhost"}, true},
		{"dev path", config.Config{Browser: true, Dev: true, Hostname: "localhost/app"}, true},
		{"dev port", config.Config{Browser: true, Dev: true, Hostname: "localhost:3000"}, true},
		{"dev ipv6 with port", config.Config{Browser: true, Dev: true, Hostname: "[::1]:3000"}, true},
		{"dev unbracketed ipv6", config.Config{Browser: true, Dev: true, Hostname: "::1"}, true},
		{"dev unbracketed ipv6 with port", config.Config{Browser: true, Dev: true, Hostname: "fe80::1:3000"}, true},
		{"dev bracketed name", config.Config{Browser: true, Dev: true, Hostname: "[localhost]"}, true},
		{"dev userinfo", config.Config{Browser: true, Dev: true, Hostname: "user@host"}, true},
		{"dev control character", config.Config{Browser: true, Dev: true, Hostname: "host\tx"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidHostname)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestString(t *testing.T) {
	cfg := config.Config{Browser: true, Hostname: "localhost"}
	s := cfg.String()
	require.Contains(t, s, "browser: true")
	require.Contains(t, s, "hostname: localhost")
}
