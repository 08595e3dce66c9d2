// Package config provides the environment flags the web client configuration is derived from.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sgaunet/webui-config/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ErrInvalidHostname is returned when the hostname cannot be used to build a development URL.
var ErrInvalidHostname = errors.New("invalid hostname")

// Config holds the flags fixed before the client starts.
type Config struct {
	Browser   bool   `env:"WEBUI_BROWSER"  env-default:"false"     env-description:"Running inside a browser page" yaml:"browser"`
	Dev       bool   `env:"WEBUI_DEV"      env-default:"false"     env-description:"Development build"              yaml:"dev"`
	Hostname  string `env:"WEBUI_HOSTNAME" env-default:"localhost" env-description:"Host the page was served from"  yaml:"hostname"`
	NoLogTime bool   `env:"NOLOGTIME"      env-default:"false"     env-description:"Omit timestamps from log output" yaml:"noLogTime"`
}

// NewConfigFromFile returns a new Config struct from the given file.
// Environment variables override values from the file.
func NewConfigFromFile(filePath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(filePath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file %s: %w", filePath, err)
	}
	return &cfg, nil
}

// NewConfigFromEnv returns a new Config struct from the environment variables.
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the hostname when it is used, that is in a development
// build running in a browser. It must be a bare host name or address.
func (c *Config) Validate() error {
	if !c.Browser || !c.Dev {
		return nil
	}
	if c.Hostname == "" {
		return fmt.Errorf("%w: hostname is required in a development browser build", ErrInvalidHostname)
	}
	if strings.Contains(c.Hostname, "://") || strings.ContainsAny(c.Hostname, "/?# ") {
		return fmt.Errorf("%w: %q must not contain a scheme or path", ErrInvalidHostname, c.Hostname)
	}
	bracketed := strings.HasPrefix(c.Hostname, "[") && strings.HasSuffix(c.Hostname, "]")
	bare := c.Hostname
	if bracketed {
		bare = c.Hostname[1 : len(c.Hostname)-1]
		if ip := net.ParseIP(bare); ip == nil || ip.To4() != nil {
			return fmt.Errorf("%w: %q only IPv6 addresses may be bracketed", ErrInvalidHostname, c.Hostname)
		}
	} else if strings.Contains(c.Hostname, ":") {
		if ip := net.ParseIP(c.Hostname); ip != nil {
			return fmt.Errorf("%w: IPv6 address %q must be enclosed in brackets", ErrInvalidHostname, c.Hostname)
		}
		return fmt.Errorf("%w: %q must not contain a port", ErrInvalidHostname, c.Hostname)
	}

	port := strconv.Itoa(constants.DevPort)
	u, err := url.Parse(constants.DevScheme + "://" + c.Hostname + ":" + port)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidHostname, c.Hostname, err)
	}
	if u.User != nil || u.Path != "" || u.RawQuery != "" || u.Fragment != "" ||
		u.Port() != port || u.Hostname() != bare {
		return fmt.Errorf("%w: %q must be a bare host name or address", ErrInvalidHostname, c.Hostname)
	}
	return nil
}

func (c *Config) String() string {
	cyaml, err := yaml.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Usage prints the usage of the config.
func (c *Config) Usage() {
	f := cleanenv.Usage(c, nil)
	f()
}
