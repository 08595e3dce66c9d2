// Package compat checks the version reported by an Ollama server against the
// minimum version the client supports.
package compat

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/sgaunet/webui-config/pkg/constants"
)

var (
	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrUnsupportedVersion is returned when the server is older than the required version.
	ErrUnsupportedVersion = errors.New("unsupported version")
)

var requiredOllama = version.Must(version.NewVersion(constants.RequiredOllamaVersion))

// RequiredOllama returns the minimum supported Ollama version.
func RequiredOllama() *version.Version {
	return requiredOllama
}

// CheckOllama returns nil when reported is at least RequiredOllamaVersion.
func CheckOllama(reported string) error {
	return Check(reported, requiredOllama)
}

// Check returns nil when reported is at least minimum.
func Check(reported string, minimum *version.Version) error {
	v, err := version.NewVersion(reported)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidVersion, reported, err)
	}
	if v.LessThan(minimum) {
		return fmt.Errorf("%w: %s is older than %s", ErrUnsupportedVersion, v, minimum)
	}
	return nil
}
