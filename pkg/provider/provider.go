// Package provider assembles the web client configuration: fixed constants,
// build identifiers and the endpoints derived from the environment.
//
// A Provider is built once at startup and shared by reference. It exposes no
// way to change its values.
package provider

import (
	"encoding/json"
	"fmt"

	"github.com/sgaunet/webui-config/pkg/buildinfo"
	"github.com/sgaunet/webui-config/pkg/config"
	"github.com/sgaunet/webui-config/pkg/constants"
	"github.com/sgaunet/webui-config/pkg/endpoints"
	"github.com/sgaunet/webui-config/pkg/filetypes"
	"gopkg.in/yaml.v3"
)

// Provider holds the configuration of the web client.
type Provider struct {
	endpoints endpoints.Endpoints
	version   string
	buildHash string
}

// New builds the configuration for cfg. It cannot fail: cfg only selects
// which branch of the base URL derivation applies.
func New(cfg config.Config) *Provider {
	return &Provider{
		endpoints: endpoints.Resolve(cfg.Browser, cfg.Dev, cfg.Hostname),
		version:   buildinfo.Version,
		buildHash: buildinfo.BuildHash,
	}
}

// AppName returns the application display name.
func (p *Provider) AppName() string { return constants.AppName }

// Endpoints returns the base URL and service URLs.
func (p *Provider) Endpoints() endpoints.Endpoints { return p.endpoints }

// Version returns the version stamped at build time.
func (p *Provider) Version() string { return p.version }

// BuildHash returns the build hash stamped at build time.
func (p *Provider) BuildHash() string { return p.buildHash }

// RequiredOllamaVersion returns the minimum supported Ollama version.
func (p *Provider) RequiredOllamaVersion() string { return constants.RequiredOllamaVersion }

// SupportedFileTypes returns the set of MIME types accepted for upload.
func (p *Provider) SupportedFileTypes() filetypes.Set { return filetypes.SupportedTypes() }

// SupportedFileExtensions returns the set of file extensions accepted for upload.
func (p *Provider) SupportedFileExtensions() filetypes.Set { return filetypes.SupportedExtensions() }

// PastedTextCharacterLimit returns the pasted text character limit.
func (p *Provider) PastedTextCharacterLimit() int { return constants.PastedTextCharacterLimit }

// Snapshot is the exported form of a Provider.
type Snapshot struct {
	AppName                  string              `json:"appName"                  yaml:"appName"`
	Version                  string              `json:"version"                  yaml:"version"`
	BuildHash                string              `json:"buildHash"                yaml:"buildHash"`
	RequiredOllamaVersion    string              `json:"requiredOllamaVersion"    yaml:"requiredOllamaVersion"`
	Endpoints                endpoints.Endpoints `json:"endpoints"                yaml:"endpoints"`
	SupportedFileTypes       []string            `json:"supportedFileTypes"       yaml:"supportedFileTypes"`
	SupportedFileExtensions  []string            `json:"supportedFileExtensions"  yaml:"supportedFileExtensions"`
	PastedTextCharacterLimit int                 `json:"pastedTextCharacterLimit" yaml:"pastedTextCharacterLimit"`
}

// Snapshot returns a copy of every value held by the provider.
func (p *Provider) Snapshot() Snapshot {
	return Snapshot{
		AppName:                  p.AppName(),
		Version:                  p.Version(),
		BuildHash:                p.BuildHash(),
		RequiredOllamaVersion:    p.RequiredOllamaVersion(),
		Endpoints:                p.Endpoints(),
		SupportedFileTypes:       p.SupportedFileTypes().Values(),
		SupportedFileExtensions:  p.SupportedFileExtensions().Values(),
		PastedTextCharacterLimit: p.PastedTextCharacterLimit(),
	}
}

// YAML returns the snapshot encoded as YAML.
func (p *Provider) YAML() ([]byte, error) {
	out, err := yaml.Marshal(p.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration as yaml: %w", err)
	}
	return out, nil
}

// JSON returns the snapshot encoded as indented JSON.
func (p *Provider) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(p.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration as json: %w", err)
	}
	return out, nil
}
