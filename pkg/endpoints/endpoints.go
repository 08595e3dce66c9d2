// Package endpoints derives the backend service URLs used by the web client.
//
// The base URL depends on two flags fixed before the client starts (whether
// it runs inside a browser and whether it is a development build) and, in
// development, on the host the page was served from. An empty base URL means
// requests go to the same origin with relative paths.
package endpoints

import (
	"strconv"

	"github.com/sgaunet/webui-config/pkg/constants"
)

// Service names, in the order returned by Endpoints.Services.
const (
	ServiceAPI       = "api"
	ServiceOllama    = "ollama"
	ServiceOpenAI    = "openai"
	ServiceRetrieval = "retrieval"
)

// Endpoints holds the base URL and the URL of each backend service.
type Endpoints struct {
	Hostname  string `json:"hostname"  yaml:"hostname"`
	BaseURL   string `json:"baseURL"   yaml:"baseURL"`
	API       string `json:"api"       yaml:"api"`
	Ollama    string `json:"ollama"    yaml:"ollama"`
	OpenAI    string `json:"openai"    yaml:"openai"`
	Retrieval string `json:"retrieval" yaml:"retrieval"`
}

// Service is a named backend service URL.
type Service struct {
	Name string
	URL  string
}

// Resolve computes the endpoints for the given environment.
//
// Outside a browser and in production builds the base URL is empty. In a
// development build running in a browser the backend is reached over HTTP on
// hostname at the development port.
func Resolve(browser, dev bool, hostname string) Endpoints {
	var host, base string
	if browser && dev {
		// hostname is used verbatim, IPv6 literals arrive already bracketed.
		host = hostname + ":" + strconv.Itoa(constants.DevPort)
		base = constants.DevScheme + "://" + host
	}
	return Endpoints{
		Hostname:  host,
		BaseURL:   base,
		API:       base + constants.APISuffix,
		Ollama:    base + constants.OllamaSuffix,
		OpenAI:    base + constants.OpenAISuffix,
		Retrieval: base + constants.RetrievalSuffix,
	}
}

// IsRelative reports whether service URLs are same-origin relative paths.
func (e Endpoints) IsRelative() bool {
	return e.BaseURL == ""
}

// Services returns the service URLs in a fixed order.
func (e Endpoints) Services() []Service {
	return []Service{
		{Name: ServiceAPI, URL: e.API},
		{Name: ServiceOllama, URL: e.Ollama},
		{Name: ServiceOpenAI, URL: e.OpenAI},
		{Name: ServiceRetrieval, URL: e.Retrieval},
	}
}
