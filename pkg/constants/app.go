package constants

// Application identity.
const (
	// AppName is the display name of the application.
	AppName = "The Finance Genie"
)

// Backend Compatibility
//
// The client refuses to talk to Ollama servers older than this release.
// Reference: https://github.com/ollama/ollama/releases
const (
	// RequiredOllamaVersion is the minimum Ollama server version, as a semantic version string.
	RequiredOllamaVersion = "0.1.16"
)
