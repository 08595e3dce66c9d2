package constants

// Development Server
//
// In development builds the client runs on its own dev server and reaches the
// backend on the same host at a fixed port, over plain HTTP.
const (
	// DevPort is the port of the backend in development builds.
	DevPort = 8080

	// DevScheme is the URL scheme used to reach the backend in development builds.
	DevScheme = "http"
)

// Backend Service Path Suffixes
//
// Each suffix is appended to the base URL to form the URL of one service.
const (
	// APISuffix identifies the general web UI API.
	APISuffix = "/api/v1"

	// OllamaSuffix identifies the local model (Ollama) proxy.
	OllamaSuffix = "/ollama"

	// OpenAISuffix identifies the third party model (OpenAI compatible) proxy.
	OpenAISuffix = "/openai"

	// RetrievalSuffix identifies the retrieval and search service.
	RetrievalSuffix = APISuffix + "/retrieval"
)
