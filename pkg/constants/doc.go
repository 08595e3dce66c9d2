// Package constants provides the fixed values shared by the web client.
//
// Everything here is a compile-time literal: the application name, the
// development server port, the path suffix of each backend service, the
// minimum supported Ollama version, the pasted text limit and the lists of
// file types accepted for upload.
//
// Organization:
//   - app.go: application identity and backend compatibility
//   - services.go: development server and backend service path suffixes
//   - upload.go: supported MIME types, file extensions and input limits
//
// Values derived from the runtime environment (base URLs) are not constants
// and live in the endpoints package.
package constants
