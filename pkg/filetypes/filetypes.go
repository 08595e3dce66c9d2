// Package filetypes answers whether an uploaded file is supported, based on
// its MIME type and its extension.
package filetypes

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sgaunet/webui-config/pkg/constants"
)

// ErrUnsupportedFile is returned when neither the type nor the extension of a file is supported.
var ErrUnsupportedFile = errors.New("unsupported file")

// Set is an immutable set of strings.
type Set struct {
	m map[string]struct{}
}

// NewSet builds a set from values. Duplicates are collapsed.
func NewSet(values ...string) Set {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return Set{m: m}
}

// Contains reports whether v is a member of the set.
func (s Set) Contains(v string) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.m)
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	values := make([]string, 0, len(s.m))
	for v := range s.m {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

var (
	supportedTypes      = NewSet(constants.SupportedFileTypes()...)
	supportedExtensions = NewSet(constants.SupportedFileExtensions()...)
)

// SupportedTypes returns the set of supported MIME types.
func SupportedTypes() Set {
	return supportedTypes
}

// SupportedExtensions returns the set of supported extensions, without leading dot.
func SupportedExtensions() Set {
	return supportedExtensions
}

// IsSupportedType reports whether the MIME type is supported.
// Matching ignores case and media type parameters such as charset.
func IsSupportedType(mimeType string) bool {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType, _, _ = strings.Cut(mimeType, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return supportedTypes.Contains(mediaType)
}

// IsSupportedExtension reports whether the extension is supported.
// The leading dot is optional and matching ignores case.
func IsSupportedExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	return supportedExtensions.Contains(ext)
}

// Extension returns the lower-cased extension of filename without its dot.
// Files without extension, such as Dockerfile, are identified by their base name.
func Extension(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return strings.ToLower(strings.TrimPrefix(base, "."))
	}
	return strings.ToLower(ext[1:])
}

// Check returns nil when the file is accepted for upload. A file is accepted
// when either its MIME type or its extension is supported.
func Check(filename, mimeType string) error {
	if mimeType != "" && IsSupportedType(mimeType) {
		return nil
	}
	if filename != "" && IsSupportedExtension(Extension(filename)) {
		return nil
	}
	return fmt.Errorf("%w: name %q, type %q", ErrUnsupportedFile, filename, mimeType)
}
