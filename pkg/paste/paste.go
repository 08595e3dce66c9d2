// Package paste validates text pasted into the chat input against the
// pasted text character limit.
package paste

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sgaunet/webui-config/pkg/constants"
)

// ErrTextTooLong is returned when pasted text exceeds the character limit.
var ErrTextTooLong = errors.New("pasted text exceeds character limit")

// Length returns the number of characters (Unicode code points) in text.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// Exceeds reports whether text is longer than the pasted text limit.
func Exceeds(text string) bool {
	return Length(text) > constants.PastedTextCharacterLimit
}

// Validate returns an error wrapping ErrTextTooLong when text exceeds the limit.
func Validate(text string) error {
	if n := Length(text); n > constants.PastedTextCharacterLimit {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrTextTooLong, n, constants.PastedTextCharacterLimit)
	}
	return nil
}
