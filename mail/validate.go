// Package mail parses and validates textual email address constructs:
// addresses (user@domain), mailboxes (Name <user@domain>) and the headers
// and messages built from them.
//
// The accepted grammar is deliberately stricter than RFC 5322: every part
// (user, domain, display name) must be non-empty US-ASCII text without any
// of the characters `<>()[]\,;:@"`. Quoted local parts, comments, folding
// whitespace and internationalized addresses are not supported.
package mail

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// forbiddenChars may not appear anywhere in a user, domain or display-name
// part.
const forbiddenChars = "<>()[]\\,;:@\""

// ErrPartEmpty is returned when a part contains no characters at all.
var ErrPartEmpty = errors.New("part is empty")

// NonASCIICharacterError reports the first character of a part outside the
// US-ASCII range.
type NonASCIICharacterError struct {
	Char rune
}

func (e *NonASCIICharacterError) Error() string {
	return fmt.Sprintf("part contains non-ascii character %q", e.Char)
}

// ForbiddenCharacterError reports the first forbidden character found in a
// part.
type ForbiddenCharacterError struct {
	Char rune
}

func (e *ForbiddenCharacterError) Error() string {
	return fmt.Sprintf("part contains forbidden character %q", e.Char)
}

// ValidatePart checks a single user, domain or display-name token. The
// non-ascii scan runs before the forbidden-character scan, so a non-ascii
// lookalike of a forbidden character is reported as non-ascii.
func ValidatePart(part string) error {
	if part == "" {
		return ErrPartEmpty
	}
	for _, c := range part {
		if c > unicode.MaxASCII {
			return &NonASCIICharacterError{Char: c}
		}
	}
	for _, c := range part {
		if strings.ContainsRune(forbiddenChars, c) {
			return &ForbiddenCharacterError{Char: c}
		}
	}
	return nil
}
