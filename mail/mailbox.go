package mail

import (
	"errors"
	"strings"
)

var (
	// ErrMissingAngleBrackets is returned when neither '<' nor '>' occurs.
	ErrMissingAngleBrackets = errors.New("missing angle brackets")
	// ErrMissingOpeningAngleBracket is returned when only '>' occurs.
	ErrMissingOpeningAngleBracket = errors.New("missing opening angle bracket")
	// ErrMissingClosingAngleBracket is returned when only '<' occurs.
	ErrMissingClosingAngleBracket = errors.New("missing closing angle bracket")
	// ErrAngleBracketOrder is returned when '>' occurs before '<'.
	ErrAngleBracketOrder = errors.New("wrong order of angle brackets")
)

// InvalidNameError wraps the part validation failure of the display name.
type InvalidNameError struct {
	Err error
}

func (e *InvalidNameError) Error() string { return "invalid name: " + e.Err.Error() }
func (e *InvalidNameError) Unwrap() error { return e.Err }

// InvalidAddressError wraps the address parse failure of the bracketed
// interior.
type InvalidAddressError struct {
	Err error
}

func (e *InvalidAddressError) Error() string { return "invalid address: " + e.Err.Error() }
func (e *InvalidAddressError) Unwrap() error { return e.Err }

// Mailbox couples an address with an optional display name. Values are
// immutable and can only be obtained through ParseMailbox or NewMailbox.
type Mailbox struct {
	name    string
	address Address
}

// NewMailbox creates a mailbox from an optional display name (empty means
// absent) and an already-validated address. Only the name is validated
// here, so unlike ParseMailbox it never returns an InvalidAddressError.
func NewMailbox(name string, address Address) (Mailbox, error) {
	if name != "" {
		if err := ValidatePart(name); err != nil {
			return Mailbox{}, &InvalidNameError{Err: err}
		}
	}
	return Mailbox{name: name, address: address}, nil
}

// ParseMailbox parses the "name <user@domain>" surface form. The input is
// trimmed, then classified by the positions of the first '<' and first '>':
// both absent, one absent, or '>' before '<' each fail with their own
// error. Text before the '<' becomes the display name when non-empty after
// trimming; the bracket interior is parsed as an address. Anything after
// the first '>' is ignored.
func ParseMailbox(s string) (Mailbox, error) {
	s = strings.TrimSpace(s)

	left := strings.IndexByte(s, '<')
	right := strings.IndexByte(s, '>')
	switch {
	case left < 0 && right < 0:
		return Mailbox{}, ErrMissingAngleBrackets
	case left < 0:
		return Mailbox{}, ErrMissingOpeningAngleBracket
	case right < 0:
		return Mailbox{}, ErrMissingClosingAngleBracket
	case left > right:
		return Mailbox{}, ErrAngleBracketOrder
	}

	name := strings.TrimSpace(s[:left])
	if name != "" {
		if err := ValidatePart(name); err != nil {
			return Mailbox{}, &InvalidNameError{Err: err}
		}
	}

	address, err := ParseAddress(s[left+1 : right])
	if err != nil {
		return Mailbox{}, &InvalidAddressError{Err: err}
	}

	return Mailbox{name: name, address: address}, nil
}

// Name returns the display name and whether one is present.
func (m Mailbox) Name() (string, bool) { return m.name, m.name != "" }

// Address returns the mailbox address.
func (m Mailbox) Address() Address { return m.address }

// String renders the mailbox with mandatory angle brackets, so the result
// always parses back to an equal value.
func (m Mailbox) String() string {
	if m.name == "" {
		return "<" + m.address.String() + ">"
	}
	return m.name + " <" + m.address.String() + ">"
}
