package mail

import (
	"errors"
	"strings"
)

// ErrMissingUserOrDomain is returned when an address string contains no '@'.
var ErrMissingUserOrDomain = errors.New("missing user or domain (no '@' found)")

// InvalidUserError wraps the part validation failure of the user part.
type InvalidUserError struct {
	Err error
}

func (e *InvalidUserError) Error() string { return "invalid user: " + e.Err.Error() }
func (e *InvalidUserError) Unwrap() error { return e.Err }

// InvalidDomainError wraps the part validation failure of the domain part.
type InvalidDomainError struct {
	Err error
}

func (e *InvalidDomainError) Error() string { return "invalid domain: " + e.Err.Error() }
func (e *InvalidDomainError) Unwrap() error { return e.Err }

// Address is a validated user@domain pair. Values are immutable and can
// only be obtained through ParseAddress or NewAddress; the zero value is
// not a valid address.
type Address struct {
	user   string
	domain string
}

// NewAddress creates an address from already-separated user and domain
// parts, validating both. Unlike ParseAddress it never returns
// ErrMissingUserOrDomain: no splitting happens here.
func NewAddress(user, domain string) (Address, error) {
	if err := ValidatePart(user); err != nil {
		return Address{}, &InvalidUserError{Err: err}
	}
	if err := ValidatePart(domain); err != nil {
		return Address{}, &InvalidDomainError{Err: err}
	}
	return Address{user: user, domain: domain}, nil
}

// ParseAddress splits s on the rightmost '@' and validates both sides. A
// stray '@' left inside the user part is caught by part validation, so the
// domain can never contain one.
func ParseAddress(s string) (Address, error) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return Address{}, ErrMissingUserOrDomain
	}
	return NewAddress(s[:i], s[i+1:])
}

// User returns the part before the '@'.
func (a Address) User() string { return a.user }

// Domain returns the part after the '@'.
func (a Address) Domain() string { return a.domain }

// IsZero reports whether a is the zero value rather than a parsed address.
func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string { return a.user + "@" + a.domain }

// Compare orders addresses by user, then domain.
func (a Address) Compare(b Address) int {
	if c := strings.Compare(a.user, b.user); c != 0 {
		return c
	}
	return strings.Compare(a.domain, b.domain)
}
