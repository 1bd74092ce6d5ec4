// Package urlcheck validates user-supplied website addresses.
package urlcheck

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid is returned by Validate for strings that are not absolute URLs.
var ErrInvalid = errors.New("invalid URL")

// Valid reports whether raw parses as an absolute URL with a scheme and host.
func Valid(raw string) bool {
	return Validate(raw) == nil
}

// Validate is Valid with a reason.
func Validate(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("%w: empty", ErrInvalid)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("%w: missing scheme in %q", ErrInvalid, trimmed)
	}
	if u.Host == "" && u.Opaque == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalid, trimmed)
	}
	return nil
}
