package utils

import (
	"net/mail"
	"net/url"
)

// IsValidURL reports whether s is an absolute URL with a host.
func IsValidURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// IsValidEmail reports whether s is a bare RFC 5322 address.
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
