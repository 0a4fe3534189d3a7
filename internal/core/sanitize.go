package core

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonPrintable matches control characters other than tab, newline and
// carriage return, plus invalid UTF-8 (decoded as U+FFFD).
func nonPrintable(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	case utf8.RuneError:
		return true
	}
	return unicode.IsControl(r)
}

var nonPrintableSet = runes.Predicate(nonPrintable)

// Sanitize removes non-printable characters and normalises the result to NFC.
// Sanitize(Sanitize(s)) == Sanitize(s) for every s.
func Sanitize(s string) string {
	if clean(s) {
		return s
	}
	t := transform.Chain(runes.Remove(nonPrintableSet), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return fallbackSanitize(s)
	}
	return out
}

func clean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if nonPrintable(r) {
			return false
		}
	}
	return norm.NFC.IsNormalString(s)
}

func fallbackSanitize(s string) string {
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if !nonPrintable(r) {
			b = append(b, r)
		}
	}
	return norm.NFC.String(string(b))
}

// Sanitizer returns Sanitize when filter is set and the identity otherwise.
func Sanitizer(filter bool) func(string) string {
	if !filter {
		return func(s string) string { return s }
	}
	return Sanitize
}
