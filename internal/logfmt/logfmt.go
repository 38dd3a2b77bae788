// Package logfmt provides small helpers for shaping values before they
// reach a structured log line — named logfmt, not silog, to avoid
// colliding with the go.abhg.dev/log/silog import most call sites also
// need for the *Logger type itself.
package logfmt

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// MaybeQuote quotes s with Go-string escaping when it contains control
// characters, non-printable runes, or is all whitespace — the kind of
// value that would otherwise make a log line hard to read or mis-parse.
// Anything else is returned unchanged.
func MaybeQuote(s string) string {
	if needsQuoting(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return false
	}
	if strings.TrimSpace(s) == "" {
		return true
	}
	for _, r := range s {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// NonZero returns a slog attribute for value, omitted entirely when value
// is the zero value for T — used to keep routine log lines free of
// clutter like `cursor=0` or `ifs=""`.
func NonZero[T comparable](name string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{}
	}
	return slog.Any(name, value)
}
