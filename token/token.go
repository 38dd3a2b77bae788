// Package token classifies the words of a partially typed command line.
//
// Words are plain Go strings: on POSIX shells os.Args is already a []string
// of raw bytes, and a Go string is free to hold bytes that are not valid
// UTF-8. The classification methods below only decode to UTF-8 where the
// spec requires a name (a long flag's option name, for example); anything
// else — in particular an inline value attached to a long flag — is passed
// through unexamined.
package token

import "strings"

// Parsed is a single classified word from a command line.
//
// Exactly one of the As* predicates below describes a given Parsed; callers
// switch on them in the order long, short, escape, stdio, empty, falling
// back to a plain value.
type Parsed struct {
	raw string
}

// Parse classifies a single raw word.
func Parse(raw string) Parsed {
	return Parsed{raw: raw}
}

// Value returns the raw bytes of the word, unexamined.
func (p Parsed) Value() string {
	return p.raw
}

// IsEmpty reports whether the word has zero length.
func (p Parsed) IsEmpty() bool {
	return p.raw == ""
}

// IsStdio reports whether the word is exactly "-".
func (p Parsed) IsStdio() bool {
	return p.raw == "-"
}

// IsEscape reports whether the word is exactly "--".
func (p Parsed) IsEscape() bool {
	return p.raw == "--"
}

// AsLong reports whether the word is a long option (--name or --name=value).
// ok is false for anything not prefixed with "--" (including the bare "--"
// escape sentinel, which is handled by IsEscape instead).
func (p Parsed) AsLong() (name string, value string, hasValue bool, ok bool) {
	if !strings.HasPrefix(p.raw, "--") || p.raw == "--" {
		return "", "", false, false
	}
	rest := p.raw[2:]
	if name, value, hasValue = strings.Cut(rest, "="); hasValue {
		return name, value, true, true
	}
	return rest, "", false, true
}

// AsShort reports whether the word is a short-option cluster (-abc). ok is
// false for "-" alone (the stdio sentinel, see IsStdio) and for anything
// starting with "--".
func (p Parsed) AsShort() (cluster string, ok bool) {
	if p.raw == "-" || p.raw == "" {
		return "", false
	}
	if !strings.HasPrefix(p.raw, "-") || strings.HasPrefix(p.raw, "--") {
		return "", false
	}
	return p.raw, true
}

// Stream is a forward cursor over a word list, tracking the absolute index
// of each word it yields so callers can compare against a target cursor
// without losing track of words skipped earlier (for example a leading
// binary-name token).
type Stream struct {
	words []string
	pos   int
}

// NewStream builds a Stream over words, starting at the first word.
func NewStream(words []string) *Stream {
	return &Stream{words: words}
}

// Advance discards the next word without classifying it. It is used to skip
// a leading binary-name token before the real walk begins.
func (s *Stream) Advance() {
	if s.pos < len(s.words) {
		s.pos++
	}
}

// Next returns the next word's classification and its absolute index in the
// original word list, advancing the stream. ok is false once the stream is
// exhausted.
func (s *Stream) Next() (tok Parsed, index int, ok bool) {
	if s.pos >= len(s.words) {
		return Parsed{}, 0, false
	}
	index = s.pos
	tok = Parse(s.words[s.pos])
	s.pos++
	return tok, index, true
}
