// Package candidate defines the result model the completion engine
// produces: a Candidate (the value substituted into the command line, plus
// optional display text and help) and a Group, which shells that support
// labeled sections (zsh) render as such.
package candidate

import (
	"cmp"
	"slices"
)

// Candidate is a single completion suggestion.
//
// Value is the byte-exact string substituted into the command line; it
// never embeds shell quoting. Display defaults to Value when unset. Help is
// absent unless the source argument or subcommand carried help text.
type Candidate struct {
	Value   string
	display string
	help    string
	hasHelp bool
}

// New builds a Candidate with no display override and no help text.
func New(value string) Candidate {
	return Candidate{Value: value}
}

// WithDisplay returns a copy of c with an explicit display string.
func (c Candidate) WithDisplay(display string) Candidate {
	c.display = display
	return c
}

// WithHelp returns a copy of c carrying help text.
func (c Candidate) WithHelp(help string) Candidate {
	c.help = help
	c.hasHelp = help != ""
	return c
}

// Display returns the human-facing label, falling back to Value.
func (c Candidate) Display() string {
	if c.display != "" {
		return c.display
	}
	return c.Value
}

// Help returns the candidate's help text, and whether it has any.
func (c Candidate) Help() (string, bool) {
	return c.help, c.hasHelp
}

// Compare orders candidates lexicographically by (Value, Display, Help).
func Compare(a, b Candidate) int {
	if d := cmp.Compare(a.Value, b.Value); d != 0 {
		return d
	}
	if d := cmp.Compare(a.Display(), b.Display()); d != 0 {
		return d
	}
	ah, _ := a.Help()
	bh, _ := b.Help()
	return cmp.Compare(ah, bh)
}

// Equal reports whether two candidates are componentwise equal.
func Equal(a, b Candidate) bool {
	return Compare(a, b) == 0
}

// SortDedup sorts items by Compare and removes adjacent duplicates. It is
// used by the completion generator's subcommand phase, which the spec
// requires to be sorted and deduplicated (every other phase preserves its
// own declaration or filesystem order).
func SortDedup(items []Candidate) []Candidate {
	slices.SortFunc(items, Compare)
	return slices.CompactFunc(items, Equal)
}

// Group is a named bundle of candidates. Only the zsh adapter renders Name;
// other shells ignore it. Groups preserve the insertion order of their
// items.
type Group struct {
	Name  string
	Items []Candidate
}

// SingleGroup wraps a flat candidate list in one unnamed group, for the
// zsh adapter, which takes groups, when the candidates carry no sections.
func SingleGroup(items []Candidate) []Group {
	if len(items) == 0 {
		return nil
	}
	return []Group{{Items: items}}
}
