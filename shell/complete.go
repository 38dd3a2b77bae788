// Package shell serializes completion candidates into each shell's wire
// format and renders the registration script each shell sources to invoke
// the completer (spec §4.6/§6).
package shell

import (
	"fmt"
	"io"
	"strings"

	"go.abhg.dev/dynacomplete/candidate"
)

// WriteBash joins candidate values with ifs (bash's default is
// $'\013', passed by the registration stub; an empty ifs falls back to
// "\n"). No display text, no help: bash's COMPREPLY only ever holds
// values.
func WriteBash(w io.Writer, cands []candidate.Candidate, ifs string) error {
	if ifs == "" {
		ifs = "\n"
	}
	values := make([]string, len(cands))
	for i, c := range cands {
		values[i] = c.Value
	}
	_, err := io.WriteString(w, strings.Join(values, ifs))
	return err
}

// SuppressSpace reports whether the last candidate's value ends in a
// character ('=' , '/', or ':') that should keep bash from inserting a
// trailing space, so further completion (an option's value, a path
// segment) can continue without retyping the separator.
func SuppressSpace(cands []candidate.Candidate) bool {
	if len(cands) == 0 {
		return false
	}
	v := cands[len(cands)-1].Value
	if v == "" {
		return false
	}
	switch v[len(v)-1] {
	case '=', '/', ':':
		return true
	default:
		return false
	}
}

// WriteZsh emits one group per candidate.Group: the group name on its own
// line (empty line for an unnamed group), then for each candidate
// "value\ndisplay[\t--- help]\n", then a trailing blank line separating
// groups.
func WriteZsh(w io.Writer, groups []candidate.Group) error {
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, g.Name); err != nil {
			return err
		}
		for _, c := range g.Items {
			if _, err := fmt.Fprintln(w, c.Value); err != nil {
				return err
			}
			line := c.Display()
			if help, ok := c.Help(); ok {
				line += "\t--- " + help
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteFish writes one candidate per line as "value\thelp".
func WriteFish(w io.Writer, cands []candidate.Candidate) error {
	for _, c := range cands {
		help, _ := c.Help()
		if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Value, help); err != nil {
			return err
		}
	}
	return nil
}
