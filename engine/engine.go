// Package engine is the completion generator: it walks a word list in
// lockstep with a command tree to find the focused argument, and produces
// the ordered candidate list for it (spec §4.3/§4.4).
package engine

import (
	"errors"
	"unicode/utf8"

	"go.abhg.dev/dynacomplete/candidate"
	"go.abhg.dev/dynacomplete/cmdtree"
	"go.abhg.dev/dynacomplete/internal/must"
	"go.abhg.dev/dynacomplete/pathcomplete"
	"go.abhg.dev/dynacomplete/token"
)

// ErrNoCompletion is returned when the walk cannot reach the target cursor
// — the request describes a cursor position the tree can't account for.
var ErrNoCompletion = errors.New("engine: no completion for this position")

// Engine runs the completion generator. The zero value is ready to use and
// reads the real filesystem; set DirReader to drive it against a fake one.
type Engine struct {
	DirReader pathcomplete.DirReader
}

// Complete runs the algorithm in spec §4.3 over root, words, and cursor,
// rooting any path completion at cwd. cursor may be negative to mean
// "default to len(words)-1", matching a completion request with no
// explicit index.
//
// words must be non-empty; this is a precondition on the caller (the host
// CLI layer), not a recoverable input error, so violating it panics rather
// than returning an error.
func (e *Engine) Complete(root cmdtree.Node, words []string, cursor int, cwd string) ([]candidate.Candidate, error) {
	must.NotBeEmptyf(words, "engine: words must not be empty")

	if cursor < 0 {
		cursor = len(words) - 1
	}

	stream := token.NewStream(words)
	if root.SkipFirstToken() {
		stream.Advance()
	}

	currentNode := root
	posIndex := 1
	escaped := false

	for {
		tok, idx, ok := stream.Next()
		if !ok {
			return nil, ErrNoCompletion
		}

		if idx == cursor {
			return e.completeArgSite(tok, currentNode, posIndex, escaped, cwd), nil
		}

		switch {
		case !escaped:
			if child, found := currentNode.FindSubcommand(tok.Value()); found {
				currentNode = child
				posIndex = 1
				continue
			}
			if tok.IsEscape() {
				escaped = true
				continue
			}
			if _, _, _, isLong := tok.AsLong(); isLong {
				continue // positional counter untouched by options
			}
			if _, isShort := tok.AsShort(); isShort {
				continue
			}
			posIndex++
		default:
			posIndex++
		}
	}
}

// completeArgSite implements §4.4: the focused token tok is completed
// against currentNode at posIndex. All five phases are attempted
// unconditionally and concatenated in order; a phase whose shape gate
// doesn't match tok simply contributes nothing, which is what makes the
// phases safe to run uniformly instead of special-casing tok's shape.
func (e *Engine) completeArgSite(tok token.Parsed, node cmdtree.Node, posIndex int, escaped bool, cwd string) []candidate.Candidate {
	var out []candidate.Candidate

	longName, inlineValue, hasInline, isLong := tok.AsLong()
	_, isShort := tok.AsShort()
	isBare := !escaped && (tok.IsEscape() || tok.IsStdio() || tok.IsEmpty())

	// Phase 1: long-option site.
	if !escaped && isLong {
		if hasInline {
			if opt, found := findLongOption(node, longName); found {
				for _, v := range e.valueCompletions(opt.Hint, opt.Possible, inlineValue, cwd) {
					out = append(out, candidate.New("--"+longName+"="+v))
				}
			}
		} else {
			out = append(out, longCandidates(node, longName)...)
		}
	}

	// Phase 2: bare site — every long name, unfiltered.
	if isBare {
		out = append(out, longCandidates(node, "")...)
	}

	// Phase 3: short-cluster site — append one alias char to what's
	// already typed. Per spec §9, the contract is uniformly
	// <existing><alias>, even when "existing" is empty (bare) or "--"
	// (the escape sentinel read as the focused token).
	if isShort || isBare {
		out = append(out, shortAugmentCandidates(node, tok.Value())...)
	}

	// Phase 4: positional site.
	if pos, found := node.Positional(posIndex); found {
		out = append(out, e.valueCandidates(pos.Hint, pos.Possible, tok.Value(), cwd)...)
	}

	// Phase 5: subcommand site — sorted and deduplicated, unlike every
	// other phase.
	if utf8.ValidString(tok.Value()) {
		var subs []candidate.Candidate
		for _, child := range node.Subcommands() {
			if !hasPrefixRune(child.Name(), tok.Value()) {
				continue
			}
			c := candidate.New(child.Name())
			if about := child.About(); about != "" {
				c = c.WithHelp(about)
			}
			subs = append(subs, c)
		}
		out = append(out, candidate.SortDedup(subs)...)
	}

	return out
}

func hasPrefixRune(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// findLongOption looks up an option by any of its long names (including
// aliases), against the same declared-plus-synthetic-help list longCandidates
// draws from.
func findLongOption(node cmdtree.Node, name string) (cmdtree.Option, bool) {
	for _, opt := range node.Options() {
		for _, n := range opt.LongNames {
			if n == name {
				return opt, true
			}
		}
	}
	return cmdtree.Option{}, false
}

// longCandidates returns one Candidate per long name (primary + aliases +
// negated spelling) across all of node's options, in declaration order,
// filtered to those starting with prefix. An empty prefix matches
// everything (the bare-site case).
func longCandidates(node cmdtree.Node, prefix string) []candidate.Candidate {
	var out []candidate.Candidate
	for _, opt := range node.Options() {
		if opt.Hidden {
			continue
		}
		for _, name := range opt.LongNames {
			if !hasPrefixRune(name, prefix) {
				continue
			}
			c := candidate.New("--" + name)
			if opt.Help != "" {
				c = c.WithHelp(opt.Help)
			}
			out = append(out, c)
		}
	}
	return out
}

// shortAugmentCandidates appends one short alias character to existing
// (the raw bytes already typed for the focused token) for every short name
// across all of node's options, in declaration order.
func shortAugmentCandidates(node cmdtree.Node, existing string) []candidate.Candidate {
	var out []candidate.Candidate
	for _, opt := range node.Options() {
		if opt.Hidden {
			continue
		}
		for _, short := range opt.ShortNames {
			c := candidate.New(existing + string(short))
			if opt.Help != "" {
				c = c.WithHelp(opt.Help)
			}
			out = append(out, c)
		}
	}
	return out
}

// valueCandidates is valueCompletions wrapped with an empty-Hint-means-
// empty-result default removed: positionals always go through the full
// policy (possible values, then hint), same as options.
func (e *Engine) valueCandidates(hint cmdtree.ValueHint, possible []cmdtree.PossibleValue, prefix, cwd string) []candidate.Candidate {
	var out []candidate.Candidate
	for _, v := range e.valueCompletions(hint, possible, prefix, cwd) {
		out = append(out, candidate.New(v))
	}
	return applyPossibleHelp(out, possible)
}

// applyPossibleHelp attaches possible-value help text back onto plain
// string completions produced by valueCompletions, when the completions
// came from an explicit possible-value list rather than path completion.
func applyPossibleHelp(cands []candidate.Candidate, possible []cmdtree.PossibleValue) []candidate.Candidate {
	if len(possible) == 0 {
		return cands
	}
	help := make(map[string]string, len(possible))
	for _, p := range possible {
		if p.Help != "" {
			help[p.Name] = p.Help
		}
	}
	for i, c := range cands {
		if h, ok := help[c.Value]; ok {
			cands[i] = c.WithHelp(h)
		}
	}
	return cands
}

// valueCompletions implements §4.4: explicit possible values (in
// declaration order) override Hint entirely; otherwise Hint drives path
// completion, or contributes nothing for hints with no implementation.
func (e *Engine) valueCompletions(hint cmdtree.ValueHint, possible []cmdtree.PossibleValue, prefix, cwd string) []string {
	if len(possible) > 0 {
		var out []string
		for _, v := range possible {
			if hasPrefixRune(v.Name, prefix) {
				out = append(out, v.Name)
			}
		}
		return out
	}

	want, ok := hint.PathPolicy()
	if !ok {
		return nil
	}
	return pathcomplete.Complete(prefix, cwd, e.DirReader, want)
}
