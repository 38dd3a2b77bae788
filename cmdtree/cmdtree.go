// Package cmdtree is a read-only view over a host's command-definition
// tree: the data this module borrows from the host to drive completion, and
// never mutates beyond the one-time Build pass a concrete implementation
// may need to finalize its own indexes.
//
// The engine only ever sees this package's interfaces. [StaticNode] is a
// declarative, dependency-free implementation useful for tests and for
// hosts small enough not to need a CLI framework adapter; [FromKong] adapts
// a parsed github.com/alecthomas/kong grammar, the worked example.
package cmdtree

// ValueHint tells the completer what kind of value an option or positional
// expects. It drives path completion when the argument has no explicit
// PossibleValues; see PathPolicy.
type ValueHint string

// The closed set of recognized value hints.
const (
	HintNone            ValueHint = "none"
	HintAnyPath         ValueHint = "any-path"
	HintFilePath        ValueHint = "file-path"
	HintDirPath         ValueHint = "dir-path"
	HintExecPath        ValueHint = "exec-path"
	HintCommandName     ValueHint = "command-name"
	HintCommandString   ValueHint = "command-string"
	HintCommandWithArgs ValueHint = "command-with-args"
	HintUsername        ValueHint = "username"
	HintHostname        ValueHint = "hostname"
	HintURL             ValueHint = "url"
	HintEmail           ValueHint = "email"
	HintOther           ValueHint = "other"
)

// PossibleValue is one entry of an argument's explicit enumeration. When an
// argument carries a non-empty possible-value list, it overrides Hint
// entirely (§4.4).
type PossibleValue struct {
	Name string
	Help string
}

// Positional is a positional argument, keyed by its 1-based index within a
// Node.
type Positional struct {
	Hint     ValueHint
	Possible []PossibleValue
}

// Option is a long/short flag. LongNames and ShortNames each list the
// primary name first followed by any visible aliases; either may be empty
// but not both. Negatable options additionally respond to "--no-<long>"
// without it being a separate alias entry — hosts that model negation
// append the negated spelling to LongNames themselves (see FromKong).
type Option struct {
	LongNames  []string
	ShortNames []byte
	Help       string
	Hint       ValueHint
	Possible   []PossibleValue
	Hidden     bool
}

// Node is a read-only view of one point in the command tree: a subcommand
// (or the root). Implementations are responsible for including any implicit
// "help" subcommand or "--help"/"-h" option directly in Subcommands/Options
// when the host opts into one — the engine does not synthesize them.
type Node interface {
	// Name is this node's own name (empty for the root if unnamed).
	Name() string
	// About is the one-line help text shown next to this node when it
	// appears as a subcommand candidate.
	About() string
	// SkipFirstToken reports whether the first raw word of a completion
	// request is the binary name and should be skipped before walking.
	// Multicall binaries, where the first word is itself a subcommand
	// key, set this to false.
	SkipFirstToken() bool
	// Subcommands lists this node's child commands, in declaration
	// order.
	Subcommands() []Node
	// FindSubcommand looks up an immediate child by name or alias.
	FindSubcommand(name string) (Node, bool)
	// Positional returns the positional argument at the given 1-based
	// index, if this node defines one there.
	Positional(index int) (Positional, bool)
	// Options lists this node's long/short flags, in declaration order.
	Options() []Option
}
