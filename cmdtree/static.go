package cmdtree

// StaticNode is a declarative, in-memory Node built by hand (or generated
// from some other host grammar at process start). It is its own Build step:
// there is no derived index to finalize, so construction and finalization
// are the same act.
type StaticNode struct {
	NodeName        string
	AboutText       string
	SkipFirst       bool
	Children        []*StaticNode
	Aliases         map[string][]string // child name -> aliases
	Positionals     map[int]Positional
	OptionList      []Option
}

var _ Node = (*StaticNode)(nil)

// Name implements Node.
func (n *StaticNode) Name() string { return n.NodeName }

// About implements Node.
func (n *StaticNode) About() string { return n.AboutText }

// SkipFirstToken implements Node.
func (n *StaticNode) SkipFirstToken() bool { return n.SkipFirst }

// Subcommands implements Node.
func (n *StaticNode) Subcommands() []Node {
	out := make([]Node, len(n.Children))
	for i, c := range n.Children {
		out[i] = c
	}
	return out
}

// FindSubcommand implements Node.
func (n *StaticNode) FindSubcommand(name string) (Node, bool) {
	for _, c := range n.Children {
		if c.NodeName == name {
			return c, true
		}
		for _, alias := range n.Aliases[c.NodeName] {
			if alias == name {
				return c, true
			}
		}
	}
	return nil, false
}

// Positional implements Node.
func (n *StaticNode) Positional(index int) (Positional, bool) {
	p, ok := n.Positionals[index]
	return p, ok
}

// Options implements Node.
func (n *StaticNode) Options() []Option {
	return n.OptionList
}

// WithHelpOption appends a conventional "--help"/"-h" option to n, matching
// the implicit help flag most CLI frameworks (including kong) install on
// every node.
func (n *StaticNode) WithHelpOption() *StaticNode {
	n.OptionList = append(n.OptionList, Option{
		LongNames:  []string{"help"},
		ShortNames: []byte{'h'},
		Help:       "Print help",
	})
	return n
}

// WithHelpSubcommand appends a conventional "help" subcommand, matching the
// auto-generated help subcommand most CLI frameworks install.
func (n *StaticNode) WithHelpSubcommand() *StaticNode {
	n.Children = append(n.Children, &StaticNode{
		NodeName:  "help",
		AboutText: "Print this message or the help of the given subcommand(s)",
	})
	return n
}
