/*
Unlike the rest of the code in this module, this file is made available
under the BSD 3-Clause License so that it can be copied into other
projects, matching the license the traversal it is adapted from ships
under.
------------------------------------------------------------------------------
BSD 3-Clause License

Copyright (c) 2024, Abhinav Gupta (https://abhinavg.net/)

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package cmdtree

import (
	"strings"

	"github.com/alecthomas/kong"
)

// KongNode adapts a *kong.Node (or the root *kong.Kong, via FromKong) to
// Node. Its traversal of flags, aliases, and negation mirrors
// internal/komplete's kongPredictor/matchFlag, rewritten against this
// package's Node/Option contract instead of posener/complete.Predictor.
type KongNode struct {
	node       *kong.Node
	skipFirst  bool
	helpOption bool
	helpSub    bool
}

var _ Node = (*KongNode)(nil)

// FromKong builds the root Node for a parsed kong grammar. skipFirst should
// be true unless the host is a multicall binary whose first word is itself
// a subcommand key.
func FromKong(k *kong.Kong, skipFirst bool) *KongNode {
	return &KongNode{node: k.Model.Node, skipFirst: skipFirst, helpOption: true, helpSub: true}
}

func (n *KongNode) child(c *kong.Node) *KongNode {
	return &KongNode{node: c, helpOption: n.helpOption, helpSub: n.helpSub}
}

// Name implements Node.
func (n *KongNode) Name() string { return n.node.Name }

// About implements Node.
func (n *KongNode) About() string { return n.node.Help }

// SkipFirstToken implements Node.
func (n *KongNode) SkipFirstToken() bool { return n.skipFirst }

// Subcommands implements Node.
func (n *KongNode) Subcommands() []Node {
	var out []Node
	for _, c := range n.node.Children {
		if c.Type != kong.CommandNode || c.Hidden {
			continue
		}
		out = append(out, n.child(c))
	}
	if n.helpSub {
		out = append(out, &StaticNode{
			NodeName:  "help",
			AboutText: "Print this message or the help of the given subcommand(s)",
		})
	}
	return out
}

// FindSubcommand implements Node.
func (n *KongNode) FindSubcommand(name string) (Node, bool) {
	for _, c := range n.node.Children {
		if c.Type != kong.CommandNode || c.Hidden {
			continue
		}
		if c.Name == name {
			return n.child(c), true
		}
		for _, alias := range c.Aliases {
			if alias == name {
				return n.child(c), true
			}
		}
	}
	if n.helpSub && name == "help" {
		return &StaticNode{NodeName: "help"}, true
	}
	return nil, false
}

// Positional implements Node.
func (n *KongNode) Positional(index int) (Positional, bool) {
	// kong.Node.Positional is 0-indexed; our contract is 1-based.
	i := index - 1
	if i < 0 || i >= len(n.node.Positional) {
		return Positional{}, false
	}
	return valuePositional(n.node.Positional[i]), true
}

// Options implements Node.
func (n *KongNode) Options() []Option {
	opts := make([]Option, 0, len(n.node.Flags)+1)
	haveHelp := false
	for _, f := range n.node.Flags {
		if f.Hidden {
			continue
		}
		if f.Name == "help" {
			haveHelp = true
		}
		opts = append(opts, flagOption(f))
	}
	// Synthesize --help/-h on every node whose own Flags don't already
	// carry a "help" flag (kong lists its help flag on the root node only).
	// n.helpOption is always true for nodes built by FromKong.
	if n.helpOption && !haveHelp {
		opts = append(opts, Option{
			LongNames:  []string{"help"},
			ShortNames: []byte{'h'},
			Help:       "Print help",
		})
	}
	return opts
}

func flagOption(f *kong.Flag) Option {
	longs := append([]string{f.Name}, f.Aliases...)
	if f.Tag.Negatable {
		longs = append(longs, "no-"+f.Name)
	}

	var shorts []byte
	if f.Short != 0 {
		shorts = append(shorts, byte(f.Short))
	}

	opt := Option{
		LongNames:  longs,
		ShortNames: shorts,
		Help:       f.Help,
		Hint:       valueHint(f.Value),
		Possible:   possibleValues(f.Value),
	}
	return opt
}

func valuePositional(v *kong.Value) Positional {
	return Positional{
		Hint:     valueHint(v),
		Possible: possibleValues(v),
	}
}

func valueHint(v *kong.Value) ValueHint {
	if v == nil {
		return HintNone
	}
	if hint := v.Tag.Get("hint"); hint != "" {
		return ValueHint(hint)
	}
	return HintNone
}

func possibleValues(v *kong.Value) []PossibleValue {
	if v == nil || v.Enum == "" {
		return nil
	}
	names := v.EnumSlice()
	out := make([]PossibleValue, len(names))
	for i, name := range names {
		out[i] = PossibleValue{Name: strings.TrimSpace(name)}
	}
	return out
}
