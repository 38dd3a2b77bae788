// Package dynacli mounts the completion engine into a host Kong CLI as two
// subcommands: "complete" (hidden — invoked by the generated shell stub on
// every keystroke) and "generate" (invoked once by the user to install the
// stub).
package dynacli

import (
	"errors"

	"go.abhg.dev/dynacomplete/internal/text"
)

// ErrInvalidArgument is returned for host-detectable misuse of the
// dispatcher's own flags (currently: --output naming an existing
// directory). It is distinct from engine.ErrNoCompletion, which reports a
// request the engine itself can't satisfy.
var ErrInvalidArgument = errors.New("dynacli: invalid argument")

// Command is the root of the mounted subcommand pair. Embed it, flattened,
// in the host's CLI struct so "complete" and "generate" appear as its own
// top-level subcommands (the registration templates invoke "COMPLETER
// complete <shell> ..." directly, with no extra path component):
//
//	type CLI struct {
//		// ... host commands ...
//		dynacli.Command `embed:""`
//	}
//
// Run methods on the leaf shell commands expect a [cmdtree.Node], an
// [*engine.Engine], and a [*silog.Logger] to be bound into the
// [kong.Context] before Run, since the tree wraps the very Kong parser the
// host constructs it from — a self-reference Bind's constructor-time
// kong.Option can't express, so the binding happens after Parse instead:
//
//	parser, _ := kong.New(&cli)
//	kctx, _ := parser.Parse(os.Args[1:])
//	kctx.BindTo(cmdtree.FromKong(parser, true), (*cmdtree.Node)(nil))
//	kctx.Bind(&engine.Engine{}, silog.Nop())
//	err := kctx.Run()
type Command struct {
	Complete completeCmd `cmd:"" hidden:"" help:"Serve a shell completion request."`
	Generate generateCmd `cmd:"" help:"Print a shell completion registration script."`
}

type completeCmd struct {
	Bash completeBashCmd `cmd:"" help:"Complete for bash."`
	Zsh  completeZshCmd  `cmd:"" help:"Complete for zsh."`
	Fish completeFishCmd `cmd:"" help:"Complete for fish."`
}

// Help is shown for `<host> complete --help`; the command itself is hidden
// since it is meant to be invoked by a registration script, not by hand.
func (c *completeCmd) Help() string {
	return text.Dedent(`
		Serve a single shell completion request.

		This is invoked by the registration script installed with
		"generate", once per keystroke, with the in-progress command
		line on its argument list. It is not meant to be run by hand.
	`)
}

type generateCmd struct {
	Bash generateBashCmd `cmd:"" help:"Generate a bash registration script."`
	Zsh  generateZshCmd  `cmd:"" help:"Generate a zsh registration script."`
	Fish generateFishCmd `cmd:"" help:"Generate a fish registration script."`
}

// Help is shown for `<host> generate --help`.
func (c *generateCmd) Help() string {
	return text.Dedent(`
		Print a shell completion registration script.

		Append the output to your shell's rc file:

			# bash
			myapp generate bash >> ~/.bashrc

			# zsh
			myapp generate zsh >> ~/.zshrc

			# fish
			myapp generate fish >> ~/.config/fish/config.fish
	`)
}
