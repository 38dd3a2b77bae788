package dynacli

import (
	"os"

	"github.com/alecthomas/kong"

	"go.abhg.dev/dynacomplete/shell"
)

// osExecutable is a package-level indirection over [os.Executable] so
// tests can stub it with internal/stub rather than depending on the
// test binary's own path.
var osExecutable = os.Executable

type generateBashCmd struct {
	Behavior string `default:"readline" help:"Bash compopt behavior: minimal, readline, or a literal compopt option string."`
	Output   string `name:"output" short:"o" help:"Write the registration script here instead of stdout."`
}

func (cmd *generateBashCmd) Run(kctx *kong.Context) error {
	exe, err := osExecutable()
	if err != nil {
		return err
	}
	name := kctx.Model.Name

	w, closeFn, err := openOutput(cmd.Output, kctx.Stdout)
	if err != nil {
		return err
	}
	defer closeFn()

	return shell.RegisterBash(w, name, []string{name}, exe, shell.ParseBehavior(cmd.Behavior))
}

type generateZshCmd struct {
	Output string `name:"output" short:"o" help:"Write the registration script here instead of stdout."`
}

func (cmd *generateZshCmd) Run(kctx *kong.Context) error {
	exe, err := osExecutable()
	if err != nil {
		return err
	}
	name := kctx.Model.Name

	w, closeFn, err := openOutput(cmd.Output, kctx.Stdout)
	if err != nil {
		return err
	}
	defer closeFn()

	return shell.RegisterZsh(w, name, []string{name}, exe)
}

type generateFishCmd struct {
	Output string `name:"output" short:"o" help:"Write the registration script here instead of stdout."`
}

func (cmd *generateFishCmd) Run(kctx *kong.Context) error {
	exe, err := osExecutable()
	if err != nil {
		return err
	}
	name := kctx.Model.Name

	w, closeFn, err := openOutput(cmd.Output, kctx.Stdout)
	if err != nil {
		return err
	}
	defer closeFn()

	return shell.RegisterFish(w, name, []string{name}, exe)
}
