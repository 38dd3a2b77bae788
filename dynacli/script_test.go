package dynacli_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rogpeppe/go-internal/testscript"

	"go.abhg.dev/dynacomplete/cmdtree"
	"go.abhg.dev/dynacomplete/dynacli"
	"go.abhg.dev/dynacomplete/engine"
	"go.abhg.dev/log/silog"
)

// testHostCLI is a stand-in host CLI, just large enough to drive
// dynacli.Command through a real kong grammar: one ordinary subcommand
// ("stage", with a flag and a file-path positional) plus the mounted
// completion pair.
type testHostCLI struct {
	Stage struct {
		Verbose bool   `short:"v" help:"Be verbose."`
		File    string `arg:"" optional:"" help:"File to stage." hint:"file-path"`
	} `cmd:"" help:"Stage a file."`

	Status struct{} `cmd:"" help:"Show status."`

	dynacli.Command `embed:""`
}

func runTestHost() int {
	var cli testHostCLI
	parser, err := kong.New(&cli, kong.Name("testhost"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	kctx.BindTo(cmdtree.FromKong(parser, true), (*cmdtree.Node)(nil))
	kctx.Bind(&engine.Engine{}, silog.Nop())

	if err := kctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func TestMain(m *testing.M) {
	testscript.RunMain(m, map[string]func() int{
		"testhost": runTestHost,
	})
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
	})
}
