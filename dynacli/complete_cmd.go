package dynacli

import (
	"os"

	"github.com/alecthomas/kong"

	"go.abhg.dev/dynacomplete/candidate"
	"go.abhg.dev/dynacomplete/cmdtree"
	"go.abhg.dev/dynacomplete/engine"
	"go.abhg.dev/dynacomplete/internal/logfmt"
	"go.abhg.dev/dynacomplete/internal/must"
	"go.abhg.dev/dynacomplete/shell"
	"go.abhg.dev/log/silog"
)

type completeBashCmd struct {
	Index   int      `required:"" help:"0-based index into the word list of the word being completed."`
	Type    string   `name:"type" default:"normal" help:"The COMP_TYPE that triggered this request."`
	Space   bool     `xor:"space" help:"Let bash insert a trailing space after the sole completion."`
	NoSpace bool     `name:"no-space" xor:"space" help:"Suppress bash's trailing space after the sole completion."`
	IFS     string   `name:"ifs" help:"Field separator to join candidate values with (default newline)."`
	Words   []string `arg:"" optional:"" help:"The command line being completed."`
}

func (cmd *completeBashCmd) Run(kctx *kong.Context, root cmdtree.Node, eng *engine.Engine, log *silog.Logger) error {
	must.Bef(!(cmd.Space && cmd.NoSpace), "dynacli: --space and --no-space are mutually exclusive")
	log = log.Clone()
	compType := shell.ParseCompType(cmd.Type)
	log.Debug("bash completion request",
		"index", cmd.Index,
		"type", compType,
		logfmt.NonZero("ifs", logfmt.MaybeQuote(cmd.IFS)),
	)

	cwd, _ := os.Getwd()
	cands, err := eng.Complete(root, cmd.Words, cmd.Index, cwd)
	if err != nil {
		log.Debug("no completion", "error", err)
		return err
	}
	return shell.WriteBash(kctx.Stdout, cands, cmd.IFS)
}

type completeZshCmd struct {
	Index int      `required:"" help:"0-based index into the word list of the word being completed."`
	Words []string `arg:"" optional:"" help:"The command line being completed."`
}

func (cmd *completeZshCmd) Run(kctx *kong.Context, root cmdtree.Node, eng *engine.Engine) error {
	cwd, _ := os.Getwd()
	cands, err := eng.Complete(root, cmd.Words, cmd.Index, cwd)
	if err != nil {
		return err
	}
	return shell.WriteZsh(kctx.Stdout, candidate.SingleGroup(cands))
}

type completeFishCmd struct {
	Index int      `required:"" help:"0-based index into the word list of the word being completed."`
	Words []string `arg:"" optional:"" help:"The command line being completed."`
}

func (cmd *completeFishCmd) Run(kctx *kong.Context, root cmdtree.Node, eng *engine.Engine) error {
	cwd, _ := os.Getwd()
	cands, err := eng.Complete(root, cmd.Words, cmd.Index, cwd)
	if err != nil {
		return err
	}
	return shell.WriteFish(kctx.Stdout, cands)
}
