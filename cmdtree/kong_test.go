package cmdtree_test

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.abhg.dev/dynacomplete/cmdtree"
)

type kongFixtureCLI struct {
	Stage  kongStageCmd  `cmd:"" aliases:"st" help:"Stage a change."`
	Hidden kongHiddenCmd `cmd:"" hidden:"" help:"Internal only."`
}

type kongStageCmd struct {
	Format  string `name:"format" enum:"json,yaml" default:"json" help:"Output format."`
	Verbose bool   `name:"verbose" short:"v" negatable:"" help:"Be verbose."`
	File    string `arg:"" optional:"" help:"File to stage." hint:"file-path"`
}

func (*kongStageCmd) Run() error { return nil }

type kongHiddenCmd struct{}

func (*kongHiddenCmd) Run() error { return nil }

func newKongFixture(t *testing.T) *kong.Kong {
	t.Helper()
	var cli kongFixtureCLI
	k, err := kong.New(&cli, kong.Name("fixture"))
	require.NoError(t, err)
	return k
}

func TestFromKong_Subcommands(t *testing.T) {
	root := cmdtree.FromKong(newKongFixture(t), true)

	var names []string
	for _, c := range root.Subcommands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"stage", "help"}, names, "hidden commands are omitted, help is synthesized")
}

func TestFromKong_FindSubcommand(t *testing.T) {
	root := cmdtree.FromKong(newKongFixture(t), true)

	stage, ok := root.FindSubcommand("stage")
	require.True(t, ok)
	assert.Equal(t, "stage", stage.Name())

	stage, ok = root.FindSubcommand("st")
	require.True(t, ok, "alias should resolve")
	assert.Equal(t, "stage", stage.Name())

	_, ok = root.FindSubcommand("hidden")
	assert.False(t, ok, "hidden commands are not discoverable by name either")

	_, ok = root.FindSubcommand("help")
	assert.True(t, ok)
}

func TestFromKong_Options(t *testing.T) {
	root := cmdtree.FromKong(newKongFixture(t), true)
	stage, ok := root.FindSubcommand("stage")
	require.True(t, ok)

	opts := stage.Options()

	var verbose, format *cmdtree.Option
	for i := range opts {
		switch opts[i].LongNames[0] {
		case "verbose":
			verbose = &opts[i]
		case "format":
			format = &opts[i]
		}
	}

	require.NotNil(t, verbose)
	assert.Equal(t, []byte{'v'}, verbose.ShortNames)
	assert.Contains(t, verbose.LongNames, "no-verbose", "negatable flags expose their negated spelling")

	require.NotNil(t, format)
	require.Len(t, format.Possible, 2)
	assert.Equal(t, "json", format.Possible[0].Name)
	assert.Equal(t, "yaml", format.Possible[1].Name)

	var sawHelp bool
	for _, o := range opts {
		if o.LongNames[0] == "help" {
			sawHelp = true
		}
	}
	assert.True(t, sawHelp, "the implicit --help option is included")
}

func TestFromKong_Positional(t *testing.T) {
	root := cmdtree.FromKong(newKongFixture(t), true)
	stage, ok := root.FindSubcommand("stage")
	require.True(t, ok)

	pos, ok := stage.Positional(1)
	require.True(t, ok)
	assert.Equal(t, cmdtree.HintFilePath, pos.Hint)

	_, ok = stage.Positional(2)
	assert.False(t, ok)
}
