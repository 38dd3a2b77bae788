package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.abhg.dev/dynacomplete/candidate"
	"go.abhg.dev/dynacomplete/shell"
)

func TestWriteBash(t *testing.T) {
	cands := []candidate.Candidate{candidate.New("foo"), candidate.New("bar")}

	var buf strings.Builder
	require.NoError(t, shell.WriteBash(&buf, cands, ""))
	assert.Equal(t, "foo\nbar", buf.String())

	buf.Reset()
	require.NoError(t, shell.WriteBash(&buf, cands, "\013"))
	assert.Equal(t, "foo\013bar", buf.String())
}

func TestSuppressSpace(t *testing.T) {
	assert.True(t, shell.SuppressSpace([]candidate.Candidate{candidate.New("src/")}))
	assert.True(t, shell.SuppressSpace([]candidate.Candidate{candidate.New("--format=")}))
	assert.False(t, shell.SuppressSpace([]candidate.Candidate{candidate.New("status")}))
	assert.False(t, shell.SuppressSpace(nil))
}

func TestWriteZsh(t *testing.T) {
	groups := []candidate.Group{
		{
			Name: "subcommands",
			Items: []candidate.Candidate{
				candidate.New("status").WithHelp("Show status"),
				candidate.New("stage"),
			},
		},
	}

	var buf strings.Builder
	require.NoError(t, shell.WriteZsh(&buf, groups))
	want := "subcommands\nstatus\nstatus\t--- Show status\nstage\nstage\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFish(t *testing.T) {
	cands := []candidate.Candidate{
		candidate.New("status").WithHelp("Show status"),
		candidate.New("stage"),
	}

	var buf strings.Builder
	require.NoError(t, shell.WriteFish(&buf, cands))
	assert.Equal(t, "status\tShow status\nstage\t\n", buf.String())
}
