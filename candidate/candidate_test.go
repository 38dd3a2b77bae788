package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.abhg.dev/dynacomplete/candidate"
)

func TestCandidate_DisplayFallback(t *testing.T) {
	c := candidate.New("value")
	assert.Equal(t, "value", c.Display())

	c = c.WithDisplay("Value (the label)")
	assert.Equal(t, "Value (the label)", c.Display())
	assert.Equal(t, "value", c.Value)
}

func TestCandidate_Help(t *testing.T) {
	c := candidate.New("value")
	help, ok := c.Help()
	assert.False(t, ok)
	assert.Empty(t, help)

	c = c.WithHelp("explains value")
	help, ok = c.Help()
	assert.True(t, ok)
	assert.Equal(t, "explains value", help)
}

func TestCandidate_WithHelp_Empty(t *testing.T) {
	c := candidate.New("value").WithHelp("")
	_, ok := c.Help()
	assert.False(t, ok, "empty help string should not count as present")
}

func TestCompare(t *testing.T) {
	a := candidate.New("a")
	b := candidate.New("b")
	assert.Negative(t, candidate.Compare(a, b))
	assert.Positive(t, candidate.Compare(b, a))
	assert.Zero(t, candidate.Compare(a, a))
}

func TestCompare_TiebreaksOnDisplayThenHelp(t *testing.T) {
	a := candidate.New("same").WithDisplay("a-display")
	b := candidate.New("same").WithDisplay("b-display")
	assert.Negative(t, candidate.Compare(a, b))

	c := candidate.New("same").WithDisplay("x").WithHelp("a-help")
	d := candidate.New("same").WithDisplay("x").WithHelp("b-help")
	assert.Negative(t, candidate.Compare(c, d))
}

func TestEqual(t *testing.T) {
	a := candidate.New("x").WithDisplay("X").WithHelp("help")
	b := candidate.New("x").WithDisplay("X").WithHelp("help")
	assert.True(t, candidate.Equal(a, b))

	c := candidate.New("x").WithDisplay("X").WithHelp("different")
	assert.False(t, candidate.Equal(a, c))
}

func TestSortDedup(t *testing.T) {
	items := []candidate.Candidate{
		candidate.New("charlie"),
		candidate.New("alpha"),
		candidate.New("bravo"),
		candidate.New("alpha"),
	}
	got := candidate.SortDedup(items)

	var values []string
	for _, c := range got {
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, values)
}

func TestSortDedup_Empty(t *testing.T) {
	assert.Empty(t, candidate.SortDedup(nil))
}

func TestSingleGroup(t *testing.T) {
	items := []candidate.Candidate{candidate.New("a"), candidate.New("b")}
	groups := candidate.SingleGroup(items)
	assert.Len(t, groups, 1)
	assert.Empty(t, groups[0].Name)
	assert.Equal(t, items, groups[0].Items)
}

func TestSingleGroup_Empty(t *testing.T) {
	assert.Nil(t, candidate.SingleGroup(nil))
}
