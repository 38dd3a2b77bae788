package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.abhg.dev/dynacomplete/token"
)

func TestParsed_Predicates(t *testing.T) {
	assert.True(t, token.Parse("").IsEmpty())
	assert.True(t, token.Parse("-").IsStdio())
	assert.True(t, token.Parse("--").IsEscape())

	_, _, _, ok := token.Parse("--").AsLong()
	assert.False(t, ok, "bare -- is the escape sentinel, not a long option")

	_, ok = token.Parse("-").AsShort()
	assert.False(t, ok, "bare - is the stdio sentinel, not a short cluster")
}

func TestParsed_AsLong(t *testing.T) {
	tests := []struct {
		raw      string
		name     string
		value    string
		hasValue bool
		ok       bool
	}{
		{raw: "--verbose", name: "verbose", ok: true},
		{raw: "--format=json", name: "format", value: "json", hasValue: true, ok: true},
		{raw: "--format=", name: "format", value: "", hasValue: true, ok: true},
		{raw: "-v", ok: false},
		{raw: "value", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, value, hasValue, ok := token.Parse(tt.raw).AsLong()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.name, name)
				assert.Equal(t, tt.value, value)
				assert.Equal(t, tt.hasValue, hasValue)
			}
		})
	}
}

func TestParsed_AsShort(t *testing.T) {
	tests := []struct {
		raw     string
		cluster string
		ok      bool
	}{
		{raw: "-abc", cluster: "-abc", ok: true},
		{raw: "-v", cluster: "-v", ok: true},
		{raw: "-", ok: false},
		{raw: "--verbose", ok: false},
		{raw: "", ok: false},
		{raw: "value", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cluster, ok := token.Parse(tt.raw).AsShort()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.cluster, cluster)
			}
		})
	}
}

func TestParsed_Value(t *testing.T) {
	assert.Equal(t, "--format=json", token.Parse("--format=json").Value())
}

func TestStream(t *testing.T) {
	s := token.NewStream([]string{"app", "stage", "--verbose", "file.txt"})

	tok, idx, ok := s.Next()
	require := assert.New(t)
	require.True(ok)
	require.Equal(0, idx)
	require.Equal("app", tok.Value())

	tok, idx, ok = s.Next()
	require.True(ok)
	require.Equal(1, idx)
	require.Equal("stage", tok.Value())

	tok, idx, ok = s.Next()
	require.True(ok)
	require.Equal(2, idx)
	name, _, _, ok2 := tok.AsLong()
	require.True(ok2)
	require.Equal("verbose", name)

	_, idx, ok = s.Next()
	require.True(ok)
	require.Equal(3, idx)

	_, _, ok = s.Next()
	require.False(ok, "stream exhausted")
}

func TestStream_Advance(t *testing.T) {
	s := token.NewStream([]string{"app", "stage"})
	s.Advance()

	tok, idx, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "stage", tok.Value())
}

func TestStream_AdvancePastEnd(t *testing.T) {
	s := token.NewStream(nil)
	s.Advance()
	_, _, ok := s.Next()
	assert.False(t, ok)
}
