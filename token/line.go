package token

import "github.com/buildkite/shellwords"

// SplitLine splits a raw, shell-quoted command line into words using POSIX
// shell quoting rules.
//
// This is not part of the wire protocol (hosts feeding COMP_WORDS already
// hand over pre-split words) — it exists for embedding hosts and tests that
// only have a raw line to work with, the same way the teacher's config
// loader splits a shell-quoted string with this library instead of hand
// rolling a tokenizer.
func SplitLine(line string) ([]string, error) {
	words, err := shellwords.SplitPosix(line)
	if err != nil {
		return nil, err
	}
	return words, nil
}
