package dynacli

import (
	"fmt"
	"io"
	"os"
)

// openOutput resolves the --output flag per spec §4.7: "-" or empty means
// stdout (not closed by the caller); an existing directory is rejected as
// invalid-argument; anything else is truncated and (re)created.
func openOutput(path string, stdout io.Writer) (w io.Writer, closeFn func() error, err error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}

	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return nil, nil, fmt.Errorf("%w: output %q is a directory", ErrInvalidArgument, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
