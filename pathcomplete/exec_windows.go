//go:build windows

package pathcomplete

import (
	"io/fs"
	"strings"
)

// windowsExecExts mirrors the subset of %PATHEXT% shells actually probe for
// tab completion purposes.
var windowsExecExts = []string{".exe", ".bat", ".cmd", ".com"}

// isExecutable reports whether info's name carries an executable extension;
// Windows has no POSIX execute bit to inspect.
func isExecutable(info fs.FileInfo) bool {
	name := strings.ToLower(info.Name())
	for _, ext := range windowsExecExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
