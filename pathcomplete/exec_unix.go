//go:build !windows

package pathcomplete

import "io/fs"

// isExecutable reports whether info's permission bits include any execute
// bit (owner, group, or other).
func isExecutable(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}
