// Package pathcomplete enumerates filesystem entries matching a partially
// typed path, filtered by a predicate (file, directory, executable, or
// everything). It is the one component that touches the filesystem, and it
// never lets an I/O error escape: best-effort completion must never
// interrupt the shell (spec §4.5/§7).
package pathcomplete

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DirReader abstracts directory listing so the completer can be driven
// against a fake filesystem in tests without touching disk.
type DirReader interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
}

// OSDirReader reads directories from the real filesystem via os.ReadDir.
type OSDirReader struct{}

// ReadDir implements DirReader.
func (OSDirReader) ReadDir(dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir)
}

// Predicate decides whether a non-directory entry qualifies. Directories
// are never gated by Predicate — they are always offered, with a trailing
// separator, so the shell can keep navigating into them.
type Predicate func(name string, info fs.FileInfo) bool

// AnyFile accepts every non-directory entry.
func AnyFile(string, fs.FileInfo) bool { return true }

// NoFile rejects every non-directory entry (used for "only directories"
// completion, where directories still show up via the unconditional
// directory branch).
func NoFile(string, fs.FileInfo) bool { return false }

// Executable accepts non-directory entries with the execute bit set for
// the current OS.
func Executable(_ string, info fs.FileInfo) bool {
	return isExecutable(info)
}

// Complete enumerates entries under cwd matching the typed prefix p,
// filtered by want. If cwd is empty, it returns nil (no completions can be
// produced without a current directory).
//
// p is split at its last path separator into an existing directory
// component and a stem; the listing is rooted at cwd joined with the
// existing component, and only entries whose name starts with stem are
// considered. Directory entries are returned with a trailing separator
// appended; other entries are returned as-is when want reports true.
// Filesystem errors at any point are swallowed and yield no completions
// for that entry.
func Complete(p string, cwd string, reader DirReader, want Predicate) []string {
	if cwd == "" {
		return nil
	}
	if reader == nil {
		reader = OSDirReader{}
	}
	if want == nil {
		want = NoFile
	}

	existing, stem := splitPath(p)
	root := cwd
	if existing != "" {
		root = filepath.Join(cwd, existing)
	}

	entries, err := reader.ReadDir(root)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, stem) {
			continue
		}

		rel := name
		if existing != "" {
			rel = filepath.Join(existing, name)
		}

		if e.IsDir() {
			out = append(out, rel+string(filepath.Separator))
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		if want(name, info) {
			out = append(out, rel)
		}
	}

	slices.Sort(out)
	return out
}

func splitPath(p string) (existing, stem string) {
	idx := strings.LastIndexByte(p, filepath.Separator)
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}
