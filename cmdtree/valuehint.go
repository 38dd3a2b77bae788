package cmdtree

import "go.abhg.dev/dynacomplete/pathcomplete"

// PathPolicy maps a value hint to a path-completion predicate, per §4.4's
// table. ok is false for hints that never complete to paths at all
// (command-name, username, url, ... and the explicit "other" opt-out); in
// that case the engine must not call pathcomplete.Complete, since even its
// always-reject predicate would still surface directories for navigation.
func (h ValueHint) PathPolicy() (predicate pathcomplete.Predicate, ok bool) {
	switch h {
	case HintNone, HintAnyPath:
		return pathcomplete.AnyFile, true
	case HintFilePath:
		return pathcomplete.AnyFile, true
	case HintDirPath:
		return pathcomplete.NoFile, true
	case HintExecPath:
		return pathcomplete.Executable, true
	default: // other, command-name, command-string, command-with-args,
		// username, hostname, url, email: no implementation.
		return nil, false
	}
}
