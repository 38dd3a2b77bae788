package shell

import (
	"go/token"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"go.abhg.dev/dynacomplete/internal/must"
)

// EscapeName turns a command name into the identifier the registration
// templates splice into shell function/array names: hyphens become
// underscores, and the result must already be (or become) a valid
// identifier — host names with any other punctuation are a programming
// fault, not a user input error, so this panics rather than erroring.
func EscapeName(name string) string {
	escaped := strings.ReplaceAll(name, "-", "_")
	must.Bef(token.IsIdentifier(escaped), "shell: command name %q must escape to a valid identifier, got %q", name, escaped)
	return escaped
}

// quoteExecutables shell-quotes and space-joins a list of executable
// names/paths, the EXECUTABLES substitution key.
func quoteExecutables(executables []string) string {
	quoted := make([]string, len(executables))
	for i, e := range executables {
		quoted[i] = shellescape.Quote(e)
	}
	return strings.Join(quoted, " ")
}

const bashTemplate = `
_dynacomplete_NAME() {
    local IFS=$'\013'
    local SUPPRESS_SPACE=0
    if compopt +o nospace 2> /dev/null; then
        SUPPRESS_SPACE=1
    fi
    if [[ ${SUPPRESS_SPACE} == 1 ]]; then
        SPACE_ARG="--no-space"
    else
        SPACE_ARG="--space"
    fi
    COMPREPLY=( $("COMPLETER" complete bash --index ${COMP_CWORD} --type ${COMP_TYPE} ${SPACE_ARG} --ifs="$IFS" -- "${COMP_WORDS[@]}") )
    if [[ $? != 0 ]]; then
        unset COMPREPLY
    elif [[ $SUPPRESS_SPACE == 1 ]] && [[ "${COMPREPLY-}" =~ [=/:]$ ]]; then
        compopt -o nospace
    fi
}
complete OPTIONS -F _dynacomplete_NAME EXECUTABLES
`

// RegisterBash renders the bash registration function for name, invoked
// for each of executables, shelling out to completer, with behavior
// controlling the installed compopt options.
func RegisterBash(w io.Writer, name string, executables []string, completer string, behavior Behavior) error {
	escaped := EscapeName(name)
	script := strings.NewReplacer(
		"NAME", escaped,
		"EXECUTABLES", quoteExecutables(executables),
		"OPTIONS", behavior.CompoptOptions(),
		"COMPLETER", shellescape.Quote(completer),
		"UPPER", strings.ToUpper(escaped),
	).Replace(bashTemplate)
	_, err := io.WriteString(w, script)
	return err
}

const zshTemplate = `
#compdef NAME

_dynacomplete_NAME() {
    local -a groups
    local -a lines
    IFS=$'\n' lines=($("COMPLETER" complete zsh --index ${CURRENT} -- "${words[@]}"))
    local name values descs
    local i=1
    while (( i <= ${#lines[@]} )); do
        name=${lines[i]}
        ((i++))
        values=()
        descs=()
        while (( i < ${#lines[@]} )) && [[ -n ${lines[i]} ]]; do
            values+=("${lines[i]}")
            ((i++))
            descs+=("${lines[i]}")
            ((i++))
        done
        ((i++))
        if (( ${#values[@]} )); then
            compadd -J "$name" -X "$name" -d descs -a values
        fi
    done
}

compdef _dynacomplete_NAME NAME
`

// RegisterZsh renders the zsh registration function for name.
func RegisterZsh(w io.Writer, name string, executables []string, completer string) error {
	escaped := EscapeName(name)
	script := strings.NewReplacer(
		"NAME", escaped,
		"EXECUTABLES", quoteExecutables(executables),
		"COMPLETER", shellescape.Quote(completer),
		"UPPER", strings.ToUpper(escaped),
	).Replace(zshTemplate)
	_, err := io.WriteString(w, script)
	return err
}

const fishTemplate = `
function __dynacomplete_NAME
    set -l words (commandline -opc)
    set -l current (commandline -ct)
    set -l index (count $words)
    "COMPLETER" complete fish --index $index -- $words "$current"
end

complete -c EXECUTABLES -f -a '(__dynacomplete_NAME)'
`

// RegisterFish renders the fish registration function for name.
func RegisterFish(w io.Writer, name string, executables []string, completer string) error {
	escaped := EscapeName(name)
	script := strings.NewReplacer(
		"NAME", escaped,
		"EXECUTABLES", quoteExecutables(executables),
		"COMPLETER", shellescape.Quote(completer),
		"UPPER", strings.ToUpper(escaped),
	).Replace(fishTemplate)
	_, err := io.WriteString(w, script)
	return err
}
