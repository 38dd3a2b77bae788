package shell

import "fmt"

// CompType is bash's COMP_TYPE: the kind of completion attempt that
// triggered the completion function, used to decide how aggressively to
// list alternatives (spec §4.6). dynacomplete never branches on it itself
// — it is threaded through to keep the wire protocol compatible with
// bash's readline, which does.
type CompType int

// The recognized comp-types, keyed by both their readline numeric code and
// their textual alias.
const (
	CompNormal       CompType = 9  // TAB
	CompSuccessive   CompType = 63 // ?
	CompAlternatives CompType = 33 // !
	CompUnmodified   CompType = 64 // @
	CompMenu         CompType = 37 // %
)

var compTypeAliases = map[string]CompType{
	"normal":       CompNormal,
	"successive":   CompSuccessive,
	"alternatives": CompAlternatives,
	"unmodified":   CompUnmodified,
	"menu":         CompMenu,
}

var compTypeCodes = map[int]CompType{
	9:  CompNormal,
	63: CompSuccessive,
	33: CompAlternatives,
	64: CompUnmodified,
	37: CompMenu,
}

// ParseCompType parses a comp-type from either its textual alias
// ("normal", "successive", ...) or its readline numeric code ("9", "63",
// ...). Unrecognized input defaults to CompNormal per spec, matching
// bash's own behavior of falling back to normal completion for an
// unexpected COMP_TYPE.
func ParseCompType(s string) CompType {
	if ct, ok := compTypeAliases[s]; ok {
		return ct
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
		if ct, ok := compTypeCodes[n]; ok {
			return ct
		}
	}
	return CompNormal
}

// String returns the textual alias for t.
func (t CompType) String() string {
	switch t {
	case CompSuccessive:
		return "successive"
	case CompAlternatives:
		return "alternatives"
	case CompUnmodified:
		return "unmodified"
	case CompMenu:
		return "menu"
	default:
		return "normal"
	}
}
