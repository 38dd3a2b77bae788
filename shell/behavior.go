package shell

// Behavior selects bash's post-registration compopt behavior (spec §4.6).
type Behavior struct {
	kind   behaviorKind
	custom string
}

type behaviorKind int

const (
	behaviorReadline behaviorKind = iota
	behaviorMinimal
	behaviorCustom
)

// BehaviorMinimal disables bash's readline fallback entirely.
var BehaviorMinimal = Behavior{kind: behaviorMinimal}

// BehaviorReadline falls back to readline's default completion (file
// paths) when dynacomplete produces no matches. This is the default.
var BehaviorReadline = Behavior{kind: behaviorReadline}

// BehaviorCustom passes opts verbatim as bash's compopt option string.
func BehaviorCustom(opts string) Behavior {
	return Behavior{kind: behaviorCustom, custom: opts}
}

// ParseBehavior recognizes "minimal" and "readline" by name; any other
// string becomes a custom compopt option string, verbatim.
func ParseBehavior(s string) Behavior {
	switch s {
	case "minimal":
		return BehaviorMinimal
	case "readline":
		return BehaviorReadline
	default:
		return BehaviorCustom(s)
	}
}

// CompoptOptions returns the compopt option string this behavior installs
// in the generated registration function.
func (b Behavior) CompoptOptions() string {
	switch b.kind {
	case behaviorMinimal:
		return "-o nospace -o bashdefault"
	case behaviorCustom:
		return b.custom
	default:
		return "-o nospace -o default -o bashdefault"
	}
}
