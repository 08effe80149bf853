package model

type Kind int

const (
	KindStyle = Kind(iota)
	KindMarkup
	KindScript
)

func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindMarkup:
		return "markup"
	case KindScript:
		return "script"
	default:
		return "<invalid>"
	}
}

// ComponentPattern selects the files of this kind inside components/.
func (k Kind) ComponentPattern() string {
	switch k {
	case KindStyle:
		return "*.scss"
	case KindMarkup:
		return "*.html"
	case KindScript:
		return "*.js"
	default:
		return ""
	}
}

// CommonPattern selects the files of this kind inside common/styles and
// common/scripts.
func (k Kind) CommonPattern() string {
	switch k {
	case KindStyle:
		return "*.{scss,css}"
	case KindScript:
		return "*.{js,mjs}"
	default:
		return k.ComponentPattern()
	}
}

// Marker returns the provenance comment for a fragment read from rel.
func (k Kind) Marker(rel string) string {
	switch k {
	case KindStyle:
		return "/* " + rel + " */"
	case KindMarkup:
		return "<!-- " + rel + " -->"
	case KindScript:
		return "// " + rel
	default:
		return ""
	}
}

type Scope int

const (
	ScopeCommon = Scope(iota)
	ScopeComponents
)

func (s Scope) String() string {
	if s == ScopeCommon {
		return "common"
	}
	return "components"
}

// Fragment is the content of one source file. RelPath is relative to the
// directory that was scanned, with forward slashes.
type Fragment struct {
	Kind    Kind
	RelPath string
	Text    string
}

// Annotated returns the text prefixed by its provenance marker.
func (f *Fragment) Annotated() string {
	return f.Kind.Marker(f.RelPath) + "\n" + f.Text
}

type FragmentSet struct {
	Scope     Scope
	Kind      Kind
	Fragments []*Fragment
}

func (s *FragmentSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fragments)
}

// Texts returns the annotated fragment texts in collection order.
func (s *FragmentSet) Texts() []string {
	if s == nil {
		return nil
	}
	ret := make([]string, 0, len(s.Fragments))
	for _, f := range s.Fragments {
		ret = append(ret, f.Annotated())
	}
	return ret
}
