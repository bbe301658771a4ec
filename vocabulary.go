package jsonskema

// shape says where a keyword keeps nested subschemas.
type shape int

const (
	shapeNone          shape = iota
	shapeSingle              // "not": {...}
	shapeArray               // "allOf": [{...}, ...]
	shapeMap                 // "properties": {"a": {...}}
	shapeSingleOrArray       // "items" before 2020-12
	shapeDependencies        // "dependencies": {"a": ["b"] | {...}}
)

// compileFunc turns the raw value of one keyword into its compiled form. A nil
// keyword with a nil error means the keyword has nothing to evaluate (for
// example "$id" or "then", which "if" evaluates).
type compileFunc func(cc *compileCtx, v any) (keyword, error)

type keywordSpec struct {
	name    string
	shape   shape
	compile compileFunc
	// late keywords see the annotations of every sibling, so they run after
	// all of them.
	late bool
}

// vocabulary is the keyword table of one draft. Tables are independent per
// draft; shared compile functions take their draft differences from the
// vocabulary flags.
type vocabulary struct {
	draft      Draft
	metaSchema string
	// idKey is "id" in Draft 4 and "$id" afterwards.
	idKey string
	// refOverrides: "$ref" makes every sibling keyword inert (Draft 4/6/7).
	refOverrides bool
	// idAnchors: an identifier of the form "#name" declares an anchor (Draft 4/6/7).
	idAnchors bool
	// booleanSchemas: true and false are schemas (every draft but Draft 4).
	booleanSchemas bool
	// unknownAnnotations: unknown keywords are collected as annotations.
	unknownAnnotations bool
	formatAssertion    bool
	keywords           []keywordSpec
	index              map[string]int
}

func newVocabulary(v vocabulary, specs ...keywordSpec) *vocabulary {
	v.keywords = specs
	v.index = make(map[string]int, len(specs))
	for i, s := range specs {
		v.index[s.name] = i
	}
	return &v
}

// lookup returns the descriptor of key in this draft. Unknown keys report false
// and are never an error.
func (v *vocabulary) lookup(key string) (keywordSpec, bool) {
	i, ok := v.index[key]
	if !ok {
		return keywordSpec{}, false
	}
	return v.keywords[i], true
}

func (v *vocabulary) atLeast(d Draft) bool { return v.draft >= d }

// helpers for the draft tables

func kw(name string, c compileFunc) keywordSpec { return keywordSpec{name: name, compile: c} }

func sub(name string, s shape, c compileFunc) keywordSpec {
	return keywordSpec{name: name, shape: s, compile: c}
}

func late(name string, c compileFunc) keywordSpec {
	return keywordSpec{name: name, shape: shapeSingle, compile: c, late: true}
}

// inert marks a keyword the draft knows but never evaluates on its own.
func inert(name string) keywordSpec { return keywordSpec{name: name} }

func inertSub(name string, s shape) keywordSpec { return keywordSpec{name: name, shape: s} }
