package jsonskema

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/reoring/jsonskema/internal/jsonpointer"
	"github.com/reoring/jsonskema/internal/value"
)

// document is one schema document taking part in a compilation: the root
// schema or a document returned by the resolver.
type document struct {
	url       string
	raw       any
	resources []*resource
}

// enclosing returns the innermost resource containing ptr.
func (d *document) enclosing(ptr string) *resource {
	var best *resource
	for _, r := range d.resources {
		if jsonpointer.HasPrefix(ptr, r.ptr) && (best == nil || len(r.ptr) > len(best.ptr)) {
			best = r
		}
	}
	return best
}

// resource is a schema resource: a document root or an embedded schema with
// its own identifier. Its vocabulary applies to every schema it encloses.
type resource struct {
	id              string
	doc             *document
	ptr             string
	vocab           *vocabulary
	anchors         map[string]string // name -> pointer within doc
	dynamicAnchors  map[string]string
	recursiveAnchor bool
	index           int
}

// location renders ptr as a URI relative to this resource.
func (r *resource) location(ptr string) string {
	if r.id == "" {
		return ""
	}
	return r.id + "#" + strings.TrimPrefix(ptr, r.ptr)
}

type compileOptions struct {
	draft           Draft
	baseURI         string
	keywords        map[string]KeywordFactory
	formats         map[string]Format
	formatAssertion *bool
}

type compiler struct {
	opts      compileOptions
	g         *graph
	fetch     fetcher
	diag      *Diag
	docs      map[string]*document
	resources map[string]*resource
	resList   []*resource
	nodes     map[string]nodeID
	dynamic   bool
}

// compile builds the graph of schema. All-or-nothing: on error no graph
// escapes.
func compile(schema any, opts compileOptions, f fetcher) (*Validator, error) {
	base, _, err := resolveURI("", opts.baseURI)
	if err != nil {
		return nil, &BuildError{Kind: ErrInvalidSchema, Msg: "invalid base URI", Err: err}
	}
	c := &compiler{
		opts:      opts,
		g:         &graph{},
		fetch:     f,
		diag:      &Diag{},
		docs:      map[string]*document{},
		resources: map[string]*resource{},
		nodes:     map[string]nodeID{},
	}
	d := opts.draft
	if d == DraftAutodetect {
		var ok bool
		if d, ok = declaredDraft(schema); !ok {
			if obj, isObj := schema.(map[string]any); isObj {
				if s, isStr := obj["$schema"].(string); isStr {
					c.diag.warnf("unknown $schema %q, using %s", s, DraftLatest)
				}
			}
			d = DraftLatest
		}
	}
	doc, err := c.addDocument(base, schema, d.vocabulary())
	if err != nil {
		return nil, err
	}
	root, err := c.compileAt(doc, "")
	if err != nil {
		return nil, err
	}
	if err := c.compileDynamicScopes(); err != nil {
		return nil, err
	}
	return &Validator{g: c.g, root: root, draft: d, diag: *c.diag}, nil
}

// addDocument indexes identifiers and anchors of a new document, then hints the
// fetcher with the external documents it references.
func (c *compiler) addDocument(url string, raw any, vocab *vocabulary) (*document, error) {
	doc := &document{url: url, raw: raw}
	c.docs[url] = doc
	root := c.newResource(url, doc, "", vocab)
	var refs []string
	if err := c.walk(doc, "", raw, root, &refs); err != nil {
		return nil, err
	}
	pending := refs[:0]
	for _, u := range refs {
		if _, ok := c.resources[u]; !ok {
			pending = append(pending, u)
		}
	}
	c.fetch.prefetch(pending)
	return doc, nil
}

func (c *compiler) newResource(id string, doc *document, ptr string, vocab *vocabulary) *resource {
	r := &resource{
		id:             id,
		doc:            doc,
		ptr:            ptr,
		vocab:          vocab,
		anchors:        map[string]string{},
		dynamicAnchors: map[string]string{},
		index:          c.g.addResource(id),
	}
	doc.resources = append(doc.resources, r)
	c.resList = append(c.resList, r)
	c.register(id, r)
	return r
}

func (c *compiler) register(id string, r *resource) {
	if prev, ok := c.resources[id]; ok && prev != r {
		c.diag.warnf("duplicate schema identifier %q", id)
		return
	}
	c.resources[id] = r
}

// walk indexes identifiers and anchors below v. Only subschemas of keywords
// known to the enclosing draft are visited, so values of "enum", "const" or
// unknown keywords never declare resources.
func (c *compiler) walk(doc *document, ptr string, v any, res *resource, refs *[]string) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	vocab := res.vocab
	_, hasRef := obj["$ref"]
	if id, ok := obj[vocab.idKey].(string); ok && !(vocab.refOverrides && hasRef) {
		if vocab.idAnchors && strings.HasPrefix(id, "#") {
			res.anchors[id[1:]] = ptr
		} else {
			abs, frag, err := resolveURI(res.id, id)
			if err != nil {
				return &BuildError{Kind: ErrInvalidSchema, Location: doc.url + "#" + ptr, Keyword: vocab.idKey, Msg: "invalid identifier", Err: err}
			}
			if ptr == res.ptr {
				res.id = abs
				c.g.resources[res.index].id = abs
				c.register(abs, res)
			} else {
				nv := vocab
				if d, ok := declaredDraft(obj); ok {
					nv = d.vocabulary()
				}
				res = c.newResource(abs, doc, ptr, nv)
				vocab = nv
			}
			if frag != "" && vocab.idAnchors {
				res.anchors[frag] = ptr
			}
		}
	}
	if vocab.atLeast(Draft201909) {
		if a, ok := obj["$anchor"].(string); ok {
			res.anchors[a] = ptr
		}
	}
	if vocab.draft == Draft201909 && ptr == res.ptr {
		if b, _ := obj["$recursiveAnchor"].(bool); b {
			res.recursiveAnchor = true
		}
	}
	if vocab.draft == Draft202012 {
		if a, ok := obj["$dynamicAnchor"].(string); ok {
			res.anchors[a] = ptr
			res.dynamicAnchors[a] = ptr
		}
	}
	for _, key := range [...]string{"$ref", "$dynamicRef", "$recursiveRef"} {
		if s, ok := obj[key].(string); ok {
			if abs, _, err := resolveURI(res.id, s); err == nil && abs != res.id {
				*refs = append(*refs, abs)
			}
		}
	}

	for _, key := range sortedKeys(obj) {
		spec, ok := vocab.lookup(key)
		if !ok {
			continue
		}
		child := obj[key]
		at := jsonpointer.Join(ptr, key)
		switch spec.shape {
		case shapeSingle:
			if err := c.walk(doc, at, child, res, refs); err != nil {
				return err
			}
		case shapeArray:
			if err := c.walkArray(doc, at, child, res, refs); err != nil {
				return err
			}
		case shapeSingleOrArray:
			if _, isArr := child.([]any); isArr {
				if err := c.walkArray(doc, at, child, res, refs); err != nil {
					return err
				}
			} else if err := c.walk(doc, at, child, res, refs); err != nil {
				return err
			}
		case shapeMap, shapeDependencies:
			m, _ := child.(map[string]any)
			for _, name := range sortedKeys(m) {
				if err := c.walk(doc, jsonpointer.Join(at, name), m[name], res, refs); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *compiler) walkArray(doc *document, at string, v any, res *resource, refs *[]string) error {
	arr, _ := v.([]any)
	for i, item := range arr {
		if err := c.walk(doc, jsonpointer.Join(at, strconv.Itoa(i)), item, res, refs); err != nil {
			return err
		}
	}
	return nil
}

// compileAt compiles the schema at ptr in doc. The node ID is reserved before
// children are compiled, so a reference back to a schema in progress binds to
// the existing node and cycles terminate.
func (c *compiler) compileAt(doc *document, ptr string) (nodeID, error) {
	key := doc.url + "#" + ptr
	if id, ok := c.nodes[key]; ok {
		return id, nil
	}
	v, ok := jsonpointer.Get(doc.raw, ptr)
	if !ok {
		return noNode, &BuildError{Kind: ErrUnresolvableRef, Location: key, URL: key, Msg: "no schema at this location"}
	}
	res := doc.enclosing(ptr)
	id := c.g.reserve()
	c.nodes[key] = id
	node := schemaNode{abs: res.location(ptr), resource: res.index}
	switch s := v.(type) {
	case bool:
		if !res.vocab.booleanSchemas {
			return noNode, &BuildError{Kind: ErrInvalidSchema, Location: key, Msg: "boolean schemas are not allowed in " + res.vocab.draft.String()}
		}
		node.boolean, node.allow = true, s
	case map[string]any:
		kws, err := c.compileKeywords(doc, res, ptr, s)
		if err != nil {
			return noNode, err
		}
		node.keywords = kws
	default:
		return noNode, &BuildError{Kind: ErrInvalidSchema, Location: key, Msg: "schema must be an object or a boolean, got " + value.TypeName(v)}
	}
	c.g.nodes[id] = node
	return id, nil
}

// compileKeywords orders keywords as: built-ins in draft table order, then
// caller-registered and unknown keywords sorted by name, then late keywords.
func (c *compiler) compileKeywords(doc *document, res *resource, ptr string, obj map[string]any) ([]compiledKeyword, error) {
	vocab := res.vocab
	cc := &compileCtx{c: c, doc: doc, res: res, ptr: ptr, obj: obj}
	if raw, hasRef := obj["$ref"]; hasRef && vocab.refOverrides {
		cc.kw = "$ref"
		k, err := compileRef(cc, raw)
		if err != nil {
			return nil, err
		}
		return []compiledKeyword{{name: "$ref", kw: k}}, nil
	}
	var out, tail []compiledKeyword
	for _, spec := range vocab.keywords {
		raw, ok := obj[spec.name]
		if !ok || spec.compile == nil {
			continue
		}
		if _, custom := c.opts.keywords[spec.name]; custom {
			continue
		}
		cc.kw = spec.name
		k, err := spec.compile(cc, raw)
		if err != nil {
			return nil, err
		}
		if k == nil {
			continue
		}
		if spec.late {
			tail = append(tail, compiledKeyword{name: spec.name, kw: k})
		} else {
			out = append(out, compiledKeyword{name: spec.name, kw: k})
		}
	}
	for _, name := range sortedKeys(obj) {
		if factory, ok := c.opts.keywords[name]; ok {
			k, err := factory(obj[name])
			if err == nil && k == nil {
				err = errors.New("factory returned no keyword")
			}
			if err != nil {
				return nil, &BuildError{Kind: ErrKeywordFactory, Location: doc.url + "#" + jsonpointer.Join(ptr, name), Keyword: name, Err: err}
			}
			out = append(out, compiledKeyword{name: name, kw: customKeyword{k: k}})
			continue
		}
		if _, known := vocab.lookup(name); known {
			continue
		}
		if vocab.unknownAnnotations {
			out = append(out, compiledKeyword{name: name, kw: annotationKeyword{value: obj[name]}})
		} else {
			c.diag.warnf("unknown keyword %q at %s#%s ignored", name, doc.url, ptr)
		}
	}
	return append(out, tail...), nil
}

// refTarget is a resolved reference before compilation.
type refTarget struct {
	res  *resource
	frag string
	ptr  string
}

// locate resolves ref against the resource at base, loading the target
// document through the fetcher when it is not known yet.
func (c *compiler) locate(from *resource, ref, loc string) (refTarget, error) {
	abs, frag, err := resolveURI(from.id, ref)
	if err != nil {
		return refTarget{}, &BuildError{Kind: ErrInvalidSchema, Location: loc, Msg: "invalid reference " + ref, Err: err}
	}
	res, ok := c.resources[abs]
	if !ok {
		raw, err := c.fetch.fetch(abs)
		if err != nil {
			return refTarget{}, &BuildError{Kind: ErrResolve, Location: loc, URL: abs, Err: err}
		}
		vocab := from.vocab
		if d, ok := declaredDraft(raw); ok {
			vocab = d.vocabulary()
		}
		doc, err := c.addDocument(abs, raw, vocab)
		if err != nil {
			return refTarget{}, err
		}
		res = doc.resources[0]
	}
	t := refTarget{res: res, frag: frag, ptr: res.ptr}
	switch {
	case frag == "":
	case strings.HasPrefix(frag, "/"):
		if !jsonpointer.Valid(frag) {
			return refTarget{}, &BuildError{Kind: ErrUnresolvableRef, Location: loc, URL: abs + "#" + frag, Msg: "malformed JSON pointer"}
		}
		t.ptr = res.ptr + frag
	default:
		p, ok := res.anchors[frag]
		if !ok {
			return refTarget{}, &BuildError{Kind: ErrUnresolvableRef, Location: loc, URL: abs + "#" + frag, Msg: "anchor not found"}
		}
		t.ptr = p
	}
	if _, ok := jsonpointer.Get(res.doc.raw, t.ptr); !ok {
		return refTarget{}, &BuildError{Kind: ErrUnresolvableRef, Location: loc, URL: abs + "#" + frag, Msg: "no schema at this location"}
	}
	return t, nil
}

// compileDynamicScopes compiles the dynamic and recursive anchors of every
// indexed resource, so evaluation can switch targets without compiling. New
// resources found on the way are processed until none are left.
func (c *compiler) compileDynamicScopes() error {
	if !c.dynamic {
		return nil
	}
	for i := 0; i < len(c.resList); i++ {
		r := c.resList[i]
		for _, name := range sortedKeys(r.dynamicAnchors) {
			id, err := c.compileAt(r.doc, r.dynamicAnchors[name])
			if err != nil {
				return err
			}
			c.g.resources[r.index].dynamicAnchors[name] = id
		}
		if r.recursiveAnchor {
			id, err := c.compileAt(r.doc, r.ptr)
			if err != nil {
				return err
			}
			c.g.resources[r.index].recursive = id
		}
	}
	return nil
}

// resolveURI resolves ref against base and splits off the fragment, which is
// returned percent-decoded.
func resolveURI(base, ref string) (abs, frag string, err error) {
	refPart, fragPart, _ := strings.Cut(ref, "#")
	if fragPart != "" {
		if frag, err = url.PathUnescape(fragPart); err != nil {
			return "", "", err
		}
	}
	if refPart == "" {
		return base, frag, nil
	}
	r, err := url.Parse(refPart)
	if err != nil {
		return "", "", err
	}
	if base == "" {
		return r.String(), frag, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", "", err
	}
	return b.ResolveReference(r).String(), frag, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// compileCtx is handed to keyword compile functions.
type compileCtx struct {
	c   *compiler
	doc *document
	res *resource
	ptr string
	obj map[string]any
	kw  string
}

func (cc *compileCtx) vocab() *vocabulary { return cc.res.vocab }

func (cc *compileCtx) location() string { return cc.doc.url + "#" + jsonpointer.Join(cc.ptr, cc.kw) }

// sub compiles the subschema below the current keyword.
func (cc *compileCtx) sub(tokens ...string) (nodeID, error) {
	return cc.c.compileAt(cc.doc, jsonpointer.Join(jsonpointer.Join(cc.ptr, cc.kw), tokens...))
}

// sibling compiles the subschema below another keyword of the same object.
func (cc *compileCtx) sibling(name string, tokens ...string) (nodeID, error) {
	return cc.c.compileAt(cc.doc, jsonpointer.Join(jsonpointer.Join(cc.ptr, name), tokens...))
}

func (cc *compileCtx) errorf(format string, a ...any) error {
	return &BuildError{Kind: ErrInvalidSchema, Location: cc.location(), Keyword: cc.kw, Msg: fmt.Sprintf(format, a...)}
}
