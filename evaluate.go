package jsonskema

import (
	"github.com/reoring/jsonskema/i18n"
	"github.com/reoring/jsonskema/internal/jsonpointer"
	"github.com/reoring/jsonskema/internal/value"
)

// location is an immutable linked list of JSON Pointer tokens. Children share
// their parent's tokens, so descending costs one allocation.
type location struct {
	parent *location
	token  string
}

func (l *location) push(tokens ...string) *location {
	for _, t := range tokens {
		l = &location{parent: l, token: t}
	}
	return l
}

func (l *location) String() string {
	if l == nil {
		return ""
	}
	var tokens []string
	for p := l; p != nil; p = p.parent {
		tokens = append(tokens, p.token)
	}
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return jsonpointer.Join("", tokens...)
}

// evaluated records which properties and items of the current instance were
// evaluated by passing subschemas. It feeds unevaluatedProperties and
// unevaluatedItems.
type evaluated struct {
	props    map[string]struct{}
	items    map[int]struct{}
	allItems bool
}

func (ev *evaluated) merge(o evaluated) {
	for p := range o.props {
		ev.markProp(p)
	}
	for i := range o.items {
		ev.markItem(i)
	}
	ev.allItems = ev.allItems || o.allItems
}

func (ev *evaluated) markProp(name string) {
	if ev.props == nil {
		ev.props = map[string]struct{}{}
	}
	ev.props[name] = struct{}{}
}

func (ev *evaluated) markItem(i int) {
	if ev.items == nil {
		ev.items = map[int]struct{}{}
	}
	ev.items[i] = struct{}{}
}

func (ev *evaluated) hasProp(name string) bool {
	_, ok := ev.props[name]
	return ok
}

func (ev *evaluated) hasItem(i int) bool {
	if ev.allItems {
		return true
	}
	_, ok := ev.items[i]
	return ok
}

// traceUnit is one node of the evaluation trace kept by Evaluate.
type traceUnit struct {
	valid            bool
	keywordLocation  string
	absoluteLocation string
	instanceLocation string
	err              *ValidationError
	annotation       any
	hasAnnotation    bool
	children         []*traceUnit
}

type activeKey struct {
	node nodeID
	inst *location
}

// evaluator holds the per-call state of one evaluation. The graph is only read.
type evaluator struct {
	g *graph
	// flag mode only needs the boolean result: no error values are built and
	// the first failure stops the evaluation.
	flag  bool
	trace bool
	// sink receives errors; returning false stops the evaluation.
	sink    func(*ValidationError) bool
	stopped bool

	// speculative is set while a branch runs only to decide its keyword (anyOf,
	// oneOf, not, if, contains, propertyNames).
	speculative bool
	// scope lists the resources on the dynamic path, outermost first.
	scope  []int
	active map[activeKey]struct{}
}

func newEvaluator(g *graph) *evaluator {
	return &evaluator{g: g, active: map[activeKey]struct{}{}}
}

// evalNode applies node id to inst. Re-entering a node at the same instance
// location (a reference cycle that consumed no input) contributes nothing:
// it passes, except inside a speculative branch, where it fails so that a
// left-recursive alternative cannot accept everything.
func (e *evaluator) evalNode(id nodeID, inst any, instLoc, path *location, parent *traceUnit) (bool, evaluated) {
	key := activeKey{node: id, inst: instLoc}
	if _, ok := e.active[key]; ok {
		return !e.speculative, evaluated{}
	}
	e.active[key] = struct{}{}
	defer delete(e.active, key)

	n := &e.g.nodes[id]
	if len(e.scope) == 0 || e.scope[len(e.scope)-1] != n.resource {
		e.scope = append(e.scope, n.resource)
		defer func(depth int) { e.scope = e.scope[:depth] }(len(e.scope) - 1)
	}

	f := frame{e: e, node: n, inst: inst, instLoc: instLoc, path: path, valid: true}
	if e.trace {
		f.unit = &traceUnit{keywordLocation: path.String(), absoluteLocation: n.abs, instanceLocation: instLoc.String()}
		if parent != nil {
			parent.children = append(parent.children, f.unit)
		}
	}
	switch {
	case n.boolean:
		if !n.allow {
			f.fail(CodeFalseSchema, "false_schema", nil)
		}
	case value.KindOf(inst) == value.Invalid:
		f.fail(CodeInvalidType, "invalid_type", map[string]any{"expected": "JSON value", "got": "unsupported"})
	default:
		for i := range n.keywords {
			if e.stopped {
				break
			}
			k := &n.keywords[i]
			f.kw, f.kwValid = k.name, true
			if e.trace {
				f.kwUnit = &traceUnit{
					keywordLocation:  path.push(k.name).String(),
					absoluteLocation: joinAbs(n.abs, k.name),
					instanceLocation: f.unit.instanceLocation,
				}
				f.unit.children = append(f.unit.children, f.kwUnit)
			}
			k.kw.eval(&f)
			if e.trace {
				f.kwUnit.valid = f.kwValid
			}
		}
		f.kw, f.kwUnit = "", nil
	}
	if e.trace {
		f.unit.valid = f.valid
	}
	return f.valid, f.ev
}

func joinAbs(abs, kw string) string {
	if abs == "" {
		return ""
	}
	return abs + "/" + jsonpointer.Escape(kw)
}

// frame is the evaluation of one schema node against one instance location.
// Keywords report through it.
type frame struct {
	e       *evaluator
	node    *schemaNode
	inst    any
	instLoc *location
	path    *location
	kw      string
	valid   bool
	kwValid bool
	ev      evaluated
	unit    *traceUnit
	kwUnit  *traceUnit
}

func (f *frame) done() bool { return f.e.stopped }

func (f *frame) tracking() bool { return f.e.g.tracking }

func (f *frame) invalidate() { f.valid, f.kwValid = false, false }

func (f *frame) fail(code, msgKey string, params map[string]any) {
	f.failWith(code, msgKey, params, nil)
}

// failWith records a failure of the current keyword with the errors of the
// branches that explain it.
func (f *frame) failWith(code, msgKey string, params map[string]any, causes []*ValidationError) {
	f.invalidate()
	e := f.e
	if e.stopped {
		return
	}
	if e.flag {
		e.stopped = true
		return
	}
	err := f.newError(code, msgKey, params, causes)
	if e.trace {
		if f.kwUnit != nil {
			f.kwUnit.err = err
		} else {
			f.unit.err = err
		}
	}
	if e.sink != nil && !e.sink(err) {
		e.stopped = true
	}
}

func (f *frame) newError(code, msgKey string, params map[string]any, causes []*ValidationError) *ValidationError {
	kwLoc, abs, name := f.path, f.node.abs, f.kw
	if name != "" {
		kwLoc = kwLoc.push(name)
		abs = joinAbs(abs, name)
	} else {
		name = "false"
		if !f.node.boolean {
			name = "type"
		}
	}
	return &ValidationError{
		InstanceLocation:        f.instLoc.String(),
		KeywordLocation:         kwLoc.String(),
		AbsoluteKeywordLocation: abs,
		Keyword:                 name,
		Code:                    code,
		Message:                 i18n.T(msgKey, messageParams(params)),
		Params:                  params,
		Causes:                  causes,
	}
}

// annotate attaches an annotation to the current keyword in the trace.
func (f *frame) annotate(v any) {
	if f.kwUnit != nil {
		f.kwUnit.annotation, f.kwUnit.hasAnnotation = v, true
	}
}

func (f *frame) markProp(name string) {
	if f.tracking() {
		f.ev.markProp(name)
	}
}

func (f *frame) markItem(i int) {
	if f.tracking() {
		f.ev.markItem(i)
	}
}

func (f *frame) markAllItems() {
	if f.tracking() {
		f.ev.allItems = true
	}
}

// apply evaluates a subschema against the same instance. Its errors flow to the
// caller unchanged and its annotations are kept when it passes.
func (f *frame) apply(id nodeID, tokens ...string) bool {
	ok, ev := f.e.evalNode(id, f.inst, f.instLoc, f.path.push(tokens...), f.kwUnit)
	if ok {
		f.ev.merge(ev)
	} else {
		f.invalidate()
	}
	return ok
}

// applyAt evaluates a subschema against a child of the instance.
func (f *frame) applyAt(id nodeID, inst any, token string, tokens ...string) bool {
	ok, _ := f.e.evalNode(id, inst, f.instLoc.push(token), f.path.push(tokens...), f.kwUnit)
	if !ok {
		f.invalidate()
	}
	return ok
}

// try evaluates a subschema speculatively: the frame stays valid and the
// subschema's errors are returned instead of reported.
func (f *frame) try(id nodeID, tokens ...string) (bool, []*ValidationError) {
	sub, buf := f.speculate()
	ok, ev := sub.evalNode(id, f.inst, f.instLoc, f.path.push(tokens...), f.kwUnit)
	if ok {
		f.ev.merge(ev)
	}
	return ok, *buf
}

// check is try without keeping annotations: the subschema only decides the
// outcome of the keyword (not).
func (f *frame) check(id nodeID, tokens ...string) bool {
	sub, _ := f.speculate()
	ok, _ := sub.evalNode(id, f.inst, f.instLoc, f.path.push(tokens...), f.kwUnit)
	return ok
}

// tryAt is try against a child of the instance.
func (f *frame) tryAt(id nodeID, inst any, token string, tokens ...string) (bool, []*ValidationError) {
	sub, buf := f.speculate()
	ok, _ := sub.evalNode(id, inst, f.instLoc.push(token), f.path.push(tokens...), f.kwUnit)
	return ok, *buf
}

func (f *frame) speculate() (*evaluator, *[]*ValidationError) {
	buf := new([]*ValidationError)
	sub := *f.e
	sub.stopped, sub.speculative = false, true
	if !sub.flag {
		sub.sink = func(err *ValidationError) bool {
			*buf = append(*buf, err)
			return true
		}
	}
	return &sub, buf
}

// exhaustive reports whether every branch of a combinator must run even after
// the outcome is known: annotations are collected or a trace is built.
func (f *frame) exhaustive() bool { return f.tracking() || f.e.trace }
