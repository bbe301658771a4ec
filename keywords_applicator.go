package jsonskema

import (
	"regexp"
	"strconv"
)

func schemaList(cc *compileCtx, v any) ([]nodeID, error) {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil, cc.errorf("must be a non-empty array of schemas")
	}
	ids := make([]nodeID, len(arr))
	for i := range arr {
		id, err := cc.sub(strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// allOf, anyOf, oneOf, not

type allOfKeyword struct{ ids []nodeID }

func compileAllOf(cc *compileCtx, v any) (keyword, error) {
	ids, err := schemaList(cc, v)
	if err != nil {
		return nil, err
	}
	return allOfKeyword{ids: ids}, nil
}

func (k allOfKeyword) eval(f *frame) {
	for i, id := range k.ids {
		if f.done() {
			return
		}
		f.apply(id, f.kw, strconv.Itoa(i))
	}
}

type anyOfKeyword struct{ ids []nodeID }

func compileAnyOf(cc *compileCtx, v any) (keyword, error) {
	ids, err := schemaList(cc, v)
	if err != nil {
		return nil, err
	}
	return anyOfKeyword{ids: ids}, nil
}

// eval reports one error carrying the errors of every branch when no branch
// passes.
func (k anyOfKeyword) eval(f *frame) {
	matched := false
	var causes []*ValidationError
	for i, id := range k.ids {
		ok, errs := f.try(id, f.kw, strconv.Itoa(i))
		if ok {
			matched = true
			if !f.exhaustive() {
				break
			}
			continue
		}
		if !matched {
			causes = append(causes, errs...)
		}
	}
	if !matched {
		f.failWith(CodeAnyOf, "any_of", nil, causes)
	}
}

type oneOfKeyword struct{ ids []nodeID }

func compileOneOf(cc *compileCtx, v any) (keyword, error) {
	ids, err := schemaList(cc, v)
	if err != nil {
		return nil, err
	}
	return oneOfKeyword{ids: ids}, nil
}

func (k oneOfKeyword) eval(f *frame) {
	first := -1
	var causes []*ValidationError
	for i, id := range k.ids {
		ok, errs := f.try(id, f.kw, strconv.Itoa(i))
		if !ok {
			causes = append(causes, errs...)
			continue
		}
		if first >= 0 {
			f.fail(CodeOneOf, "one_of_many", map[string]any{"first": first, "second": i})
			return
		}
		first = i
	}
	if first < 0 {
		f.failWith(CodeOneOf, "one_of", nil, causes)
	}
}

type notKeyword struct{ id nodeID }

func compileNot(cc *compileCtx, _ any) (keyword, error) {
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	return notKeyword{id: id}, nil
}

func (k notKeyword) eval(f *frame) {
	if f.check(k.id, f.kw) {
		f.fail(CodeNot, "not", nil)
	}
}

// if / then / else

type ifKeyword struct {
	cond, then, els nodeID
}

func compileIf(cc *compileCtx, _ any) (keyword, error) {
	k := ifKeyword{then: noNode, els: noNode}
	var err error
	if k.cond, err = cc.sub(); err != nil {
		return nil, err
	}
	if _, ok := cc.obj["then"]; ok {
		if k.then, err = cc.sibling("then"); err != nil {
			return nil, err
		}
	}
	if _, ok := cc.obj["else"]; ok {
		if k.els, err = cc.sibling("else"); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func (k ifKeyword) eval(f *frame) {
	if ok, _ := f.try(k.cond, "if"); ok {
		if k.then != noNode {
			f.apply(k.then, "then")
		}
	} else if k.els != noNode {
		f.apply(k.els, "else")
	}
}

// properties, patternProperties, additionalProperties, propertyNames

type namedSchema struct {
	name string
	id   nodeID
}

type propertiesKeyword struct{ props []namedSchema }

func compileProperties(cc *compileCtx, v any) (keyword, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, cc.errorf("must be an object")
	}
	var k propertiesKeyword
	for _, name := range sortedKeys(m) {
		id, err := cc.sub(name)
		if err != nil {
			return nil, err
		}
		k.props = append(k.props, namedSchema{name: name, id: id})
	}
	return k, nil
}

func (k propertiesKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	var seen []string
	for _, p := range k.props {
		if f.done() {
			return
		}
		v, present := obj[p.name]
		if !present {
			continue
		}
		f.markProp(p.name)
		seen = append(seen, p.name)
		f.applyAt(p.id, v, p.name, f.kw, p.name)
	}
	if f.kwValid {
		f.annotate(seen)
	}
}

type patternSchema struct {
	src string
	re  *regexp.Regexp
	id  nodeID
}

type patternPropertiesKeyword struct{ pats []patternSchema }

func compilePatternProperties(cc *compileCtx, v any) (keyword, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, cc.errorf("must be an object")
	}
	var k patternPropertiesKeyword
	for _, src := range sortedKeys(m) {
		re, err := compileRegexp(cc, src)
		if err != nil {
			return nil, err
		}
		id, err := cc.sub(src)
		if err != nil {
			return nil, err
		}
		k.pats = append(k.pats, patternSchema{src: src, re: re, id: id})
	}
	return k, nil
}

func (k patternPropertiesKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	var seen []string
	for _, name := range sortedKeys(obj) {
		matched := false
		for _, p := range k.pats {
			if f.done() {
				return
			}
			if !p.re.MatchString(name) {
				continue
			}
			matched = true
			f.markProp(name)
			f.applyAt(p.id, obj[name], name, f.kw, p.src)
		}
		if matched {
			seen = append(seen, name)
		}
	}
	if f.kwValid {
		f.annotate(seen)
	}
}

type additionalPropertiesKeyword struct {
	id    nodeID
	deny  bool // the schema is literally false
	props map[string]bool
	pats  []*regexp.Regexp
}

func compileAdditionalProperties(cc *compileCtx, v any) (keyword, error) {
	k := additionalPropertiesKeyword{id: noNode, props: map[string]bool{}}
	b, isBool := v.(bool)
	switch {
	case isBool && !b:
		k.deny = true
	case isBool && !cc.vocab().booleanSchemas:
		// Draft 4 allows true here although it has no boolean schemas.
		return nil, nil
	default:
		id, err := cc.sub()
		if err != nil {
			return nil, err
		}
		k.id = id
	}
	if m, ok := cc.obj["properties"].(map[string]any); ok {
		for name := range m {
			k.props[name] = true
		}
	}
	if m, ok := cc.obj["patternProperties"].(map[string]any); ok {
		for _, src := range sortedKeys(m) {
			if re, err := regexp.Compile(src); err == nil {
				k.pats = append(k.pats, re)
			}
		}
	}
	return k, nil
}

func (k additionalPropertiesKeyword) additional(name string) bool {
	if k.props[name] {
		return false
	}
	for _, re := range k.pats {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

func (k additionalPropertiesKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	var seen []string
	for _, name := range sortedKeys(obj) {
		if f.done() {
			return
		}
		if !k.additional(name) {
			continue
		}
		f.markProp(name)
		seen = append(seen, name)
		if k.deny {
			f.fail(CodeUnknownKey, "unknown_key", map[string]any{"property": name})
			continue
		}
		f.applyAt(k.id, obj[name], name, f.kw)
	}
	if f.kwValid {
		f.annotate(seen)
	}
}

type propertyNamesKeyword struct{ id nodeID }

func compilePropertyNames(cc *compileCtx, _ any) (keyword, error) {
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	return propertyNamesKeyword{id: id}, nil
}

func (k propertyNamesKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	for _, name := range sortedKeys(obj) {
		if f.done() {
			return
		}
		if ok, errs := f.tryAt(k.id, name, name, f.kw); !ok {
			f.failWith(CodePropertyNames, "property_names", map[string]any{"property": name}, errs)
		}
	}
}

// dependencies (Draft 4/6/7), dependentSchemas

type dependency struct {
	dependentRequired
	id nodeID // noNode for the property-list form
}

type dependenciesKeyword struct{ deps []dependency }

func compileDependencies(cc *compileCtx, v any) (keyword, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, cc.errorf("must be an object")
	}
	var k dependenciesKeyword
	for _, name := range sortedKeys(m) {
		d := dependency{dependentRequired: dependentRequired{property: name}, id: noNode}
		if _, isList := m[name].([]any); isList {
			req, err := stringList(cc, m[name])
			if err != nil {
				return nil, err
			}
			d.required = req
		} else {
			id, err := cc.sub(name)
			if err != nil {
				return nil, err
			}
			d.id = id
		}
		k.deps = append(k.deps, d)
	}
	return k, nil
}

func (k dependenciesKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	for _, d := range k.deps {
		if f.done() {
			return
		}
		if d.id == noNode {
			checkDependentRequired(f, obj, d.dependentRequired)
			continue
		}
		if _, present := obj[d.property]; present {
			f.apply(d.id, f.kw, d.property)
		}
	}
}

type dependentSchemasKeyword struct{ deps []namedSchema }

func compileDependentSchemas(cc *compileCtx, v any) (keyword, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, cc.errorf("must be an object")
	}
	var k dependentSchemasKeyword
	for _, name := range sortedKeys(m) {
		id, err := cc.sub(name)
		if err != nil {
			return nil, err
		}
		k.deps = append(k.deps, namedSchema{name: name, id: id})
	}
	return k, nil
}

func (k dependentSchemasKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	for _, d := range k.deps {
		if f.done() {
			return
		}
		if _, present := obj[d.name]; present {
			f.apply(d.id, f.kw, d.name)
		}
	}
}

// items, prefixItems, additionalItems, contains

// itemsKeyword applies one schema to every item from index `from` on.
type itemsKeyword struct {
	id   nodeID
	from int
}

// tupleKeyword applies schemas by position (prefixItems, or array-form items
// before 2020-12).
type tupleKeyword struct{ ids []nodeID }

func compileItems(cc *compileCtx, v any) (keyword, error) {
	if arr, ok := v.([]any); ok {
		if cc.vocab().atLeast(Draft202012) {
			return nil, cc.errorf("must be a schema")
		}
		ids := make([]nodeID, len(arr))
		for i := range arr {
			id, err := cc.sub(strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		return tupleKeyword{ids: ids}, nil
	}
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	k := itemsKeyword{id: id}
	if cc.vocab().atLeast(Draft202012) {
		if prefix, ok := cc.obj["prefixItems"].([]any); ok {
			k.from = len(prefix)
		}
	}
	return k, nil
}

func compilePrefixItems(cc *compileCtx, v any) (keyword, error) {
	ids, err := schemaList(cc, v)
	if err != nil {
		return nil, err
	}
	return tupleKeyword{ids: ids}, nil
}

func (k itemsKeyword) eval(f *frame) {
	arr, ok := f.inst.([]any)
	if !ok {
		return
	}
	for i := k.from; i < len(arr); i++ {
		if f.done() {
			return
		}
		f.applyAt(k.id, arr[i], strconv.Itoa(i), f.kw)
	}
	f.markAllItems()
	if f.kwValid && k.from < len(arr) {
		f.annotate(true)
	}
}

func (k tupleKeyword) eval(f *frame) {
	arr, ok := f.inst.([]any)
	if !ok {
		return
	}
	n := min(len(arr), len(k.ids))
	for i := 0; i < n; i++ {
		if f.done() {
			return
		}
		f.markItem(i)
		f.applyAt(k.ids[i], arr[i], strconv.Itoa(i), f.kw, strconv.Itoa(i))
	}
	if f.kwValid && n > 0 {
		if n == len(arr) {
			f.annotate(true)
		} else {
			f.annotate(n - 1)
		}
	}
}

type additionalItemsKeyword struct {
	id   nodeID
	from int
	deny bool
}

// compileAdditionalItems only has an effect next to array-form items.
func compileAdditionalItems(cc *compileCtx, v any) (keyword, error) {
	items, ok := cc.obj["items"].([]any)
	if !ok {
		return nil, nil
	}
	k := additionalItemsKeyword{id: noNode, from: len(items)}
	if b, ok := v.(bool); ok {
		if !b {
			k.deny = true
			return k, nil
		}
		if !cc.vocab().booleanSchemas {
			return nil, nil
		}
	}
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	k.id = id
	return k, nil
}

func (k additionalItemsKeyword) eval(f *frame) {
	arr, ok := f.inst.([]any)
	if !ok {
		return
	}
	for i := k.from; i < len(arr); i++ {
		if f.done() {
			return
		}
		if k.deny {
			f.fail(CodeAdditionalItems, "additional_items", map[string]any{"index": i})
			continue
		}
		f.applyAt(k.id, arr[i], strconv.Itoa(i), f.kw)
	}
	f.markAllItems()
}

type containsKeyword struct {
	id  nodeID
	min int
	max int // -1 when unbounded
	// mark records matched items as evaluated (2020-12).
	mark bool
}

func compileContains(cc *compileCtx, _ any) (keyword, error) {
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	k := containsKeyword{id: id, min: 1, max: -1, mark: cc.vocab().atLeast(Draft202012)}
	if cc.vocab().atLeast(Draft201909) {
		if v, ok := cc.obj["minContains"]; ok {
			cc.kw = "minContains"
			if k.min, err = limit(cc, v); err != nil {
				return nil, err
			}
		}
		if v, ok := cc.obj["maxContains"]; ok {
			cc.kw = "maxContains"
			if k.max, err = limit(cc, v); err != nil {
				return nil, err
			}
		}
	}
	return k, nil
}

func (k containsKeyword) eval(f *frame) {
	arr, ok := f.inst.([]any)
	if !ok {
		return
	}
	count := 0
	var matched []int
	var causes []*ValidationError
	for i, item := range arr {
		ok, errs := f.tryAt(k.id, item, strconv.Itoa(i), f.kw)
		if !ok {
			causes = append(causes, errs...)
			continue
		}
		count++
		matched = append(matched, i)
		if k.mark {
			f.markItem(i)
		}
		if k.max < 0 && count >= k.min && !f.exhaustive() {
			break
		}
	}
	switch {
	case count < k.min && k.min == 1 && k.max < 0:
		f.failWith(CodeContains, "contains", nil, causes)
	case count < k.min:
		f.failWith(CodeContains, "too_few_contains", map[string]any{"min": k.min, "got": count}, causes)
	case k.max >= 0 && count > k.max:
		f.fail(CodeContains, "too_many_contains", map[string]any{"max": k.max, "got": count})
	default:
		f.annotate(matched)
	}
}

// unevaluatedProperties, unevaluatedItems run after every sibling keyword and
// see the annotations collected so far.

type unevaluatedPropertiesKeyword struct {
	id   nodeID
	deny bool
}

func compileUnevaluatedProperties(cc *compileCtx, v any) (keyword, error) {
	cc.c.g.tracking = true
	if b, ok := v.(bool); ok && !b {
		return unevaluatedPropertiesKeyword{id: noNode, deny: true}, nil
	}
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	return unevaluatedPropertiesKeyword{id: id}, nil
}

func (k unevaluatedPropertiesKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	var seen []string
	for _, name := range sortedKeys(obj) {
		if f.done() {
			return
		}
		if f.ev.hasProp(name) {
			continue
		}
		seen = append(seen, name)
		if k.deny {
			f.fail(CodeUnevaluatedProperties, "unevaluated_properties", map[string]any{"property": name})
			continue
		}
		f.applyAt(k.id, obj[name], name, f.kw)
	}
	for _, name := range seen {
		f.markProp(name)
	}
	if f.kwValid {
		f.annotate(seen)
	}
}

type unevaluatedItemsKeyword struct {
	id   nodeID
	deny bool
}

func compileUnevaluatedItems(cc *compileCtx, v any) (keyword, error) {
	cc.c.g.tracking = true
	if b, ok := v.(bool); ok && !b {
		return unevaluatedItemsKeyword{id: noNode, deny: true}, nil
	}
	id, err := cc.sub()
	if err != nil {
		return nil, err
	}
	return unevaluatedItemsKeyword{id: id}, nil
}

func (k unevaluatedItemsKeyword) eval(f *frame) {
	arr, ok := f.inst.([]any)
	if !ok {
		return
	}
	for i := range arr {
		if f.done() {
			return
		}
		if f.ev.hasItem(i) {
			continue
		}
		if k.deny {
			f.fail(CodeUnevaluatedItems, "unevaluated_items", map[string]any{"index": i})
			continue
		}
		f.applyAt(k.id, arr[i], strconv.Itoa(i), f.kw)
	}
	f.markAllItems()
}
