package jsonskema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// $ref

type refKeyword struct{ target nodeID }

func compileRef(cc *compileCtx, v any) (keyword, error) {
	s, ok := v.(string)
	if !ok {
		return nil, cc.errorf("must be a string")
	}
	t, err := cc.c.locate(cc.res, s, cc.location())
	if err != nil {
		return nil, err
	}
	id, err := cc.c.compileAt(t.res.doc, t.ptr)
	if err != nil {
		return nil, err
	}
	return refKeyword{target: id}, nil
}

func (k refKeyword) eval(f *frame) { f.apply(k.target, f.kw) }

// $dynamicRef (2020-12)

type dynamicRefKeyword struct {
	target nodeID
	anchor string // set when the static target is a $dynamicAnchor of this name
}

func compileDynamicRef(cc *compileCtx, v any) (keyword, error) {
	s, ok := v.(string)
	if !ok {
		return nil, cc.errorf("must be a string")
	}
	t, err := cc.c.locate(cc.res, s, cc.location())
	if err != nil {
		return nil, err
	}
	id, err := cc.c.compileAt(t.res.doc, t.ptr)
	if err != nil {
		return nil, err
	}
	k := dynamicRefKeyword{target: id}
	if t.frag != "" && !strings.HasPrefix(t.frag, "/") {
		if _, ok := t.res.dynamicAnchors[t.frag]; ok {
			k.anchor = t.frag
		}
	}
	cc.c.dynamic = true
	return k, nil
}

func (k dynamicRefKeyword) eval(f *frame) {
	target := k.target
	if k.anchor != "" {
		for _, ri := range f.e.scope {
			if id, ok := f.e.g.resources[ri].dynamicAnchors[k.anchor]; ok {
				target = id
				break
			}
		}
	}
	f.apply(target, f.kw)
}

// $recursiveRef (2019-09)

type recursiveRefKeyword struct {
	target    nodeID
	recursive bool // static target carries "$recursiveAnchor": true
}

func compileRecursiveRef(cc *compileCtx, v any) (keyword, error) {
	s, ok := v.(string)
	if !ok {
		return nil, cc.errorf("must be a string")
	}
	t, err := cc.c.locate(cc.res, s, cc.location())
	if err != nil {
		return nil, err
	}
	id, err := cc.c.compileAt(t.res.doc, t.ptr)
	if err != nil {
		return nil, err
	}
	cc.c.dynamic = true
	return recursiveRefKeyword{target: id, recursive: t.ptr == t.res.ptr && t.res.recursiveAnchor}, nil
}

func (k recursiveRefKeyword) eval(f *frame) {
	target := k.target
	if k.recursive {
		for _, ri := range f.e.scope {
			if id := f.e.g.resources[ri].recursive; id != noNode {
				target = id
				break
			}
		}
	}
	f.apply(target, f.kw)
}

// definitions / $defs are compiled eagerly so malformed definitions fail the
// build even when nothing references them.
func compileDefinitions(cc *compileCtx, v any) (keyword, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, cc.errorf("must be an object")
	}
	for _, name := range sortedKeys(m) {
		if _, err := cc.sub(name); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// annotation-only keywords

type annotationKeyword struct{ value any }

func compileAnnotation(_ *compileCtx, v any) (keyword, error) { return annotationKeyword{value: v}, nil }

func (k annotationKeyword) eval(f *frame) { f.annotate(k.value) }

// caller-registered keywords

type customKeyword struct{ k Keyword }

func (k customKeyword) eval(f *frame) {
	if ek, ok := k.k.(EvaluatingKeyword); ok {
		res := ek.Evaluate(f.inst)
		switch {
		case !res.Valid && res.Message != "":
			f.fail(CodeKeyword, "keyword_message", map[string]any{"keyword": f.kw, "message": res.Message})
		case !res.Valid:
			f.fail(CodeKeyword, "keyword", map[string]any{"keyword": f.kw})
		case res.Annotation != nil:
			f.annotate(res.Annotation)
		}
		return
	}
	if !k.k.IsValid(f.inst) {
		f.fail(CodeKeyword, "keyword", map[string]any{"keyword": f.kw})
	}
}

// messageParams renders error parameters for message templates. Schema values
// are rendered as JSON.
func messageParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch t := v.(type) {
		case string:
			out[k] = t
		case json.Number:
			out[k] = t.String()
		case int:
			out[k] = strconv.Itoa(t)
		default:
			if b, err := gojson.Marshal(v); err == nil {
				out[k] = string(b)
			} else {
				out[k] = fmt.Sprint(v)
			}
		}
	}
	return out
}
