package jsonskema

import (
	"math/big"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/reoring/jsonskema/format"
	"github.com/reoring/jsonskema/internal/value"
)

// type

var typeNames = map[string]bool{
	"null": true, "boolean": true, "object": true, "array": true,
	"number": true, "string": true, "integer": true,
}

type typeKeyword struct{ names []string }

func compileType(cc *compileCtx, v any) (keyword, error) {
	var names []string
	switch t := v.(type) {
	case string:
		names = []string{t}
	case []any:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, cc.errorf("must be a string or an array of strings")
			}
			names = append(names, s)
		}
	default:
		return nil, cc.errorf("must be a string or an array of strings")
	}
	for _, n := range names {
		if !typeNames[n] {
			return nil, cc.errorf("unknown type %q", n)
		}
	}
	return typeKeyword{names: names}, nil
}

func (k typeKeyword) eval(f *frame) {
	got := value.TypeName(f.inst)
	for _, n := range k.names {
		if n == got || (n == "number" && got == "integer") {
			return
		}
	}
	f.fail(CodeInvalidType, "invalid_type", map[string]any{"expected": strings.Join(k.names, " or "), "got": got})
}

// enum, const

type enumKeyword struct{ values []any }

func compileEnum(cc *compileCtx, v any) (keyword, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, cc.errorf("must be an array")
	}
	return enumKeyword{values: arr}, nil
}

func (k enumKeyword) eval(f *frame) {
	for _, v := range k.values {
		if value.Equal(f.inst, v) {
			return
		}
	}
	f.fail(CodeInvalidEnum, "invalid_enum", map[string]any{"allowed": k.values})
}

type constKeyword struct{ value any }

func compileConst(_ *compileCtx, v any) (keyword, error) { return constKeyword{value: v}, nil }

func (k constKeyword) eval(f *frame) {
	if !value.Equal(f.inst, k.value) {
		f.fail(CodeConst, "const", map[string]any{"expected": k.value})
	}
}

// numeric

func number(cc *compileCtx, v any) (*big.Rat, error) {
	if value.KindOf(v) == value.Number {
		if r, ok := value.Rat(v); ok {
			return r, nil
		}
	}
	return nil, cc.errorf("must be a number")
}

type multipleOfKeyword struct {
	divisor *big.Rat
	raw     any
}

func compileMultipleOf(cc *compileCtx, v any) (keyword, error) {
	r, err := number(cc, v)
	if err != nil {
		return nil, err
	}
	if r.Sign() <= 0 {
		return nil, cc.errorf("must be greater than 0")
	}
	return multipleOfKeyword{divisor: r, raw: v}, nil
}

func (k multipleOfKeyword) eval(f *frame) {
	r, ok := value.Rat(f.inst)
	if !ok {
		return
	}
	if !new(big.Rat).Quo(r, k.divisor).IsInt() {
		f.fail(CodeMultipleOf, "multiple_of", map[string]any{"divisor": k.raw, "got": f.inst})
	}
}

// boundKeyword implements maximum, minimum and their exclusive forms.
type boundKeyword struct {
	limit     *big.Rat
	raw       any
	upper     bool
	exclusive bool
}

func compileBound(cc *compileCtx, v any, upper, exclusive bool) (keyword, error) {
	r, err := number(cc, v)
	if err != nil {
		return nil, err
	}
	return boundKeyword{limit: r, raw: v, upper: upper, exclusive: exclusive}, nil
}

// Draft 4 reads the boolean exclusive flags next to maximum and minimum.
func compileMaximum(cc *compileCtx, v any) (keyword, error) {
	excl := false
	if cc.vocab().draft == Draft04 {
		excl, _ = cc.obj["exclusiveMaximum"].(bool)
	}
	return compileBound(cc, v, true, excl)
}

func compileMinimum(cc *compileCtx, v any) (keyword, error) {
	excl := false
	if cc.vocab().draft == Draft04 {
		excl, _ = cc.obj["exclusiveMinimum"].(bool)
	}
	return compileBound(cc, v, false, excl)
}

func compileExclusiveMaximum(cc *compileCtx, v any) (keyword, error) {
	return compileBound(cc, v, true, true)
}

func compileExclusiveMinimum(cc *compileCtx, v any) (keyword, error) {
	return compileBound(cc, v, false, true)
}

// compileExclusiveFlag validates the Draft 4 boolean form; maximum and minimum
// evaluate it.
func compileExclusiveFlag(cc *compileCtx, v any) (keyword, error) {
	if _, ok := v.(bool); !ok {
		return nil, cc.errorf("must be a boolean")
	}
	return nil, nil
}

func (k boundKeyword) eval(f *frame) {
	r, ok := value.Rat(f.inst)
	if !ok || value.KindOf(f.inst) != value.Number {
		return
	}
	c := r.Cmp(k.limit)
	switch {
	case k.upper && (c > 0 || (k.exclusive && c == 0)):
		key := "too_big"
		if k.exclusive {
			key = "too_big_exclusive"
		}
		f.fail(CodeTooBig, key, map[string]any{"max": k.raw, "got": f.inst})
	case !k.upper && (c < 0 || (k.exclusive && c == 0)):
		key := "too_small"
		if k.exclusive {
			key = "too_small_exclusive"
		}
		f.fail(CodeTooSmall, key, map[string]any{"min": k.raw, "got": f.inst})
	}
}

// size limits: strings, arrays and objects

func limit(cc *compileCtx, v any) (int, error) {
	n, ok := value.NonNegativeInt(v)
	if !ok {
		return 0, cc.errorf("must be a non-negative integer")
	}
	return n, nil
}

type sizeKind int

const (
	sizeString sizeKind = iota
	sizeArray
	sizeObject
)

type sizeKeyword struct {
	kind  sizeKind
	limit int
	upper bool
}

func compileSize(kind sizeKind, upper bool) compileFunc {
	return func(cc *compileCtx, v any) (keyword, error) {
		n, err := limit(cc, v)
		if err != nil {
			return nil, err
		}
		return sizeKeyword{kind: kind, limit: n, upper: upper}, nil
	}
}

var (
	compileMaxLength     = compileSize(sizeString, true)
	compileMinLength     = compileSize(sizeString, false)
	compileMaxItems      = compileSize(sizeArray, true)
	compileMinItems      = compileSize(sizeArray, false)
	compileMaxProperties = compileSize(sizeObject, true)
	compileMinProperties = compileSize(sizeObject, false)
)

func (k sizeKeyword) eval(f *frame) {
	var n int
	var tooBig, tooSmall string
	switch k.kind {
	case sizeString:
		s, ok := f.inst.(string)
		if !ok {
			return
		}
		n, tooBig, tooSmall = utf8.RuneCountInString(s), CodeTooLong, CodeTooShort
	case sizeArray:
		arr, ok := f.inst.([]any)
		if !ok {
			return
		}
		n, tooBig, tooSmall = len(arr), CodeTooManyItems, CodeTooFewItems
	case sizeObject:
		obj, ok := f.inst.(map[string]any)
		if !ok {
			return
		}
		n, tooBig, tooSmall = len(obj), CodeTooManyProperties, CodeTooFewProperties
	}
	switch {
	case k.upper && n > k.limit:
		f.fail(tooBig, tooBig, map[string]any{"max": k.limit, "got": n})
	case !k.upper && n < k.limit:
		f.fail(tooSmall, tooSmall, map[string]any{"min": k.limit, "got": n})
	}
}

// pattern

type patternKeyword struct {
	re  *regexp.Regexp
	src string
}

func compileRegexp(cc *compileCtx, src string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &BuildError{Kind: ErrInvalidSchema, Location: cc.location(), Keyword: cc.kw, Msg: "invalid regular expression", Err: err}
	}
	return re, nil
}

func compilePattern(cc *compileCtx, v any) (keyword, error) {
	s, ok := v.(string)
	if !ok {
		return nil, cc.errorf("must be a string")
	}
	re, err := compileRegexp(cc, s)
	if err != nil {
		return nil, err
	}
	return patternKeyword{re: re, src: s}, nil
}

func (k patternKeyword) eval(f *frame) {
	if s, ok := f.inst.(string); ok && !k.re.MatchString(s) {
		f.fail(CodePattern, "pattern", map[string]any{"pattern": k.src})
	}
}

// format

type formatKeyword struct {
	name   string
	check  Format // nil for unknown formats
	assert bool
}

// compileFormat prefers caller-registered formats, which always assert. Built-in
// formats assert in Draft 4/6/7 and only annotate in 2019-09 and later unless
// the builder overrides it.
func compileFormat(cc *compileCtx, v any) (keyword, error) {
	name, ok := v.(string)
	if !ok {
		return nil, cc.errorf("must be a string")
	}
	if f, ok := cc.c.opts.formats[name]; ok {
		return formatKeyword{name: name, check: f, assert: true}, nil
	}
	assert := cc.vocab().formatAssertion
	if cc.c.opts.formatAssertion != nil {
		assert = *cc.c.opts.formatAssertion
	}
	if fn, ok := format.Lookup(name); ok {
		return formatKeyword{name: name, check: FormatFunc(fn), assert: assert}, nil
	}
	cc.c.diag.warnf("unknown format %q at %s", name, cc.location())
	return formatKeyword{name: name}, nil
}

func (k formatKeyword) eval(f *frame) {
	if s, ok := f.inst.(string); ok && k.assert && k.check != nil && !k.check.IsValid(s) {
		f.fail(CodeInvalidFormat, "invalid_format", map[string]any{"format": k.name})
		return
	}
	f.annotate(k.name)
}

// uniqueItems

type uniqueItemsKeyword struct{}

func compileUniqueItems(cc *compileCtx, v any) (keyword, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, cc.errorf("must be a boolean")
	}
	if !b {
		return nil, nil
	}
	return uniqueItemsKeyword{}, nil
}

func (uniqueItemsKeyword) eval(f *frame) {
	arr, ok := f.inst.([]any)
	if !ok {
		return
	}
	for i := 1; i < len(arr); i++ {
		for j := 0; j < i; j++ {
			if value.Equal(arr[i], arr[j]) {
				f.fail(CodeUniqueItems, "unique_items", map[string]any{"first": j, "second": i})
				return
			}
		}
	}
}

// required, dependentRequired

func stringList(cc *compileCtx, v any) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, cc.errorf("must be an array of strings")
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, cc.errorf("must be an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

type requiredKeyword struct{ names []string }

func compileRequired(cc *compileCtx, v any) (keyword, error) {
	names, err := stringList(cc, v)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return requiredKeyword{names: names}, nil
}

func (k requiredKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	for _, name := range k.names {
		if f.done() {
			return
		}
		if _, ok := obj[name]; !ok {
			f.fail(CodeRequired, "required", map[string]any{"property": name})
		}
	}
}

type dependentRequired struct {
	property string
	required []string
}

type dependentRequiredKeyword struct{ deps []dependentRequired }

func compileDependentRequired(cc *compileCtx, v any) (keyword, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, cc.errorf("must be an object")
	}
	var k dependentRequiredKeyword
	for _, name := range sortedKeys(m) {
		req, err := stringList(cc, m[name])
		if err != nil {
			return nil, err
		}
		k.deps = append(k.deps, dependentRequired{property: name, required: req})
	}
	return k, nil
}

func (k dependentRequiredKeyword) eval(f *frame) {
	obj, ok := f.inst.(map[string]any)
	if !ok {
		return
	}
	for _, d := range k.deps {
		checkDependentRequired(f, obj, d)
	}
}

func checkDependentRequired(f *frame, obj map[string]any, d dependentRequired) {
	if _, present := obj[d.property]; !present {
		return
	}
	for _, r := range d.required {
		if f.done() {
			return
		}
		if _, ok := obj[r]; !ok {
			f.fail(CodeDependentRequired, "dependent_required", map[string]any{"property": d.property, "dependency": r})
		}
	}
}
