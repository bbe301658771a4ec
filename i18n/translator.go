package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for validation error codes.
// data provides the parameters referenced by the message template (for example,
// "expected" or "property").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct {
	lang string
	dict map[string]string
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := t.dict[code]
	if !ok {
		if tmpl, ok = english[code]; !ok {
			return code
		}
	}
	return expand(tmpl, data)
}

// expand substitutes {name} placeholders. Unknown placeholders are left as-is.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en", dict: english}
)

// SetLanguage switches the built-in Translator language. lang is a BCP 47 tag
// ("ja", "ja-JP", "en-US"); anything unsupported falls back to English.
func SetLanguage(lang string) {
	tr := dictTranslator{lang: "en", dict: english}
	if tag, err := language.Parse(lang); err == nil {
		matched, _, _ := matcher.Match(tag)
		if base, _ := matched.Base(); base.String() == "ja" {
			tr = dictTranslator{lang: "ja", dict: japanese}
		}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// Language reports the language of the built-in Translator, or "" when a custom
// Translator is installed.
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := currentTranslator.(dictTranslator); ok {
		return d.lang
	}
	return ""
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en", dict: english}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
