package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja-JP")
	if Language() != "ja" {
		t.Fatalf("expected ja, got %q", Language())
	}
	if msg := T("required", map[string]string{"property": "name"}); msg != "必須プロパティ name が不足しています" {
		t.Fatalf("unexpected japanese message: %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	msg := T("invalid_type", map[string]string{"expected": "integer", "got": "string"})
	if msg != "expected integer, got string" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestTranslator_UnsupportedLanguageFallsBack(t *testing.T) {
	SetLanguage("fr")
	defer SetLanguage("en")
	if Language() != "en" {
		t.Fatalf("expected fallback to en, got %q", Language())
	}
	SetLanguage("not a tag!")
	if Language() != "en" {
		t.Fatalf("expected fallback to en, got %q", Language())
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("not", nil); msg != "X:not" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if Language() != "" {
		t.Fatalf("custom translator should report no language")
	}
}

func TestUnknownCodeReturnsCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
