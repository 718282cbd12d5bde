package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", map[string]string{"property": "title"}); msg != "required property 'title' missing" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", map[string]string{"property": "title"}); msg == "required property 'title' missing" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("io", nil); msg != "X:io" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("io", nil); msg != "i/o error" {
		t.Fatalf("nil should restore default, got %q", msg)
	}
}
