package translate

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCatalog_PlainJSON(t *testing.T) {
	want := Catalog{"appTitle": "Leasing Tracker", "saveHint": "s save"}
	got, err := parseCatalog(`{"appTitle": "Ufuatiliaji", "saveHint": "s hifadhi"}`, want)
	if err != nil {
		t.Fatalf("parseCatalog error: %v", err)
	}
	if got["appTitle"] != "Ufuatiliaji" || got["saveHint"] != "s hifadhi" {
		t.Fatalf("unexpected catalog: %v", got)
	}
}

func TestParseCatalog_StripsMarkdownFences(t *testing.T) {
	want := Catalog{"appTitle": "Leasing Tracker"}
	response := "```json\n{\"appTitle\": \"Ufuatiliaji\"}\n```"
	got, err := parseCatalog(response, want)
	if err != nil {
		t.Fatalf("parseCatalog error: %v", err)
	}
	if got["appTitle"] != "Ufuatiliaji" {
		t.Fatalf("unexpected catalog: %v", got)
	}
}

func TestParseCatalog_TrimsValues(t *testing.T) {
	want := Catalog{"appTitle": "Leasing Tracker"}
	got, err := parseCatalog(`{"appTitle": "  Ufuatiliaji  "}`, want)
	if err != nil {
		t.Fatalf("parseCatalog error: %v", err)
	}
	if got["appTitle"] != "Ufuatiliaji" {
		t.Fatalf("expected trimmed value, got %q", got["appTitle"])
	}
}

func TestParseCatalog_RejectsDriftedShapes(t *testing.T) {
	want := Catalog{"appTitle": "Leasing Tracker", "saveHint": "s save"}

	cases := []struct {
		name     string
		response string
	}{
		{"not json", "sorry, here is the translation:"},
		{"missing key", `{"appTitle": "Ufuatiliaji"}`},
		{"extra key", `{"appTitle": "A", "saveHint": "B", "bonus": "C"}`},
		{"empty value", `{"appTitle": "A", "saveHint": "   "}`},
	}
	for _, tc := range cases {
		got, err := parseCatalog(tc.response, want)
		if err == nil {
			t.Fatalf("%s: expected error, got %v", tc.name, got)
		}
		var te *Error
		if !errors.As(err, &te) {
			t.Fatalf("%s: expected *Error, got %T", tc.name, err)
		}
		if got != nil {
			t.Fatalf("%s: a failed parse must not return a partial catalog", tc.name)
		}
	}
}

func TestBuildPromptIsStable(t *testing.T) {
	catalog := DefaultCatalog()
	a, err := buildPrompt("Swahili", catalog)
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	b, err := buildPrompt("Swahili", catalog)
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	if a != b {
		t.Fatalf("prompt must be deterministic for the same catalog")
	}
	if !strings.Contains(a, "Swahili") {
		t.Fatalf("prompt does not name the target language")
	}
	if !strings.Contains(a, `"appTitle"`) {
		t.Fatalf("prompt does not embed the catalog")
	}
}

func TestTranslateCatalogRequiresLanguageAndKey(t *testing.T) {
	c := NewClient(Config{})
	if _, err := c.TranslateCatalog(t.Context(), "", DefaultCatalog()); err == nil {
		t.Fatalf("expected error for empty language")
	}
	_, err := c.TranslateCatalog(t.Context(), "Swahili", DefaultCatalog())
	if err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Fatalf("unexpected error: %v", err)
	}
}
