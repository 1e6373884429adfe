package translate

import "testing"

func TestMerge(t *testing.T) {
	stored := map[string]string{
		KeyAppTitle: "Ufuatiliaji wa Upangishaji",
		KeySaveHint: "",        // empty values are ignored
		"obsolete":  "dropped", // unknown keys are ignored
	}

	got := Merge(stored)
	if got[KeyAppTitle] != "Ufuatiliaji wa Upangishaji" {
		t.Fatalf("stored translation not applied: %q", got[KeyAppTitle])
	}
	if got[KeySaveHint] != DefaultCatalog()[KeySaveHint] {
		t.Fatalf("empty stored value must fall back to the default")
	}
	if _, ok := got["obsolete"]; ok {
		t.Fatalf("unknown stored key leaked into the catalog")
	}
	// Keys the stored map never saw keep their defaults.
	if got[KeyColStatus] != "Status" {
		t.Fatalf("untranslated key lost its default: %q", got[KeyColStatus])
	}
}

func TestDefaultCatalogHasNoEmptyValues(t *testing.T) {
	for k, v := range DefaultCatalog() {
		if v == "" {
			t.Fatalf("default catalog has empty value for %q", k)
		}
	}
}
