package i18n

import "testing"

func TestTranslationsComplete(t *testing.T) {
	for _, lang := range AvailableLanguages() {
		for key := range translations[RU] {
			if _, ok := translations[lang][key]; !ok {
				t.Errorf("%s: missing key %q", lang, key)
			}
		}
	}
}

func TestFallbackToKey(t *testing.T) {
	defer SetLanguage(GetLanguage())

	SetLanguage(EN)
	if got := T("tray_quit"); got != "Quit" {
		t.Errorf("T(tray_quit) = %q", got)
	}
	if got := T("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key = %q", got)
	}

	SetLanguage("de")
	if got := T("tray_quit"); got != "tray_quit" {
		t.Errorf("unknown language = %q", got)
	}
}
