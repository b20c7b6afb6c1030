package app

import (
	"testing"

	"playkeys/internal/config"
	"playkeys/internal/i18n"
	"playkeys/internal/shortcuts"
)

func TestSameShortcuts(t *testing.T) {
	base := config.Shortcuts{
		Global: config.Mapping{"like": "Shift+L"},
		Local:  config.Mapping{"next": "N"},
	}

	if !sameShortcuts(base, base.Clone()) {
		t.Error("clone must be equal")
	}

	changed := base.Clone()
	changed.Global["like"] = "Shift+K"
	if sameShortcuts(base, changed) {
		t.Error("changed accelerator not detected")
	}

	override := base.Clone()
	override.OverrideMediaKeys = true
	if sameShortcuts(base, override) {
		t.Error("override flag not detected")
	}

	if !sameShortcuts(config.Shortcuts{}, config.Shortcuts{Global: config.Mapping{}}) {
		t.Error("nil and empty mappings are equal")
	}
}

type fakeNotifier struct{ errors []string }

func (n *fakeNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

func TestReportUnclaimed(t *testing.T) {
	defer i18n.SetLanguage(i18n.GetLanguage())
	i18n.SetLanguage(i18n.EN)

	n := &fakeNotifier{}
	reportUnclaimed(n, nil)
	if len(n.errors) != 0 {
		t.Fatalf("nothing missing, got %v", n.errors)
	}

	plan := []shortcuts.Binding{
		{Scope: shortcuts.ScopeGlobal, Accel: "Shift+L", Action: shortcuts.Like},
		{Scope: shortcuts.ScopeGlobal, Accel: "Space", Action: shortcuts.PlayPause},
		{Scope: shortcuts.ScopeLocal, Accel: "CommandOrControl+F", Action: shortcuts.Search},
	}
	// Space занят другой программой
	reportUnclaimed(n, shortcuts.Missing(plan, []string{"Shift+L"}, []string{"CommandOrControl+F"}))
	if len(n.errors) != 1 || n.errors[0] != "Shortcuts not registered: Space" {
		t.Errorf("errors = %q", n.errors)
	}
}

func TestIdentitiesUsePlatformRules(t *testing.T) {
	ids := Identities()
	if ids.Global == nil || ids.Local == nil {
		t.Fatal("identities must be set for both scopes")
	}
	if _, err := ids.Local("MediaPlayPause"); err == nil {
		t.Error("media keys never reach the window")
	}
	a, _ := ids.Global("Shift+L")
	b, _ := ids.Global("Shift+Shift+L")
	if a == "" || a != b {
		t.Errorf("Shift+L = %q, Shift+Shift+L = %q", a, b)
	}
}
