package dialog

import (
	"testing"

	"playkeys/internal/i18n"
	"playkeys/internal/shortcuts"
)

func TestFormatShortcuts(t *testing.T) {
	defer i18n.SetLanguage(i18n.GetLanguage())
	i18n.SetLanguage(i18n.EN)

	got := FormatShortcuts([]shortcuts.Binding{
		{Scope: shortcuts.ScopeGlobal, Accel: "Shift+L", Action: shortcuts.Dislike},
		{Scope: shortcuts.ScopeLocal, Accel: "CommandOrControl+F", Action: shortcuts.Search},
	})
	want := "Shift+L             dislike (global)\n" +
		"CommandOrControl+F  search (window)"
	if got != want {
		t.Errorf("FormatShortcuts:\n%s\nwant:\n%s", got, want)
	}

	if got := FormatShortcuts(nil); got != "No shortcuts registered" {
		t.Errorf("empty = %q", got)
	}
}
