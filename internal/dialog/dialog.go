// Package dialog предоставляет GUI диалоги приложения.
package dialog

import (
	"fmt"
	"strings"

	"github.com/ncruces/zenity"

	"playkeys/internal/i18n"
	"playkeys/internal/shortcuts"
)

// FormatShortcuts формирует текст списка сочетаний.
func FormatShortcuts(bindings []shortcuts.Binding) string {
	if len(bindings) == 0 {
		return i18n.T("dialog_no_shortcuts")
	}

	width := 0
	for _, b := range bindings {
		if len(b.Accel) > width {
			width = len(b.Accel)
		}
	}

	var sb strings.Builder
	for i, b := range bindings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-*s  %s (%s)", width, b.Accel, b.Action, ScopeName(b.Scope))
	}
	return sb.String()
}

// ScopeName возвращает название области на текущем языке.
func ScopeName(s shortcuts.Scope) string {
	if s == shortcuts.ScopeGlobal {
		return i18n.T("dialog_scope_global")
	}
	return i18n.T("dialog_scope_local")
}

// ShowShortcuts показывает список зарегистрированных сочетаний.
func ShowShortcuts(bindings []shortcuts.Binding) {
	ShowInfo(i18n.T("dialog_shortcuts"), FormatShortcuts(bindings))
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}
