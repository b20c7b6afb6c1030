package shortcuts

// modifierCombinations префиксы, которыми расширяются сочетания
// "по-настоящему глобальных" действий.
var modifierCombinations = []string{
	"CmdOrCtrl+Shift+Alt",
	"CmdOrCtrl+Shift",
	"CmdOrCtrl+Alt",
	"Shift+Alt",
	"CmdOrCtrl",
	"Shift",
	"Alt",
}

// Действия, которые срабатывают при любом наборе зажатых модификаторов.
var trulyGlobal = map[Action]bool{
	GoBack:    true,
	GoForward: true,
	Like:      true,
	Dislike:   true,
}

// ModifierCombinations возвращает копию списка префиксов расширения.
func ModifierCombinations() []string {
	return append([]string(nil), modifierCombinations...)
}

// IsTrulyGlobal сообщает, расширяется ли действие в глобальной области.
func IsTrulyGlobal(a Action) bool {
	return trulyGlobal[a]
}

// Expand возвращает все сочетания, которые должны вызывать действие
// в глобальной области. Базовое сочетание всегда идёт первым.
// Пустую base вызывающий обязан пропустить сам.
func Expand(base string, a Action) []string {
	if !IsTrulyGlobal(a) {
		return []string{base}
	}

	out := make([]string, 0, 1+len(modifierCombinations))
	out = append(out, base)
	for _, prefix := range modifierCombinations {
		out = append(out, prefix+"+"+base)
	}
	return out
}
