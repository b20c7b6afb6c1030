// Package accel разбирает строки сочетаний клавиш вида "CommandOrControl+Shift+F".
package accel

import (
	"errors"
	"fmt"
	"strings"
)

// Modifier набор модификаторов (битовая маска).
type Modifier uint8

const (
	ModCmdOrCtrl Modifier = 1 << iota // Cmd на macOS, Ctrl на остальных
	ModCtrl
	ModCmd
	ModAlt
	ModShift
	ModSuper
)

// Порядок вывода модификаторов в каноническом виде.
var modifierOrder = []Modifier{ModCmdOrCtrl, ModCtrl, ModCmd, ModAlt, ModShift, ModSuper}

var modifierNames = map[Modifier]string{
	ModCmdOrCtrl: "CmdOrCtrl",
	ModCtrl:      "Ctrl",
	ModCmd:       "Cmd",
	ModAlt:       "Alt",
	ModShift:     "Shift",
	ModSuper:     "Super",
}

// Синонимы модификаторов (в нижнем регистре).
var modifierAliases = map[string]Modifier{
	"commandorcontrol": ModCmdOrCtrl,
	"cmdorctrl":        ModCmdOrCtrl,
	"control":          ModCtrl,
	"ctrl":             ModCtrl,
	"command":          ModCmd,
	"cmd":              ModCmd,
	"alt":              ModAlt,
	"option":           ModAlt,
	"shift":            ModShift,
	"super":            ModSuper,
	"meta":             ModSuper,
}

// Has возвращает true если m содержит все биты mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// List возвращает отдельные модификаторы в каноническом порядке.
func (m Modifier) List() []Modifier {
	mods := make([]Modifier, 0, len(modifierOrder))
	for _, mod := range modifierOrder {
		if m.Has(mod) {
			mods = append(mods, mod)
		}
	}
	return mods
}

func (m Modifier) String() string {
	parts := make([]string, 0, len(modifierOrder))
	for _, mod := range m.List() {
		parts = append(parts, modifierNames[mod])
	}
	return strings.Join(parts, "+")
}

var (
	ErrEmpty           = errors.New("пустое сочетание")
	ErrMalformed       = errors.New("некорректное сочетание")
	ErrUnknownModifier = errors.New("неизвестный модификатор")
	ErrUnknownKey      = errors.New("неизвестная клавиша")
)

// Accelerator разобранное сочетание: модификаторы и одна клавиша.
type Accelerator struct {
	Mods Modifier
	Key  Key
}

// String возвращает каноническую запись. Два сочетания с одинаковой
// канонической записью описывают одну и ту же физическую комбинацию.
func (a Accelerator) String() string {
	if a.Mods == 0 {
		return string(a.Key)
	}
	return a.Mods.String() + "+" + string(a.Key)
}

// Parse разбирает строку сочетания. Повторы модификаторов схлопываются,
// поэтому "Shift+Shift+L" равно "Shift+L".
func Parse(s string) (Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Accelerator{}, ErrEmpty
	}

	parts := strings.Split(s, "+")
	var a Accelerator
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Accelerator{}, fmt.Errorf("%q: %w", s, ErrMalformed)
		}

		// Последний элемент всегда клавиша
		if i == len(parts)-1 {
			k, ok := lookupKey(part)
			if !ok {
				return Accelerator{}, fmt.Errorf("%q: %w: %s", s, ErrUnknownKey, part)
			}
			a.Key = k
			break
		}

		mod, ok := modifierAliases[strings.ToLower(part)]
		if !ok {
			return Accelerator{}, fmt.Errorf("%q: %w: %s", s, ErrUnknownModifier, part)
		}
		a.Mods |= mod
	}
	return a, nil
}

// MustParse как Parse, но паникует на ошибке. Только для констант.
func MustParse(s string) Accelerator {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Normalize возвращает каноническую запись строки сочетания.
func Normalize(s string) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
