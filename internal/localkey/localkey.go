// Package localkey сопоставляет события клавиатуры окна Gio с привязанными
// сочетаниями. События приходят только пока окно в фокусе.
package localkey

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"gioui.org/io/event"
	"gioui.org/io/key"

	"playkeys/internal/accel"
)

var (
	ErrAlreadyClaimed = errors.New("сочетание уже занято в окне")
	ErrUnsupported    = errors.New("клавиша недоступна в окне")
)

type entry struct {
	accel string
	name  key.Name
	mods  key.Modifiers
	fn    func()
}

// Table таблица локальных сочетаний одного окна.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
	filters []event.Filter
}

// NewTable создаёт пустую таблицу.
func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// Bind привязывает сочетание s к fn. Физически одинаковые сочетания
// занимаются один раз, первое побеждает.
func (t *Table) Bind(s string, fn func()) error {
	name, mods, err := parse(s)
	if err != nil {
		return err
	}
	id := identity(name, mods)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.entries[id]; ok {
		return fmt.Errorf("%s (занято %s): %w", s, prev.accel, ErrAlreadyClaimed)
	}
	t.entries[id] = &entry{accel: s, name: name, mods: mods, fn: fn}
	t.filters = nil
	return nil
}

// Reset снимает все привязки.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[string]*entry)
	t.filters = nil
}

// Filters возвращает фильтры событий для gtx.Event.
func (t *Table) Filters() []event.Filter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.filters == nil {
		t.filters = make([]event.Filter, 0, len(t.entries))
		for _, e := range t.entries {
			t.filters = append(t.filters, key.Filter{Name: e.name, Required: e.mods})
		}
	}
	return t.filters
}

// Handle вызывает обработчик, если событие совпало с привязкой.
// Учитываются только нажатия.
func (t *Table) Handle(ev key.Event) bool {
	if ev.State != key.Press {
		return false
	}

	t.mu.Lock()
	e, ok := t.entries[identity(ev.Name, ev.Modifiers)]
	t.mu.Unlock()

	if !ok {
		return false
	}
	e.fn()
	return true
}

// Bindings возвращает привязанные сочетания в исходной записи.
func (t *Table) Bindings() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.accel)
	}
	slices.Sort(out)
	return out
}

// Identity возвращает идентичность сочетания в окне: сочетания с одной
// идентичностью Bind считает одним. Для клавиш, которых окно не получает,
// возвращает ErrUnsupported.
func Identity(s string) (string, error) {
	name, mods, err := parse(s)
	if err != nil {
		return "", err
	}
	return identity(name, mods), nil
}

func parse(s string) (key.Name, key.Modifiers, error) {
	a, err := accel.Parse(s)
	if err != nil {
		return "", 0, err
	}
	name, mods, err := resolve(a)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", s, err)
	}
	return name, mods, nil
}

func identity(name key.Name, mods key.Modifiers) string {
	return fmt.Sprintf("%d/%s", mods, name)
}

var modifierMap = map[accel.Modifier]key.Modifiers{
	accel.ModCmdOrCtrl: key.ModShortcut,
	accel.ModCtrl:      key.ModCtrl,
	accel.ModCmd:       key.ModCommand,
	accel.ModAlt:       key.ModAlt,
	accel.ModShift:     key.ModShift,
	accel.ModSuper:     key.ModSuper,
}

var nameMap = map[accel.Key]key.Name{
	accel.KeySpace:     key.NameSpace,
	accel.KeyTab:       key.NameTab,
	accel.KeyReturn:    key.NameReturn,
	accel.KeyEscape:    key.NameEscape,
	accel.KeyBackspace: key.NameDeleteBackward,
	accel.KeyDelete:    key.NameDeleteForward,
	accel.KeyHome:      key.NameHome,
	accel.KeyEnd:       key.NameEnd,
	accel.KeyPageUp:    key.NamePageUp,
	accel.KeyPageDown:  key.NamePageDown,
	accel.KeyUp:        key.NameUpArrow,
	accel.KeyDown:      key.NameDownArrow,
	accel.KeyLeft:      key.NameLeftArrow,
	accel.KeyRight:     key.NameRightArrow,
	accel.KeyPlus:      "+",
	"F1":               key.NameF1,
	"F2":               key.NameF2,
	"F3":               key.NameF3,
	"F4":               key.NameF4,
	"F5":               key.NameF5,
	"F6":               key.NameF6,
	"F7":               key.NameF7,
	"F8":               key.NameF8,
	"F9":               key.NameF9,
	"F10":              key.NameF10,
	"F11":              key.NameF11,
	"F12":              key.NameF12,
}

func resolve(a accel.Accelerator) (key.Name, key.Modifiers, error) {
	// Медиаклавиши приходят через ОС, а не в окно
	if a.Key.IsMedia() {
		return "", 0, ErrUnsupported
	}

	var mods key.Modifiers
	for _, m := range a.Mods.List() {
		mods |= modifierMap[m]
	}

	if name, ok := nameMap[a.Key]; ok {
		return name, mods, nil
	}
	// Буквы, цифры и знаки Gio называет так же, буквы в верхнем регистре
	if len(a.Key) == 1 {
		return key.Name(a.Key), mods, nil
	}
	return "", 0, ErrUnsupported
}
