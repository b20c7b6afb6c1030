// Package hotkey предоставляет глобальные горячие клавиши.
package hotkey

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"playkeys/internal/accel"
)

var (
	ErrAlreadyClaimed = errors.New("сочетание уже занято")
	ErrUnsupported    = errors.New("клавиша не поддерживается на этой платформе")
)

// repeatGap минимальная пауза между отпусканием и новым нажатием.
// Автоповтор X11 присылает пары отпускание/нажатие почти без паузы.
const repeatGap = 30 * time.Millisecond

// heldTimeout после такой паузы без нажатий клавиша считается отпущенной,
// даже если отпускание не пришло.
const heldTimeout = time.Second

// unregisterTimeout сколько ждать отмены регистрации в ОС.
const unregisterTimeout = 500 * time.Millisecond

type binding struct {
	accel  string
	hk     *hotkey.Hotkey
	stopCh chan struct{}
}

// Registrar регистрирует сочетания в ОС. Каждое физическое сочетание
// занимается один раз: повторная регистрация возвращает ErrAlreadyClaimed.
type Registrar struct {
	mu       sync.Mutex
	bindings map[string]*binding
}

// NewRegistrar создаёт пустой регистратор.
func NewRegistrar() *Registrar {
	return &Registrar{bindings: make(map[string]*binding)}
}

// Register регистрирует сочетание s в ОС и вызывает fn при каждом нажатии.
func (r *Registrar) Register(s string, fn func()) error {
	mods, key, err := parse(s)
	if err != nil {
		return err
	}
	id := identity(mods, key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.bindings[id]; ok {
		return fmt.Errorf("%s (занято %s): %w", s, prev.accel, ErrAlreadyClaimed)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("регистрация %s: %w", s, err)
	}

	b := &binding{accel: s, hk: hk, stopCh: make(chan struct{})}
	r.bindings[id] = b
	go listen(hk, b.stopCh, fn)
	return nil
}

// Identity возвращает физическую идентичность сочетания на текущей
// платформе. Сочетания с одинаковой идентичностью Register считает
// одним. Для недоступных клавиш возвращает ErrUnsupported.
func Identity(s string) (string, error) {
	mods, key, err := parse(s)
	if err != nil {
		return "", err
	}
	return identity(mods, key), nil
}

func parse(s string) ([]hotkey.Modifier, hotkey.Key, error) {
	a, err := accel.Parse(s)
	if err != nil {
		return nil, 0, err
	}
	mods, key, err := resolve(a)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", s, err)
	}
	return mods, key, nil
}

func listen(hk *hotkey.Hotkey, stopCh chan struct{}, fn func()) {
	var f repeatFilter

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			if f.down(time.Now()) {
				fn()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
			f.up(time.Now())
		}
	}
}

// repeatFilter отсекает автоповтор удерживаемой клавиши: нажатие
// срабатывает только после отпускания. Быстрые повторные нажатия
// проходят все.
type repeatFilter struct {
	held     bool
	lastDown time.Time
	lastUp   time.Time
}

func (f *repeatFilter) down(now time.Time) bool {
	fire := (!f.held && now.Sub(f.lastUp) >= repeatGap) ||
		now.Sub(f.lastDown) >= heldTimeout
	f.held = true
	f.lastDown = now
	return fire
}

func (f *repeatFilter) up(now time.Time) {
	f.held = false
	f.lastUp = now
}

// Claimed возвращает зарегистрированные сочетания в исходной записи.
func (r *Registrar) Claimed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b.accel)
	}
	slices.Sort(out)
	return out
}

// Reset отменяет все регистрации.
func (r *Registrar) Reset() error {
	r.mu.Lock()
	bindings := r.bindings
	r.bindings = make(map[string]*binding)
	r.mu.Unlock()

	var errs []error
	for _, b := range bindings {
		close(b.stopCh)
		if err := unregister(b.hk); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.accel, err))
		}
	}
	return errors.Join(errs...)
}

// unregister отменяет регистрацию с таймаутом: на некоторых платформах
// вызов может зависнуть.
func unregister(hk *hotkey.Hotkey) error {
	done := make(chan error, 1)
	go func() {
		done <- hk.Unregister()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(unregisterTimeout):
		log.Printf("Hotkey unregister timeout")
		return nil
	}
}

// resolve переводит сочетание в модификаторы и клавишу ОС.
func resolve(a accel.Accelerator) ([]hotkey.Modifier, hotkey.Key, error) {
	mods := make([]hotkey.Modifier, 0, 4)
	for _, m := range a.Mods.List() {
		mod, ok := modifierMap[m]
		if !ok {
			return nil, 0, fmt.Errorf("модификатор %v: %w", m, ErrUnsupported)
		}
		// CmdOrCtrl и Ctrl на Linux/Windows дают одно и то же
		if !slices.Contains(mods, mod) {
			mods = append(mods, mod)
		}
	}
	slices.Sort(mods)

	var key hotkey.Key
	var ok bool
	if a.Key.IsMedia() {
		key, ok = mediaKeyMap[a.Key]
	} else if key, ok = keyMap[a.Key]; !ok {
		key, ok = punctKeyMap[a.Key]
	}
	if !ok {
		return nil, 0, fmt.Errorf("клавиша %s: %w", a.Key, ErrUnsupported)
	}
	return mods, key, nil
}

func identity(mods []hotkey.Modifier, key hotkey.Key) string {
	return fmt.Sprintf("%v/%d", mods, key)
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// modifierMap, mediaKeyMap и punctKeyMap определены в platform-specific файлах:
// - modifiers_linux.go
// - modifiers_darwin.go
// - modifiers_windows.go

// keyMap маппинг accel.Key -> hotkey.Key
var keyMap = map[accel.Key]hotkey.Key{
	accel.KeySpace:  hotkey.KeySpace,
	accel.KeyReturn: hotkey.KeyReturn,
	accel.KeyTab:    hotkey.KeyTab,
	accel.KeyEscape: hotkey.KeyEscape,
	accel.KeyDelete: hotkey.KeyDelete,
	accel.KeyUp:     hotkey.KeyUp,
	accel.KeyDown:   hotkey.KeyDown,
	accel.KeyLeft:   hotkey.KeyLeft,
	accel.KeyRight:  hotkey.KeyRight,
	"0":             hotkey.Key0,
	"1":             hotkey.Key1,
	"2":             hotkey.Key2,
	"3":             hotkey.Key3,
	"4":             hotkey.Key4,
	"5":             hotkey.Key5,
	"6":             hotkey.Key6,
	"7":             hotkey.Key7,
	"8":             hotkey.Key8,
	"9":             hotkey.Key9,
	"A":             hotkey.KeyA,
	"B":             hotkey.KeyB,
	"C":             hotkey.KeyC,
	"D":             hotkey.KeyD,
	"E":             hotkey.KeyE,
	"F":             hotkey.KeyF,
	"G":             hotkey.KeyG,
	"H":             hotkey.KeyH,
	"I":             hotkey.KeyI,
	"J":             hotkey.KeyJ,
	"K":             hotkey.KeyK,
	"L":             hotkey.KeyL,
	"M":             hotkey.KeyM,
	"N":             hotkey.KeyN,
	"O":             hotkey.KeyO,
	"P":             hotkey.KeyP,
	"Q":             hotkey.KeyQ,
	"R":             hotkey.KeyR,
	"S":             hotkey.KeyS,
	"T":             hotkey.KeyT,
	"U":             hotkey.KeyU,
	"V":             hotkey.KeyV,
	"W":             hotkey.KeyW,
	"X":             hotkey.KeyX,
	"Y":             hotkey.KeyY,
	"Z":             hotkey.KeyZ,
	"F1":            hotkey.KeyF1,
	"F2":            hotkey.KeyF2,
	"F3":            hotkey.KeyF3,
	"F4":            hotkey.KeyF4,
	"F5":            hotkey.KeyF5,
	"F6":            hotkey.KeyF6,
	"F7":            hotkey.KeyF7,
	"F8":            hotkey.KeyF8,
	"F9":            hotkey.KeyF9,
	"F10":           hotkey.KeyF10,
	"F11":           hotkey.KeyF11,
	"F12":           hotkey.KeyF12,
	"F13":           hotkey.KeyF13,
	"F14":           hotkey.KeyF14,
	"F15":           hotkey.KeyF15,
	"F16":           hotkey.KeyF16,
	"F17":           hotkey.KeyF17,
	"F18":           hotkey.KeyF18,
	"F19":           hotkey.KeyF19,
	"F20":           hotkey.KeyF20,
}
