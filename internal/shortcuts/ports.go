package shortcuts

import "sync"

// Scope область действия сочетания.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// Window окно приложения. Локальные сочетания срабатывают только пока
// оно в фокусе.
type Window interface {
	// Bind привязывает сочетание к обработчику в таблице клавиш окна.
	Bind(accel string, fn func()) error
	// ResetKeys снимает все привязки окна.
	ResetKeys()
	// Raise выводит окно на передний план.
	Raise()
}

// GlobalRegistrar регистрирует сочетание в ОС, независимо от фокуса.
type GlobalRegistrar interface {
	Register(accel string, fn func()) error
}

// LocalRegistrar регистрирует сочетание в пределах окна.
type LocalRegistrar interface {
	Register(win Window, accel string, fn func()) error
}

// MediaSession интеграция с системной медиасессией. Есть только на
// поддерживаемых платформах, на остальных handle равен nil.
type MediaSession interface {
	Activate(win Window) error
}

// Resetter снимает все сделанные регистрации. Реализуется регистраторами
// и медиасессией, если они это умеют.
type Resetter interface {
	Reset() error
}

// WindowRegistrar локальный регистратор, который пишет прямо в таблицу
// клавиш окна.
type WindowRegistrar struct {
	mu      sync.Mutex
	windows []Window
}

// Register привязывает сочетание в окне win.
func (r *WindowRegistrar) Register(win Window, accel string, fn func()) error {
	if err := win.Bind(accel, fn); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.windows {
		if w == win {
			return nil
		}
	}
	r.windows = append(r.windows, win)
	return nil
}

// Reset снимает привязки во всех окнах, куда что-либо регистрировалось.
func (r *WindowRegistrar) Reset() error {
	r.mu.Lock()
	windows := r.windows
	r.windows = nil
	r.mu.Unlock()

	for _, w := range windows {
		w.ResetKeys()
	}
	return nil
}
