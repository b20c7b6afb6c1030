// Package shortcuts связывает действия воспроизведения с сочетаниями клавиш
// в глобальной (ОС) и локальной (окно) областях.
package shortcuts

import (
	"errors"
	"log"
	"sync"

	"playkeys/internal/config"
)

// Встроенные сочетания.
const (
	mediaPlayPause     = "MediaPlayPause"
	mediaNextTrack     = "MediaNextTrack"
	mediaPreviousTrack = "MediaPreviousTrack"
)

var searchAccelerators = []string{"CommandOrControl+F", "CommandOrControl+L"}

// Options внешние примитивы, от которых зависит движок.
type Options struct {
	Global GlobalRegistrar
	Local  LocalRegistrar
	// Media nil на платформах без системной медиасессии.
	Media MediaSession
}

// Engine регистрирует встроенные и настроенные сочетания.
type Engine struct {
	mu      sync.Mutex
	ctl     Controls
	win     Window
	opts    Options
	started bool
}

// New создаёт движок для окна win и источника команд ctl.
func New(ctl Controls, win Window, opts Options) *Engine {
	return &Engine{
		ctl:  ctl,
		win:  win,
		opts: opts,
	}
}

// Start выполняет все регистрации. Ошибки отдельных сочетаний пишутся
// в лог, запуск всегда завершается. Повторный Start без Close ничего не делает.
func (e *Engine) Start(cfg config.Shortcuts) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		log.Printf("Горячие клавиши уже зарегистрированы, повторный запуск пропущен")
		return
	}
	e.started = true

	ctl := e.ctl
	walker := Walker{Global: e.opts.Global, Local: e.opts.Local, Window: e.win}

	media := 0
	if cfg.OverrideMediaKeys && ctl != nil {
		media = e.registerMediaKeys(ctl)
	}

	if fn := Bind(Search, ctl); fn != nil {
		for _, accel := range searchAccelerators {
			walker.registerLocal(accel, fn)
		}
	}

	if e.opts.Media != nil {
		if err := e.opts.Media.Activate(e.win); err != nil {
			log.Printf("Медиасессия не активирована: %v", err)
		}
	}

	global := walker.Walk(cfg.Global, ScopeGlobal, ctl)
	local := walker.Walk(cfg.Local, ScopeLocal, ctl)
	log.Printf("Горячие клавиши зарегистрированы: глобальных %d, локальных %d", media+global, local)
}

// registerMediaKeys привязывает системные медиаклавиши без расширения
// и возвращает число занятых.
func (e *Engine) registerMediaKeys(ctl Controls) int {
	if e.opts.Global == nil {
		return 0
	}

	keys := []struct {
		accel string
		fn    func()
	}{
		{mediaPlayPause, ctl.PlayPause},
		{mediaNextTrack, ctl.Next},
		{mediaPreviousTrack, ctl.Previous},
	}
	n := 0
	for _, k := range keys {
		if err := e.opts.Global.Register(k.accel, k.fn); err != nil {
			log.Printf("Медиаклавиша %s не зарегистрирована: %v", k.accel, err)
			continue
		}
		n++
	}
	return n
}

// Close снимает все регистрации у тех примитивов, которые это умеют.
// После Close движок можно запустить снова.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil
	}
	e.started = false

	var errs []error
	for _, p := range []any{e.opts.Global, e.opts.Local, e.opts.Media} {
		if r, ok := p.(Resetter); ok {
			if err := r.Reset(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Restart снимает все регистрации и выполняет их заново с новыми настройками.
func (e *Engine) Restart(cfg config.Shortcuts) {
	if err := e.Close(); err != nil {
		log.Printf("Ошибка снятия горячих клавиш: %v", err)
	}
	e.Start(cfg)
}
