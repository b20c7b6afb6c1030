// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"log"
	"maps"
	"strings"
	"sync"

	"playkeys/internal/config"
	"playkeys/internal/dialog"
	"playkeys/internal/hotkey"
	"playkeys/internal/i18n"
	"playkeys/internal/localkey"
	"playkeys/internal/mpris"
	"playkeys/internal/notify"
	"playkeys/internal/player"
	"playkeys/internal/ratings"
	"playkeys/internal/shortcuts"
	"playkeys/internal/tray"
	"playkeys/internal/window"
)

// App представляет главное приложение.
type App struct {
	mu       sync.Mutex
	config   *config.Config
	ratings  *ratings.Store
	player   *player.Player
	window   *window.Window
	hotkeys  *hotkey.Registrar
	engine   *shortcuts.Engine
	notifier *notify.Notifier
	tray     *tray.Tray
	applied  config.Shortcuts // последние применённые настройки клавиш
	started  bool
	cancel   context.CancelFunc
	closed   bool
}

// Identities правила конфликтов сочетаний на текущей платформе, те же,
// что применяют регистраторы ОС и окна.
func Identities() shortcuts.Identities {
	return shortcuts.Identities{Global: hotkey.Identity, Local: localkey.Identity}
}

// New создаёт новое приложение.
func New(cfg *config.Config) (*App, error) {
	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	store, err := ratings.Open(cfg.RatingsDB())
	if err != nil {
		return nil, fmt.Errorf("база оценок: %w", err)
	}

	p := player.New(cfg.Playlist(), store)
	win := window.New(p)
	p.OnSearch(win.FocusSearch)

	app := &App{
		config:   cfg,
		ratings:  store,
		player:   p,
		window:   win,
		hotkeys:  hotkey.NewRegistrar(),
		notifier: notify.New(cfg.NotificationsEnabled()),
	}

	// На платформах без MPRIS media равен nil
	app.engine = shortcuts.New(p, win, shortcuts.Options{
		Global: app.hotkeys,
		Local:  &shortcuts.WindowRegistrar{},
		Media:  mpris.New(p),
	})

	app.tray = tray.New(p, cfg.NotificationsEnabled(), tray.Callbacks{
		OnShowWindow: win.Raise,
		OnShortcutsClick: func() {
			go dialog.ShowShortcuts(app.claimedBindings())
		},
		OnNotificationsToggle: func() bool {
			enabled := app.config.ToggleNotifications()
			app.notifier.SetEnabled(enabled)
			return enabled
		},
		OnLanguageChange: func(lang i18n.Language) {
			i18n.SetLanguage(lang)
			if err := app.config.SetUILanguage(string(lang)); err != nil {
				log.Printf("Ошибка сохранения языка: %v", err)
			}
			app.window.Invalidate()
		},
		OnQuit: func() {
			app.Close()
		},
	})

	p.OnChange(app.onPlayerChange)

	return app, nil
}

// Run запускает приложение. Блокирующая функция.
func (a *App) Run() {
	a.tray.Run(func() {
		a.window.Show()

		// Регистрируем горячие клавиши после инициализации трея
		a.applyShortcuts(a.config.Shortcuts())
		a.watchConfig()

		a.tray.SetState(a.player.State())
		a.notifier.Ready()
	})
}

func (a *App) onPlayerChange(st player.State) {
	a.notifier.Track(st)
	a.tray.SetState(st)
	a.window.Invalidate()
}

// applyShortcuts регистрирует клавиши при первом вызове и
// перерегистрирует при изменении настроек.
func (a *App) applyShortcuts(s config.Shortcuts) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	first := !a.started
	if !first && sameShortcuts(a.applied, s) {
		a.mu.Unlock()
		return
	}
	a.started = true
	a.applied = s.Clone()
	a.mu.Unlock()

	if first {
		a.engine.Start(s)
	} else {
		log.Printf("Настройки горячих клавиш изменились, перерегистрация")
		a.engine.Restart(s)
	}

	plan := shortcuts.Plan(s, Identities())
	reportUnclaimed(a.notifier, shortcuts.Missing(plan, a.hotkeys.Claimed(), a.window.Keys().Bindings()))
}

// claimedBindings возвращает привязки, которые регистраторы заняли на самом деле.
func (a *App) claimedBindings() []shortcuts.Binding {
	plan := shortcuts.Plan(a.config.Shortcuts(), Identities())
	return shortcuts.OnlyClaimed(plan, a.hotkeys.Claimed(), a.window.Keys().Bindings())
}

type errorNotifier interface {
	Error(msg string)
}

// reportUnclaimed сообщает о сочетаниях, которые ОС не дала занять,
// например из-за другой программы.
func reportUnclaimed(n errorNotifier, missing []string) {
	if len(missing) == 0 {
		return
	}
	list := strings.Join(missing, ", ")
	log.Printf("Сочетания не заняты: %s", list)
	n.Error(fmt.Sprintf(i18n.T("notify_unclaimed"), list))
}

func (a *App) watchConfig() {
	ctx, cancel := context.WithCancel(context.Background())

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	if err := a.config.Watch(ctx, a.applyShortcuts); err != nil {
		log.Printf("Слежение за конфигурацией недоступно: %v", err)
	}
}

func sameShortcuts(x, y config.Shortcuts) bool {
	return x.OverrideMediaKeys == y.OverrideMediaKeys &&
		maps.Equal(x.Global, y.Global) &&
		maps.Equal(x.Local, y.Local)
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	cancel := a.cancel
	a.mu.Unlock()

	log.Println("Завершение работы...")

	if cancel != nil {
		cancel()
	}
	if err := a.engine.Close(); err != nil {
		log.Printf("Ошибка снятия горячих клавиш: %v", err)
	}
	a.window.Hide()
	if err := a.ratings.Close(); err != nil {
		log.Printf("Ошибка закрытия базы оценок: %v", err)
	}
}
