// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"playkeys/embedded"
	"playkeys/internal/i18n"
	"playkeys/internal/player"
	"playkeys/internal/shortcuts"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnShowWindow          func()
	OnShortcutsClick      func()
	OnNotificationsToggle func() bool
	OnLanguageChange      func(i18n.Language)
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	ctl       shortcuts.Controls
	callbacks Callbacks
	notifyOn  bool

	status       *systray.MenuItem
	playPause    *systray.MenuItem
	next         *systray.MenuItem
	previous     *systray.MenuItem
	like         *systray.MenuItem
	dislike      *systray.MenuItem
	showBtn      *systray.MenuItem
	shortcutsBtn *systray.MenuItem
	notifyBtn    *systray.MenuItem
	langMenu     *systray.MenuItem
	langItems    map[i18n.Language]*systray.MenuItem
	quitBtn      *systray.MenuItem
}

// New создаёт новый Tray. Команды плеера вызываются через ctl.
func New(ctl shortcuts.Controls, notifications bool, callbacks Callbacks) *Tray {
	return &Tray{
		ctl:       ctl,
		callbacks: callbacks,
		notifyOn:  notifications,
		langItems: make(map[i18n.Language]*systray.MenuItem),
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTitle("playkeys")
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Текущий трек
	t.status = systray.AddMenuItem(i18n.T("tray_idle"), "")
	t.status.Disable()

	systray.AddSeparator()

	// Управление воспроизведением
	t.playPause = systray.AddMenuItem(i18n.T("tray_play_pause"), "")
	t.next = systray.AddMenuItem(i18n.T("tray_next"), "")
	t.previous = systray.AddMenuItem(i18n.T("tray_previous"), "")
	t.like = systray.AddMenuItemCheckbox(i18n.T("tray_like"), "", false)
	t.dislike = systray.AddMenuItem(i18n.T("tray_dislike"), "")

	systray.AddSeparator()

	t.showBtn = systray.AddMenuItem(i18n.T("tray_show"), "")
	t.shortcutsBtn = systray.AddMenuItem(i18n.T("tray_shortcuts"), i18n.T("tray_shortcuts_hint"))

	// Уведомления
	t.notifyBtn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.notifyOn)

	// Язык интерфейса
	t.langMenu = systray.AddMenuItem(i18n.T("tray_language"), "")
	current := i18n.GetLanguage()
	for _, lang := range i18n.AvailableLanguages() {
		t.langItems[lang] = t.langMenu.AddSubMenuItemCheckbox(i18n.LanguageName(lang), "", lang == current)
	}

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
	for lang, item := range t.langItems {
		go t.handleLanguage(lang, item)
	}
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Плеер
		case <-t.playPause.ClickedCh:
			t.ctl.PlayPause()
		case <-t.next.ClickedCh:
			t.ctl.Next()
		case <-t.previous.ClickedCh:
			t.ctl.Previous()
		case <-t.like.ClickedCh:
			t.ctl.Like()
		case <-t.dislike.ClickedCh:
			t.ctl.Dislike()

		// Окно
		case <-t.showBtn.ClickedCh:
			if t.callbacks.OnShowWindow != nil {
				t.callbacks.OnShowWindow()
			}

		// Сочетания клавиш
		case <-t.shortcutsBtn.ClickedCh:
			if t.callbacks.OnShortcutsClick != nil {
				t.callbacks.OnShortcutsClick()
			}

		// Уведомления
		case <-t.notifyBtn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					t.notifyBtn.Check()
				} else {
					t.notifyBtn.Uncheck()
				}
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

func (t *Tray) handleLanguage(lang i18n.Language, item *systray.MenuItem) {
	for range item.ClickedCh {
		for l, it := range t.langItems {
			if l == lang {
				it.Check()
			} else {
				it.Uncheck()
			}
		}
		if t.callbacks.OnLanguageChange != nil {
			t.callbacks.OnLanguageChange(lang)
		}
		t.RefreshUI()
	}
}

// SetState обновляет иконку и меню по состоянию плеера.
func (t *Tray) SetState(st player.State) {
	if t.status == nil {
		return
	}

	if st.Playing {
		systray.SetIcon(embedded.IconPlaying)
	} else {
		systray.SetIcon(embedded.IconIdle)
	}

	title := i18n.T("tray_idle")
	if st.Count > 0 {
		title = st.Title
	}
	t.status.SetTitle(title)
	systray.SetTooltip("playkeys - " + title)

	if st.Rating > 0 {
		t.like.Check()
	} else {
		t.like.Uncheck()
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	items := []struct {
		item *systray.MenuItem
		key  string
		hint string
	}{
		{t.playPause, "tray_play_pause", ""},
		{t.next, "tray_next", ""},
		{t.previous, "tray_previous", ""},
		{t.like, "tray_like", ""},
		{t.dislike, "tray_dislike", ""},
		{t.showBtn, "tray_show", ""},
		{t.shortcutsBtn, "tray_shortcuts", "tray_shortcuts_hint"},
		{t.notifyBtn, "tray_notifications", "tray_notifications_hint"},
		{t.langMenu, "tray_language", ""},
		{t.quitBtn, "tray_quit", "tray_quit_hint"},
	}
	for _, it := range items {
		if it.item == nil {
			continue
		}
		it.item.SetTitle(i18n.T(it.key))
		if it.hint != "" {
			it.item.SetTooltip(i18n.T(it.hint))
		}
	}
}
