// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "playkeys",
		"app_tooltip": "playkeys - плеер с горячими клавишами",

		// Tray menu
		"tray_idle":               "Плейлист пуст",
		"tray_play_pause":         "Воспроизведение/Пауза",
		"tray_next":               "Следующий трек",
		"tray_previous":           "Предыдущий трек",
		"tray_like":               "Нравится",
		"tray_dislike":            "Не нравится",
		"tray_show":               "Показать окно",
		"tray_shortcuts":          "Сочетания клавиш...",
		"tray_shortcuts_hint":     "Список зарегистрированных сочетаний",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления о смене трека",
		"tray_language":           "Язык интерфейса",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Player window
		"window_empty":       "Плейлист пуст",
		"window_playing":     "Играет",
		"window_paused":      "Пауза",
		"window_liked":       "♥",
		"window_disliked":    "✕",
		"window_search_hint": "Поиск по плейлисту",
		"window_shortcuts":   "Локальные сочетания",

		// Notifications
		"notify_playing":   "Сейчас играет",
		"notify_liked":     "Добавлено в избранное",
		"notify_error":     "Ошибка",
		"notify_ready":     "playkeys готов к работе",
		"notify_unclaimed": "Не удалось занять сочетания: %s",

		// Dialogs
		"dialog_shortcuts":    "Сочетания клавиш",
		"dialog_no_shortcuts": "Сочетания не зарегистрированы",
		"dialog_config_error": "Ошибка конфигурации",
		"dialog_scope_global": "глобальное",
		"dialog_scope_local":  "в окне",
	},
	EN: {
		// App
		"app_name":    "playkeys",
		"app_tooltip": "playkeys - keyboard-driven player",

		// Tray menu
		"tray_idle":               "Playlist is empty",
		"tray_play_pause":         "Play/Pause",
		"tray_next":               "Next track",
		"tray_previous":           "Previous track",
		"tray_like":               "Like",
		"tray_dislike":            "Dislike",
		"tray_show":               "Show window",
		"tray_shortcuts":          "Shortcuts...",
		"tray_shortcuts_hint":     "List registered shortcuts",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Notify on track change",
		"tray_language":           "Interface language",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close the application",

		// Player window
		"window_empty":       "Playlist is empty",
		"window_playing":     "Playing",
		"window_paused":      "Paused",
		"window_liked":       "♥",
		"window_disliked":    "✕",
		"window_search_hint": "Search playlist",
		"window_shortcuts":   "Window shortcuts",

		// Notifications
		"notify_playing":   "Now playing",
		"notify_liked":     "Added to favourites",
		"notify_error":     "Error",
		"notify_ready":     "playkeys is ready",
		"notify_unclaimed": "Shortcuts not registered: %s",

		// Dialogs
		"dialog_shortcuts":    "Keyboard shortcuts",
		"dialog_no_shortcuts": "No shortcuts registered",
		"dialog_config_error": "Configuration error",
		"dialog_scope_global": "global",
		"dialog_scope_local":  "window",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
