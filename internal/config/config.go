// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// Mapping сопоставление "имя действия -> сочетание клавиш".
// Пустое сочетание означает, что действие не назначено.
type Mapping map[string]string

// Clone возвращает независимую копию.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return Mapping{}
	}
	return maps.Clone(m)
}

// Shortcuts снимок настроек горячих клавиш.
type Shortcuts struct {
	OverrideMediaKeys bool    `json:"overrideMediaKeys"`
	Global            Mapping `json:"global"`
	Local             Mapping `json:"local"`
}

// Clone возвращает независимую копию.
func (s Shortcuts) Clone() Shortcuts {
	return Shortcuts{
		OverrideMediaKeys: s.OverrideMediaKeys,
		Global:            s.Global.Clone(),
		Local:             s.Local.Clone(),
	}
}

// DefaultShortcuts настройки по умолчанию: медиаклавиши не перехватываются,
// основные действия перечислены, но не назначены.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{
		OverrideMediaKeys: false,
		Global: Mapping{
			"previous":  "",
			"playPause": "",
			"next":      "",
		},
		Local: Mapping{
			"previous":  "",
			"playPause": "",
			"next":      "",
		},
	}
}

// configData структура для сериализации.
type configData struct {
	UILanguage    string    `json:"ui_language,omitempty"`
	Notifications bool      `json:"notifications"`
	Shortcuts     Shortcuts `json:"shortcuts"`
	Playlist      []string  `json:"playlist,omitempty"`
	RatingsDB     string    `json:"ratings_db,omitempty"`
}

// Config хранит настройки приложения.
type Config struct {
	mu            sync.RWMutex
	uiLanguage    string
	notifications bool
	shortcuts     Shortcuts
	playlist      []string
	ratingsDB     string
	configPath    string
}

// New создаёт конфигурацию, загружая из файла рядом с бинарником
// или с настройками по умолчанию.
func New() *Config {
	path := ""

	// Определяем путь к файлу конфигурации рядом с бинарником
	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			path = filepath.Join(filepath.Dir(execPath), "config.json")
		}
	}

	c := defaults(path)
	// Отсутствующий или битый файл не критичен, остаются defaults
	_ = c.load()
	return c
}

// Open загружает конфигурацию из указанного файла. Отсутствующий файл
// не ошибка; ошибка разбора возвращается вызывающему.
func Open(path string) (*Config, error) {
	c := defaults(path)
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func defaults(path string) *Config {
	return &Config{
		uiLanguage:    "ru",
		notifications: true,
		shortcuts:     DefaultShortcuts(),
		configPath:    path,
	}
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configPath
}

// load загружает конфигурацию из файла.
func (c *Config) load() error {
	if c.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Файл не существует, используем defaults
		}
		return fmt.Errorf("чтение %s: %w", c.configPath, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return fmt.Errorf("разбор %s: %w", c.configPath, err)
	}
	c.apply(cfg)
	return nil
}

func parse(data []byte) (configData, error) {
	cfg := configData{
		Notifications: true,
		Shortcuts:     DefaultShortcuts(),
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return configData{}, err
	}
	return cfg, nil
}

func (c *Config) apply(cfg configData) {
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.notifications = cfg.Notifications
	c.shortcuts = cfg.Shortcuts.Clone()
	c.playlist = append([]string(nil), cfg.Playlist...)
	c.ratingsDB = cfg.RatingsDB
}

// Reload перечитывает файл конфигурации.
func (c *Config) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() error {
	if c.configPath == "" {
		return nil
	}

	cfg := configData{
		UILanguage:    c.uiLanguage,
		Notifications: c.notifications,
		Shortcuts:     c.shortcuts,
		Playlist:      c.playlist,
		RatingsDB:     c.ratingsDB,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// Shortcuts возвращает снимок настроек горячих клавиш.
func (c *Config) Shortcuts() Shortcuts {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shortcuts.Clone()
}

// SetShortcuts устанавливает настройки горячих клавиш.
func (c *Config) SetShortcuts(s Shortcuts) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shortcuts = s.Clone()
	return c.save()
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	_ = c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// Playlist возвращает список треков.
func (c *Config) Playlist() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.playlist...)
}

// RatingsDB возвращает путь к базе оценок. По умолчанию ratings.db
// рядом с файлом конфигурации.
func (c *Config) RatingsDB() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ratingsDB != "" {
		return c.ratingsDB
	}
	if c.configPath == "" {
		return ":memory:"
	}
	return filepath.Join(filepath.Dir(c.configPath), "ratings.db")
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	return c.save()
}
