package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"playkeys/internal/app"
	"playkeys/internal/config"
	"playkeys/internal/dialog"
	"playkeys/internal/hotkey"
	"playkeys/internal/i18n"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "playkeys",
		Short:   "Keyboard-driven playlist player",
		Version: Version,
		Long: `playkeys plays a playlist from the system tray and binds playback
actions to global and window-local keyboard shortcuts.

Shortcuts are read from the "shortcuts" section of the config file and
re-registered whenever the file changes:
  playkeys                          # run with config.json next to the binary
  playkeys --config ~/keys.json     # run with an explicit config
  playkeys bindings                 # print what would be registered
  playkeys bind global like Shift+L # change a shortcut
  playkeys liked                    # list liked tracks`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.Ltime | log.Lshortfile)
			log.Printf("playkeys %s запускается...", Version)

			// Запускаем в главном потоке (требование для macOS и некоторых GUI)
			hotkey.RunOnMainThread(func() { run(configPath) })
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: config.json next to the binary)")
	cmd.AddCommand(newBindingsCmd(&configPath), newBindCmd(&configPath), newLikedCmd(&configPath))
	return cmd
}

func run(configPath string) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Printf("Ошибка конфигурации: %v", err)
		dialog.ShowError(i18n.T("dialog_config_error"), err.Error())
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено")
	application.Run()
}

// loadConfig открывает явно указанный файл или файл рядом с бинарником.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.New(), nil
	}
	cfg, err := config.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие %s: %w", path, err)
	}
	return cfg, nil
}

// Execute запускает корневую команду.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
