package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay склеивает серию событий от редактора в одну перезагрузку.
const reloadDelay = 200 * time.Millisecond

// Watch следит за файлом конфигурации и после каждого изменения
// перечитывает его и передаёт свежий снимок горячих клавиш в onChange.
// Если файл не разобрался, onChange не вызывается и действуют прежние настройки.
// Слежение прекращается при отмене ctx.
func (c *Config) Watch(ctx context.Context, onChange func(Shortcuts)) error {
	path := c.Path()
	if path == "" {
		return fmt.Errorf("путь к конфигурации не задан")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Следим за каталогом: редакторы часто заменяют файл целиком
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go c.watchLoop(ctx, watcher, filepath.Clean(path), onChange)
	return nil
}

func (c *Config) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func(Shortcuts)) {
	defer watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(reloadDelay)
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Ошибка слежения за конфигурацией: %v", err)

		case <-fire:
			fire = nil
			if err := c.Reload(); err != nil {
				log.Printf("Конфигурация не перечитана: %v", err)
				continue
			}
			log.Printf("Конфигурация перечитана: %s", path)
			if onChange != nil {
				onChange(c.Shortcuts())
			}
		}
	}
}
