// Package notify предоставляет системные уведомления.
package notify

import (
	"log"
	"sync"
	"unicode/utf8"

	"github.com/gen2brain/beeep"

	"playkeys/internal/i18n"
	"playkeys/internal/player"
	"playkeys/internal/ratings"
)

const appName = "playkeys"

// maxMessage предел длины текста уведомления в символах.
const maxMessage = 100

// Notifier отправляет системные уведомления.
type Notifier struct {
	mu      sync.Mutex
	enabled bool
	send    func(title, message string) error

	// Последнее показанное состояние, чтобы не повторять уведомления
	lastIndex  int
	lastRating ratings.Rating
	seen       bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	n.enabled = enabled
	n.mu.Unlock()
}

// Ready показывает уведомление о запуске.
func (n *Notifier) Ready() {
	n.notify("", i18n.T("notify_ready"))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

// Track реагирует на изменение состояния плеера: смена трека
// или оценки приводит к уведомлению.
func (n *Notifier) Track(st player.State) {
	if st.Count == 0 {
		return
	}

	n.mu.Lock()
	changedTrack := !n.seen || st.Index != n.lastIndex
	changedRating := n.seen && !changedTrack && st.Rating != n.lastRating
	n.seen = true
	n.lastIndex = st.Index
	n.lastRating = st.Rating
	n.mu.Unlock()

	switch {
	case changedTrack && st.Playing:
		n.notify(i18n.T("notify_playing"), st.Title)
	case changedRating && st.Rating == ratings.Like:
		n.notify(i18n.T("notify_liked"), st.Title)
	}
}

func (n *Notifier) notify(title, message string) {
	n.mu.Lock()
	enabled := n.enabled
	send := n.send
	n.mu.Unlock()

	if !enabled {
		return
	}
	message = truncate(message, maxMessage)

	if title != "" {
		title = appName + ": " + title
	} else {
		title = appName
	}
	// Ошибки уведомлений не критичны
	if err := send(title, message); err != nil {
		log.Printf("Уведомление не отправлено: %v", err)
	}
}

// truncate обрезает s до limit символов, не разрывая UTF-8.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
