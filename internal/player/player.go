// Package player содержит состояние воспроизведения плейлиста и реализует
// команды управления, которые вызывают горячие клавиши, трей и MPRIS.
package player

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"playkeys/internal/ratings"
)

// storeTimeout ограничение на одну операцию с базой оценок.
const storeTimeout = 2 * time.Second

// RatingStore хранилище оценок треков.
type RatingStore interface {
	Set(ctx context.Context, track string, r ratings.Rating) error
	Get(ctx context.Context, track string) (ratings.Rating, error)
}

// State снимок состояния плеера.
type State struct {
	Track    string
	Title    string
	Index    int
	Count    int
	Playing  bool
	Position time.Duration
	Rating   ratings.Rating
}

// Player плеер плейлиста. Безопасен для конкурентного использования:
// команды приходят из горутин горячих клавиш, трея и D-Bus.
type Player struct {
	mu       sync.Mutex
	tracks   []string
	index    int
	playing  bool
	base     time.Duration // позиция на момент since
	since    time.Time
	rating   ratings.Rating
	store    RatingStore
	now      func() time.Time
	onSearch func()
	subs     []func(State)
}

// New создаёт плеер. store может быть nil, тогда оценки не сохраняются.
func New(tracks []string, store RatingStore) *Player {
	p := &Player{
		tracks: append([]string(nil), tracks...),
		store:  store,
		now:    time.Now,
	}
	p.rating = p.loadRating()
	return p
}

// Title возвращает отображаемое имя трека.
func Title(track string) string {
	base := filepath.Base(track)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OnChange подписывает fn на изменения состояния.
func (p *Player) OnChange(fn func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// OnSearch устанавливает обработчик команды поиска.
func (p *Player) OnSearch(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onSearch = fn
}

// State возвращает текущее состояние.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Player) stateLocked() State {
	s := State{
		Index:    p.index,
		Count:    len(p.tracks),
		Playing:  p.playing,
		Position: p.positionLocked(),
		Rating:   p.rating,
	}
	if len(p.tracks) > 0 {
		s.Track = p.tracks[p.index]
		s.Title = Title(s.Track)
	}
	return s
}

func (p *Player) positionLocked() time.Duration {
	if !p.playing {
		return p.base
	}
	return p.base + p.now().Sub(p.since)
}

// update выполняет fn под блокировкой и оповещает подписчиков.
func (p *Player) update(fn func() bool) {
	p.mu.Lock()
	if len(p.tracks) == 0 || !fn() {
		p.mu.Unlock()
		return
	}
	s := p.stateLocked()
	subs := append(([]func(State))(nil), p.subs...)
	p.mu.Unlock()

	for _, sub := range subs {
		sub(s)
	}
}

// PlayPause переключает воспроизведение.
func (p *Player) PlayPause() {
	p.update(func() bool {
		p.setPlayingLocked(!p.playing)
		return true
	})
}

// Play запускает воспроизведение.
func (p *Player) Play() {
	p.update(func() bool {
		if p.playing {
			return false
		}
		p.setPlayingLocked(true)
		return true
	})
}

// Pause ставит на паузу.
func (p *Player) Pause() {
	p.update(func() bool {
		if !p.playing {
			return false
		}
		p.setPlayingLocked(false)
		return true
	})
}

// Stop останавливает воспроизведение и сбрасывает позицию.
func (p *Player) Stop() {
	p.update(func() bool {
		p.playing = false
		p.base = 0
		return true
	})
}

func (p *Player) setPlayingLocked(playing bool) {
	p.base = p.positionLocked()
	p.since = p.now()
	p.playing = playing
}

// Next переходит к следующему треку по кругу.
func (p *Player) Next() {
	p.update(func() bool {
		p.selectLocked((p.index + 1) % len(p.tracks))
		return true
	})
}

// Previous переходит к предыдущему треку по кругу.
func (p *Player) Previous() {
	p.update(func() bool {
		p.selectLocked((p.index - 1 + len(p.tracks)) % len(p.tracks))
		return true
	})
}

// Select переходит к треку с индексом i.
func (p *Player) Select(i int) {
	p.update(func() bool {
		if i < 0 || i >= len(p.tracks) {
			return false
		}
		p.selectLocked(i)
		return true
	})
}

func (p *Player) selectLocked(i int) {
	p.index = i
	p.base = 0
	p.since = p.now()
	p.rating = p.loadRatingLocked()
}

// GoForward перематывает вперёд на seconds секунд.
func (p *Player) GoForward(seconds int) {
	p.seek(time.Duration(seconds) * time.Second)
}

// GoBack перематывает назад на seconds секунд, не раньше начала трека.
func (p *Player) GoBack(seconds int) {
	p.seek(-time.Duration(seconds) * time.Second)
}

func (p *Player) seek(d time.Duration) {
	p.update(func() bool {
		pos := p.positionLocked() + d
		if pos < 0 {
			pos = 0
		}
		p.base = pos
		p.since = p.now()
		return true
	})
}

// Search передаёт команду поиска окну.
func (p *Player) Search() {
	p.mu.Lock()
	fn := p.onSearch
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Find выбирает первый трек, в названии которого есть query.
func (p *Player) Find(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return false
	}

	p.mu.Lock()
	found := -1
	for i, t := range p.tracks {
		if strings.Contains(strings.ToLower(Title(t)), query) {
			found = i
			break
		}
	}
	p.mu.Unlock()

	if found < 0 {
		return false
	}
	p.Select(found)
	return true
}

// Like ставит или снимает лайк текущего трека.
func (p *Player) Like() {
	p.update(func() bool {
		r := ratings.Like
		if p.rating == ratings.Like {
			r = ratings.None
		}
		p.rateLocked(r)
		return true
	})
}

// Dislike ставит дизлайк и переходит к следующему треку.
// Повторный дизлайк снимает оценку.
func (p *Player) Dislike() {
	p.update(func() bool {
		if p.rating == ratings.Dislike {
			p.rateLocked(ratings.None)
			return true
		}
		p.rateLocked(ratings.Dislike)
		p.selectLocked((p.index + 1) % len(p.tracks))
		return true
	})
}

func (p *Player) rateLocked(r ratings.Rating) {
	p.rating = r
	if p.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := p.store.Set(ctx, p.tracks[p.index], r); err != nil {
		log.Printf("Оценка не сохранена: %v", err)
	}
}

func (p *Player) loadRating() ratings.Rating {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadRatingLocked()
}

func (p *Player) loadRatingLocked() ratings.Rating {
	if p.store == nil || len(p.tracks) == 0 {
		return ratings.None
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	r, err := p.store.Get(ctx, p.tracks[p.index])
	if err != nil {
		log.Printf("Оценка не прочитана: %v", err)
		return ratings.None
	}
	return r
}
