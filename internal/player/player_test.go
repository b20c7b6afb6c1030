package player

import (
	"context"
	"sync"
	"testing"
	"time"

	"playkeys/internal/ratings"
	"playkeys/internal/shortcuts"
)

var _ shortcuts.Controls = (*Player)(nil)

type memStore struct {
	mu sync.Mutex
	m  map[string]ratings.Rating
}

func newMemStore() *memStore {
	return &memStore{m: make(map[string]ratings.Rating)}
}

func (s *memStore) Set(_ context.Context, track string, r ratings.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[track] = r
	return nil
}

func (s *memStore) Get(_ context.Context, track string) (ratings.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[track], nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPlayer(tracks ...string) (*Player, *clock, *memStore) {
	store := newMemStore()
	p := New(tracks, store)
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	p.now = c.now
	return p, c, store
}

func TestPlayPauseTracksPosition(t *testing.T) {
	p, c, _ := newTestPlayer("a.mp3")

	p.PlayPause()
	c.advance(30 * time.Second)
	if s := p.State(); !s.Playing || s.Position != 30*time.Second {
		t.Fatalf("state = %+v", s)
	}

	p.PlayPause()
	c.advance(time.Minute)
	if s := p.State(); s.Playing || s.Position != 30*time.Second {
		t.Fatalf("paused state = %+v", s)
	}
}

func TestSeekClampsAtStart(t *testing.T) {
	p, _, _ := newTestPlayer("a.mp3")

	p.GoForward(shortcuts.SeekSeconds)
	if pos := p.State().Position; pos != 10*time.Second {
		t.Errorf("after forward = %v", pos)
	}
	p.GoBack(25)
	if pos := p.State().Position; pos != 0 {
		t.Errorf("after back = %v", pos)
	}
}

func TestNextPreviousWrap(t *testing.T) {
	p, _, _ := newTestPlayer("a.mp3", "b.mp3", "c.mp3")

	p.Previous()
	if s := p.State(); s.Index != 2 || s.Title != "c" {
		t.Errorf("previous from first = %+v", s)
	}
	p.Next()
	if s := p.State(); s.Index != 0 {
		t.Errorf("next from last = %+v", s)
	}
}

func TestLikeToggleAndPersist(t *testing.T) {
	p, _, store := newTestPlayer("a.mp3", "b.mp3")

	p.Like()
	if p.State().Rating != ratings.Like || store.m["a.mp3"] != ratings.Like {
		t.Fatalf("like not stored: %+v %v", p.State(), store.m)
	}
	p.Like()
	if p.State().Rating != ratings.None || store.m["a.mp3"] != ratings.None {
		t.Fatalf("like not cleared: %+v %v", p.State(), store.m)
	}
}

func TestDislikeSkips(t *testing.T) {
	p, _, store := newTestPlayer("a.mp3", "b.mp3")
	_ = store.Set(context.Background(), "b.mp3", ratings.Like)

	p.Dislike()
	s := p.State()
	if store.m["a.mp3"] != ratings.Dislike {
		t.Errorf("dislike not stored: %v", store.m)
	}
	if s.Index != 1 || s.Rating != ratings.Like {
		t.Errorf("after dislike = %+v", s)
	}
}

func TestSearchAndFind(t *testing.T) {
	p, _, _ := newTestPlayer("music/Alpha.mp3", "music/Beta Song.flac")

	called := 0
	p.OnSearch(func() { called++ })
	p.Search()
	if called != 1 {
		t.Errorf("search handler called %d times", called)
	}

	if !p.Find("beta") || p.State().Index != 1 {
		t.Errorf("Find(beta) state = %+v", p.State())
	}
	if p.Find("gamma") || p.Find("  ") {
		t.Error("Find must fail for missing or empty query")
	}
}

func TestOnChangeNotified(t *testing.T) {
	p, _, _ := newTestPlayer("a.mp3", "b.mp3")

	var got []State
	p.OnChange(func(s State) { got = append(got, s) })

	p.Next()
	p.Play()
	p.Play() // уже играет: без оповещения

	if len(got) != 2 {
		t.Fatalf("notifications = %d", len(got))
	}
	if got[0].Title != "b" || !got[1].Playing {
		t.Errorf("notifications = %+v", got)
	}
}

func TestEmptyPlaylistIsNoop(t *testing.T) {
	p, _, _ := newTestPlayer()
	notified := false
	p.OnChange(func(State) { notified = true })

	p.PlayPause()
	p.Next()
	p.Like()
	p.GoForward(10)

	if notified || p.State().Playing {
		t.Error("empty playlist must not change state")
	}
}

func TestStop(t *testing.T) {
	p, c, _ := newTestPlayer("a.mp3")
	p.Play()
	c.advance(5 * time.Second)
	p.Stop()
	if s := p.State(); s.Playing || s.Position != 0 {
		t.Errorf("after stop = %+v", s)
	}
}
