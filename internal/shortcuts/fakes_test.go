package shortcuts

import (
	"errors"
	"sync"
)

// fakeGlobal записывает каждую регистрацию без дедупликации.
type fakeGlobal struct {
	mu     sync.Mutex
	accels []string
	fns    map[string]func()
	fail   map[string]bool
	resets int
}

func newFakeGlobal() *fakeGlobal {
	return &fakeGlobal{fns: make(map[string]func()), fail: make(map[string]bool)}
}

var errRefused = errors.New("занято другим процессом")

func (g *fakeGlobal) Register(accel string, fn func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail[accel] {
		return errRefused
	}
	g.accels = append(g.accels, accel)
	g.fns[accel] = fn
	return nil
}

func (g *fakeGlobal) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accels = nil
	g.fns = make(map[string]func())
	g.resets++
	return nil
}

func (g *fakeGlobal) fire(accel string) bool {
	g.mu.Lock()
	fn := g.fns[accel]
	g.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (g *fakeGlobal) count(accel string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, a := range g.accels {
		if a == accel {
			n++
		}
	}
	return n
}

// fakeWindow таблица клавиш окна в памяти.
type fakeWindow struct {
	mu     sync.Mutex
	keys   []string
	fns    map[string]func()
	raised int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{fns: make(map[string]func())}
}

func (w *fakeWindow) Bind(accel string, fn func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.keys = append(w.keys, accel)
	w.fns[accel] = fn
	return nil
}

func (w *fakeWindow) ResetKeys() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.keys = nil
	w.fns = make(map[string]func())
}

func (w *fakeWindow) Raise() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.raised++
}

func (w *fakeWindow) bound() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.keys...)
}

func (w *fakeWindow) fire(accel string) bool {
	w.mu.Lock()
	fn := w.fns[accel]
	w.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

type fakeMedia struct {
	activated []Window
	err       error
}

func (m *fakeMedia) Activate(win Window) error {
	m.activated = append(m.activated, win)
	return m.err
}
