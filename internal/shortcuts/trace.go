package shortcuts

import "sync"

// Call один вызов, записанный Trace.
type Call struct {
	Action  Action
	Seconds int
}

// Trace реализация Controls, которая только записывает вызовы.
type Trace struct {
	mu    sync.Mutex
	calls []Call
}

func (t *Trace) record(a Action, seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, Call{Action: a, Seconds: seconds})
}

func (t *Trace) PlayPause()            { t.record(PlayPause, 0) }
func (t *Trace) Next()                 { t.record(Next, 0) }
func (t *Trace) Previous()             { t.record(Previous, 0) }
func (t *Trace) GoForward(seconds int) { t.record(GoForward, seconds) }
func (t *Trace) GoBack(seconds int)    { t.record(GoBack, seconds) }
func (t *Trace) Search()               { t.record(Search, 0) }
func (t *Trace) Like()                 { t.record(Like, 0) }
func (t *Trace) Dislike()              { t.record(Dislike, 0) }

// Calls возвращает записанные вызовы.
func (t *Trace) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Call(nil), t.calls...)
}

// Last возвращает последний вызов.
func (t *Trace) Last() (Call, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.calls) == 0 {
		return Call{}, false
	}
	return t.calls[len(t.calls)-1], true
}

// Reset очищает записанные вызовы.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = nil
}
