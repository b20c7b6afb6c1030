// Package window provides the Gio player window. Local shortcuts fire only
// while this window has keyboard focus.
package window

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"playkeys/internal/i18n"
	"playkeys/internal/localkey"
	"playkeys/internal/player"
	"playkeys/internal/ratings"
)

var (
	colorBG     = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorText   = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
)

// Window represents the player window.
type Window struct {
	mu      sync.Mutex
	player  *player.Player
	keys    *localkey.Table
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	search      widget.Editor
	focusSearch bool
	list        widget.List
}

// New creates a player window. The window is not shown until Show.
func New(p *player.Player) *Window {
	w := &Window{
		player: p,
		keys:   localkey.NewTable(),
	}
	w.search.SingleLine = true
	w.search.Submit = true
	w.list.Axis = layout.Vertical
	return w
}

// Keys returns the window's local shortcut table.
func (w *Window) Keys() *localkey.Table {
	return w.keys
}

// Bind binds a local shortcut.
func (w *Window) Bind(accel string, fn func()) error {
	return w.keys.Bind(accel, fn)
}

// ResetKeys removes all local shortcuts.
func (w *Window) ResetKeys() {
	w.keys.Reset()
}

// Show displays the window.
func (w *Window) Show() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	go w.runEventLoop()
}

// Raise brings the window to the front, opening it if needed.
func (w *Window) Raise() {
	w.mu.Lock()
	running := w.running
	win := w.window
	w.mu.Unlock()

	if !running || win == nil {
		w.Show()
		return
	}
	win.Perform(system.ActionRaise)
}

// FocusSearch raises the window and moves focus to the search field.
func (w *Window) FocusSearch() {
	w.mu.Lock()
	w.focusSearch = true
	w.mu.Unlock()
	w.Raise()
	w.Invalidate()
}

// Invalidate schedules a redraw.
func (w *Window) Invalidate() {
	w.mu.Lock()
	win := w.window
	w.mu.Unlock()

	if win != nil {
		win.Invalidate()
	}
}

// Hide closes the window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

func (w *Window) runEventLoop() {
	win := new(app.Window)
	win.Option(
		app.Title("playkeys"),
		app.Size(unit.Dp(380), unit.Dp(420)),
		app.MinSize(unit.Dp(320), unit.Dp(300)),
	)

	w.mu.Lock()
	w.window = win
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.window = nil
		w.mu.Unlock()
		close(doneCh)
	}()

	var ops op.Ops

	// Invalidation goroutine: позиция трека меняется со временем
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				win.Perform(system.ActionClose)
				return
			case <-doneCh:
				return
			case <-ticker.C:
				win.Invalidate()
			}
		}
	}()

	th := material.NewTheme()
	th.Palette.Fg = colorText
	th.Palette.Bg = colorBG
	th.Palette.ContrastBg = colorAccent

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.handleEvents(gtx)
			w.draw(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) handleEvents(gtx layout.Context) {
	// Локальные сочетания
	if filters := w.keys.Filters(); len(filters) > 0 {
		for {
			ev, ok := gtx.Event(filters...)
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok {
				w.keys.Handle(e)
			}
		}
	}

	// Поиск по плейлисту
	for {
		ev, ok := w.search.Update(gtx)
		if !ok {
			break
		}
		if s, ok := ev.(widget.SubmitEvent); ok {
			if w.player.Find(s.Text) {
				w.search.SetText("")
			}
		}
	}

	w.mu.Lock()
	focus := w.focusSearch
	w.focusSearch = false
	w.mu.Unlock()
	if focus {
		gtx.Execute(key.FocusCmd{Tag: &w.search})
	}
}

func (w *Window) draw(gtx layout.Context, th *material.Theme) layout.Dimensions {
	paint.FillShape(gtx.Ops, colorBG, clip.Rect{Max: gtx.Constraints.Max}.Op())

	st := w.player.State()
	bindings := w.keys.Bindings()

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Трек
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				title := st.Title
				if st.Count == 0 {
					title = i18n.T("window_empty")
				}
				lbl := material.Label(th, unit.Sp(18), title)
				lbl.Font.Weight = font.Medium
				return lbl.Layout(gtx)
			}),

			// Состояние
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					lbl := material.Label(th, unit.Sp(12), statusLine(st))
					lbl.Color = colorDim
					return lbl.Layout(gtx)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Поле поиска
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				ed := material.Editor(th, &w.search, i18n.T("window_search_hint"))
				ed.HintColor = colorDim
				return ed.Layout(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(12), i18n.T("window_shortcuts"))
				lbl.Color = colorAccent
				return lbl.Layout(gtx)
			}),

			// Локальные сочетания
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return material.List(th, &w.list).Layout(gtx, len(bindings), func(gtx layout.Context, i int) layout.Dimensions {
					lbl := material.Label(th, unit.Sp(12), bindings[i])
					return layout.Inset{Top: unit.Dp(2)}.Layout(gtx, lbl.Layout)
				})
			}),
		)
	})
}

func statusLine(st player.State) string {
	if st.Count == 0 {
		return ""
	}

	state := i18n.T("window_paused")
	if st.Playing {
		state = i18n.T("window_playing")
	}

	line := fmt.Sprintf("%s · %s · %d/%d", state, formatPosition(st.Position), st.Index+1, st.Count)
	switch st.Rating {
	case ratings.Like:
		line += " · " + i18n.T("window_liked")
	case ratings.Dislike:
		line += " · " + i18n.T("window_disliked")
	}
	return line
}

func formatPosition(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
