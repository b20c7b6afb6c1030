//go:build linux

package mpris

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"

	"playkeys/internal/player"
	"playkeys/internal/shortcuts"
)

// Session медиасессия MPRIS2.
type Session struct {
	mu         sync.Mutex
	p          Player
	win        shortcuts.Window
	conn       *dbus.Conn
	props      *prop.Properties
	subscribed bool
}

// New создаёт медиасессию для плеера p. Подключение к шине происходит в Activate.
func New(p Player) shortcuts.MediaSession {
	return &Session{p: p}
}

// Activate подключается к сессионной шине и публикует плеер.
func (s *Session) Activate(win shortcuts.Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return nil
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("подключение к сессионной шине: %w", err)
	}

	if err := s.export(conn); err != nil {
		conn.Close()
		return err
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return fmt.Errorf("запрос имени %s: %w", busName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return fmt.Errorf("имя %s уже занято", busName)
	}

	s.conn = conn
	s.win = win
	if !s.subscribed {
		s.subscribed = true
		s.p.OnChange(s.publish)
	}

	log.Printf("MPRIS: опубликован %s", busName)
	return nil
}

func (s *Session) export(conn *dbus.Conn) error {
	root := &rootObject{s: s}
	pl := &playerObject{s: s}

	if err := conn.Export(root, objectPath, rootIface); err != nil {
		return fmt.Errorf("экспорт %s: %w", rootIface, err)
	}
	if err := conn.Export(pl, objectPath, playerIface); err != nil {
		return fmt.Errorf("экспорт %s: %w", playerIface, err)
	}

	props, err := prop.Export(conn, objectPath, s.propMap())
	if err != nil {
		return fmt.Errorf("экспорт свойств: %w", err)
	}
	s.props = props

	node := &introspect.Node{
		Name: objectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       rootIface,
				Methods:    introspect.Methods(root),
				Properties: props.Introspection(rootIface),
			},
			{
				Name:       playerIface,
				Methods:    introspect.Methods(pl),
				Properties: props.Introspection(playerIface),
			},
		},
	}
	return conn.Export(introspect.NewIntrospectable(node), objectPath, "org.freedesktop.DBus.Introspectable")
}

func (s *Session) propMap() prop.Map {
	st := s.p.State()
	ro := func(v any) *prop.Prop {
		return &prop.Prop{Value: v, Writable: false, Emit: prop.EmitTrue}
	}

	return prop.Map{
		rootIface: {
			"CanQuit":             ro(false),
			"CanRaise":            ro(true),
			"HasTrackList":        ro(false),
			"Identity":            ro(identity),
			"SupportedUriSchemes": ro([]string{}),
			"SupportedMimeTypes":  ro([]string{}),
		},
		playerIface: {
			"PlaybackStatus": ro(playbackStatus(st)),
			"LoopStatus":     ro("None"),
			"Rate":           ro(1.0),
			"Shuffle":        ro(false),
			"Metadata":       ro(metadata(st)),
			"Volume":         ro(1.0),
			"Position":       {Value: position(st), Writable: false, Emit: prop.EmitFalse},
			"MinimumRate":    ro(1.0),
			"MaximumRate":    ro(1.0),
			"CanGoNext":      ro(true),
			"CanGoPrevious":  ro(true),
			"CanPlay":        ro(true),
			"CanPause":       ro(true),
			"CanSeek":        ro(true),
			"CanControl":     ro(true),
		},
	}
}

// publish обновляет свойства после изменения состояния плеера.
func (s *Session) publish(st player.State) {
	s.mu.Lock()
	props := s.props
	active := s.conn != nil
	s.mu.Unlock()

	if !active || props == nil {
		return
	}
	props.SetMust(playerIface, "PlaybackStatus", playbackStatus(st))
	props.SetMust(playerIface, "Metadata", metadata(st))
	props.SetMust(playerIface, "Position", position(st))
}

// Reset снимает публикацию и закрывает соединение.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	_, _ = s.conn.ReleaseName(busName)
	err := s.conn.Close()
	s.conn = nil
	s.props = nil
	s.win = nil
	return err
}

func (s *Session) raise() {
	s.mu.Lock()
	win := s.win
	s.mu.Unlock()

	if win != nil {
		win.Raise()
	}
}

func playbackStatus(st player.State) string {
	switch {
	case st.Count == 0:
		return "Stopped"
	case st.Playing:
		return "Playing"
	default:
		return "Paused"
	}
}

func metadata(st player.State) map[string]dbus.Variant {
	if st.Count == 0 {
		return map[string]dbus.Variant{
			"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")),
		}
	}
	return map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(trackID(st.Index)),
		"xesam:title":   dbus.MakeVariant(st.Title),
		"xesam:url":     dbus.MakeVariant("file://" + st.Track),
	}
}

func trackID(i int) dbus.ObjectPath {
	return dbus.ObjectPath(fmt.Sprintf("/org/playkeys/track/%d", i))
}

func position(st player.State) int64 {
	return st.Position.Microseconds()
}

// seekSeconds переводит смещение MPRIS (микросекунды) в целые секунды.
func seekSeconds(offset int64) int {
	return int(time.Duration(offset) * time.Microsecond / time.Second)
}

// seek сдвигает позицию на offset микросекунд.
func seek(p Player, offset int64) {
	switch sec := seekSeconds(offset); {
	case sec > 0:
		p.GoForward(sec)
	case sec < 0:
		p.GoBack(-sec)
	}
}

// rootObject методы интерфейса org.mpris.MediaPlayer2.
type rootObject struct{ s *Session }

func (o *rootObject) Raise() *dbus.Error {
	o.s.raise()
	return nil
}

func (o *rootObject) Quit() *dbus.Error {
	return nil
}

// playerObject методы интерфейса org.mpris.MediaPlayer2.Player.
type playerObject struct{ s *Session }

func (o *playerObject) Next() *dbus.Error {
	o.s.p.Next()
	return nil
}

func (o *playerObject) Previous() *dbus.Error {
	o.s.p.Previous()
	return nil
}

func (o *playerObject) Pause() *dbus.Error {
	o.s.p.Pause()
	return nil
}

func (o *playerObject) PlayPause() *dbus.Error {
	o.s.p.PlayPause()
	return nil
}

func (o *playerObject) Stop() *dbus.Error {
	o.s.p.Stop()
	return nil
}

func (o *playerObject) Play() *dbus.Error {
	o.s.p.Play()
	return nil
}

func (o *playerObject) Seek(offset int64) *dbus.Error {
	seek(o.s.p, offset)
	return nil
}

func (o *playerObject) SetPosition(id dbus.ObjectPath, pos int64) *dbus.Error {
	st := o.s.p.State()
	// Устаревший trackid игнорируется
	if st.Count == 0 || id != trackID(st.Index) {
		return nil
	}
	seek(o.s.p, pos-position(st))
	return nil
}

func (o *playerObject) OpenUri(uri string) *dbus.Error {
	return nil
}
