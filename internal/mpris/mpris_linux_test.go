//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/godbus/dbus/v5"

	"playkeys/internal/player"
	"playkeys/internal/shortcuts"
)

type fakePlayer struct {
	shortcuts.Trace
	state player.State
}

func (f *fakePlayer) Play()                          {}
func (f *fakePlayer) Pause()                         {}
func (f *fakePlayer) Stop()                          {}
func (f *fakePlayer) State() player.State            { return f.state }
func (f *fakePlayer) OnChange(fn func(player.State)) {}

func TestNewOnLinux(t *testing.T) {
	if New(&fakePlayer{}) == nil {
		t.Fatal("MPRIS session must exist on Linux")
	}
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		st   player.State
		want string
	}{
		{player.State{}, "Stopped"},
		{player.State{Count: 2, Playing: true}, "Playing"},
		{player.State{Count: 2}, "Paused"},
	}
	for _, tt := range tests {
		if got := playbackStatus(tt.st); got != tt.want {
			t.Errorf("playbackStatus(%+v) = %q, want %q", tt.st, got, tt.want)
		}
	}
}

func TestMetadata(t *testing.T) {
	md := metadata(player.State{Count: 3, Index: 1, Track: "/m/b.mp3", Title: "b"})

	if got := md["mpris:trackid"].Value(); got != dbus.ObjectPath("/org/playkeys/track/1") {
		t.Errorf("trackid = %v", got)
	}
	if got := md["xesam:title"].Value(); got != "b" {
		t.Errorf("title = %v", got)
	}

	empty := metadata(player.State{})
	if _, ok := empty["xesam:title"]; ok {
		t.Error("empty playlist must not have a title")
	}
}

func TestSeekConvertsMicroseconds(t *testing.T) {
	fp := &fakePlayer{}

	seek(fp, 10_000_000)
	seek(fp, -15_000_000)
	seek(fp, 400_000) // меньше секунды: игнорируется

	calls := fp.Calls()
	if len(calls) != 2 {
		t.Fatalf("calls = %+v", calls)
	}
	if calls[0].Action != shortcuts.GoForward || calls[0].Seconds != 10 {
		t.Errorf("forward = %+v", calls[0])
	}
	if calls[1].Action != shortcuts.GoBack || calls[1].Seconds != 15 {
		t.Errorf("back = %+v", calls[1])
	}
}

func TestSetPositionIgnoresStaleTrack(t *testing.T) {
	fp := &fakePlayer{state: player.State{Count: 2, Index: 0, Position: 5 * time.Second}}
	s := &Session{p: fp}
	o := &playerObject{s: s}

	o.SetPosition(trackID(1), 30_000_000)
	if len(fp.Calls()) != 0 {
		t.Fatalf("stale track seeked: %+v", fp.Calls())
	}

	o.SetPosition(trackID(0), 30_000_000)
	calls := fp.Calls()
	if len(calls) != 1 || calls[0].Action != shortcuts.GoForward || calls[0].Seconds != 25 {
		t.Errorf("calls = %+v", calls)
	}
}

func TestRaiseWithoutWindow(t *testing.T) {
	s := &Session{p: &fakePlayer{}}
	(&rootObject{s: s}).Raise()
	if err := s.Reset(); err != nil {
		t.Errorf("Reset without connection: %v", err)
	}
}
