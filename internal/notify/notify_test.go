package notify

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"playkeys/internal/i18n"
	"playkeys/internal/player"
	"playkeys/internal/ratings"
)

type sent struct{ title, message string }

func newTestNotifier(enabled bool) (*Notifier, *[]sent) {
	var out []sent
	n := New(enabled)
	n.send = func(title, message string) error {
		out = append(out, sent{title, message})
		return nil
	}
	return n, &out
}

func TestTrackChange(t *testing.T) {
	defer i18n.SetLanguage(i18n.GetLanguage())
	i18n.SetLanguage(i18n.EN)

	n, out := newTestNotifier(true)

	n.Track(player.State{Count: 2, Index: 0, Title: "a", Playing: true})
	n.Track(player.State{Count: 2, Index: 0, Title: "a", Playing: true}) // без изменений
	n.Track(player.State{Count: 2, Index: 1, Title: "b", Playing: false})
	n.Track(player.State{Count: 2, Index: 1, Title: "b", Rating: ratings.Like})

	want := []sent{
		{"playkeys: Now playing", "a"},
		{"playkeys: Added to favourites", "b"},
	}
	if len(*out) != len(want) {
		t.Fatalf("sent = %+v", *out)
	}
	for i := range want {
		if (*out)[i] != want[i] {
			t.Errorf("sent[%d] = %+v, want %+v", i, (*out)[i], want[i])
		}
	}
}

func TestDisabled(t *testing.T) {
	n, out := newTestNotifier(false)
	n.Track(player.State{Count: 1, Playing: true, Title: "a"})
	n.Ready()
	if len(*out) != 0 {
		t.Fatalf("disabled notifier sent %+v", *out)
	}

	n.SetEnabled(true)
	n.Error("boom")
	if len(*out) != 1 {
		t.Fatalf("sent = %+v", *out)
	}
}

func TestLongMessageTruncated(t *testing.T) {
	n, out := newTestNotifier(true)
	n.Error(strings.Repeat("x", 300))
	if got := (*out)[0].message; len(got) != maxMessage+3 {
		t.Errorf("len = %d", len(got))
	}
}

func TestLongCyrillicTitleStaysValidUTF8(t *testing.T) {
	n, out := newTestNotifier(true)
	n.Error(strings.Repeat("ж", 150))

	got := (*out)[0].message
	if !utf8.ValidString(got) {
		t.Fatalf("invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("ж", maxMessage) + "..."; got != want {
		t.Errorf("message = %q", got)
	}

	if got := truncate("короткое", maxMessage); got != "короткое" {
		t.Errorf("short message changed: %q", got)
	}
}

func TestSendErrorIgnored(t *testing.T) {
	n := New(true)
	n.send = func(string, string) error { return errors.New("no dbus") }
	n.Ready()
}
