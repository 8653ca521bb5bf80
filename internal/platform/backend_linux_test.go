//go:build linux

package platform

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		in   xgb.Event
		want Event
		ok   bool
	}{
		{
			name: "press",
			in: xproto.ButtonPressEvent{
				Detail: 1, Root: 0x100, Event: 0x100, Child: 0x400001,
				RootX: 500, RootY: -20, State: xproto.ModMask1,
			},
			want: ButtonPress{Child: 0x400001, Event: 0x100, Button: 1, RootX: 500, RootY: -20, State: xproto.ModMask1},
			ok:   true,
		},
		{
			name: "press without child",
			in:   xproto.ButtonPressEvent{Detail: 3, Event: 0x100},
			want: ButtonPress{Child: NoWindow, Event: 0x100, Button: 3},
			ok:   true,
		},
		{
			name: "motion",
			in:   xproto.MotionNotifyEvent{RootX: 520, RootY: 480, State: Button1Mask | xproto.ModMask1},
			want: Motion{RootX: 520, RootY: 480, State: Button1Mask | xproto.ModMask1},
			ok:   true,
		},
		{
			name: "release",
			in:   xproto.ButtonReleaseEvent{Detail: 3, Event: 0x400001},
			want: ButtonRelease{Event: 0x400001, Button: 3},
			ok:   true,
		},
		{
			name: "other kinds are skipped",
			in:   xproto.KeyPressEvent{Detail: 38},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeEvent(tt.in)
			if ok != tt.ok {
				t.Fatalf("decodeEvent ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("decodeEvent = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestWindowFromError(t *testing.T) {
	tests := []struct {
		name string
		in   xgb.Error
		want WindowID
	}{
		{"bad window", xproto.WindowError{BadValue: 0x400001}, 0x400001},
		{"bad drawable", xproto.DrawableError{BadValue: 0x400002}, 0x400002},
		{"bad match", xproto.MatchError{BadValue: 0x400003}, NoWindow},
		{"bad value", xproto.ValueError{BadValue: 12}, NoWindow},
	}
	for _, tt := range tests {
		if got := windowFromError(tt.in); got != tt.want {
			t.Errorf("%s: windowFromError = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestLinuxBackend_NilConnection(t *testing.T) {
	var b *LinuxBackend
	if _, err := b.WindowGeometry(1); err == nil {
		t.Fatalf("expected error from nil backend")
	}
	if err := b.MoveResize(1, Rect{Width: 1, Height: 1}); err == nil {
		t.Fatalf("expected error from nil backend")
	}
	if _, err := b.NextEvent(); err == nil {
		t.Fatalf("expected error from nil backend")
	}
	b.Disconnect()
}
