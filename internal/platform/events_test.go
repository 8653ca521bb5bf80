package platform

import (
	"strings"
	"testing"
)

func TestButtonMask(t *testing.T) {
	tests := []struct {
		button uint8
		want   uint16
	}{
		{0, 0},
		{1, Button1Mask},
		{2, Button2Mask},
		{3, Button3Mask},
		{4, Button4Mask},
		{5, Button5Mask},
		{6, 0},
		{255, 0},
	}
	for _, tt := range tests {
		if got := ButtonMask(tt.button); got != tt.want {
			t.Errorf("ButtonMask(%d) = %#x, want %#x", tt.button, got, tt.want)
		}
	}
}

func TestEventStrings(t *testing.T) {
	press := ButtonPress{Child: 0x400001, Button: 3, RootX: 10, RootY: -2}
	if got := press.String(); !strings.Contains(got, "child=0x400001") || !strings.Contains(got, "(10,-2)") {
		t.Fatalf("unexpected press string %q", got)
	}
	if got := (Motion{RootX: 1, RootY: 2, State: Button1Mask}).String(); !strings.Contains(got, "state=0x100") {
		t.Fatalf("unexpected motion string %q", got)
	}
}

func TestProtocolError_Unwrap(t *testing.T) {
	inner := ErrClosed
	err := &ProtocolError{Resource: 7, Err: inner}
	if err.Unwrap() != inner {
		t.Fatalf("expected Unwrap to return the wrapped error")
	}
	if !strings.Contains(err.Error(), inner.Error()) {
		t.Fatalf("expected message to include wrapped error, got %q", err.Error())
	}
}
