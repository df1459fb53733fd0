package emsh

import "testing"

func TestIsPrint(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{0x1F, false},
		{0x20, true},
		{'A', true},
		{0x7E, true},
		{0x7F, false},
	}
	for _, c := range cases {
		if got := IsPrint(c.b); got != c.want {
			t.Errorf("IsPrint(%#x) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	for _, b := range []byte{'\t', '\n', '\v', '\f', '\r', ' '} {
		if !IsSpace(b) {
			t.Errorf("IsSpace(%#x) = false, want true", b)
		}
	}
	if IsSpace('a') {
		t.Errorf("IsSpace('a') = true, want false")
	}
}

func TestCtrl(t *testing.T) {
	if got := Ctrl('A'); got != 0x01 {
		t.Errorf("Ctrl('A') = %#x, want 0x01", got)
	}
	if got := Ctrl('N'); got != 0x0E {
		t.Errorf("Ctrl('N') = %#x, want 0x0E", got)
	}
}
