package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCommandForCyclesRoundRobin(t *testing.T) {
	want := []string{"STATUS", "READ_SENSORS", "CALIBRATE", "STATUS", "READ_SENSORS", "CALIBRATE", "STATUS"}
	for i, name := range want {
		msg := CommandFor(uint32(i))
		if msg.ID != uint32(i) {
			t.Fatalf("command %d: expected id %d, got %d", i, i, msg.ID)
		}
		if msg.Command.String() != name {
			t.Fatalf("command %d: expected %s, got %s", i, name, msg.Command)
		}
	}
}

func TestNewAlertMessageTruncates(t *testing.T) {
	short := NewAlertMessage("jump")
	if short.Text != "jump" {
		t.Fatalf("expected short text untouched, got %q", short.Text)
	}

	long := NewAlertMessage(strings.Repeat("x", 100))
	if len(long.Text) != MaxAlertBytes-1 {
		t.Fatalf("expected %d bytes, got %d", MaxAlertBytes-1, len(long.Text))
	}

	// A multi-byte rune straddling the limit must be dropped whole.
	text := strings.Repeat("a", MaxAlertBytes-2) + "°C"
	got := NewAlertMessage(text)
	if !utf8.ValidString(got.Text) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got.Text)
	}
	if len(got.Text) > MaxAlertBytes-1 {
		t.Fatalf("truncated text too long: %d", len(got.Text))
	}
}
