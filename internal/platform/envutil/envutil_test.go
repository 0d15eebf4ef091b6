package envutil

import (
	"testing"
	"time"
)

func TestEnvParsing(t *testing.T) {
	t.Setenv("ENVUTIL_INT", "42")
	t.Setenv("ENVUTIL_BAD_INT", "x")
	t.Setenv("ENVUTIL_FLOAT", "0.6")
	t.Setenv("ENVUTIL_BOOL", "on")
	t.Setenv("ENVUTIL_DUR", "90s")
	t.Setenv("ENVUTIL_DUR_SECS", "15")
	t.Setenv("ENVUTIL_STR", "  hello ")

	if got := Int("ENVUTIL_INT", 1); got != 42 {
		t.Fatalf("Int: got=%d", got)
	}
	if got := Int("ENVUTIL_BAD_INT", 7); got != 7 {
		t.Fatalf("Int fallback: got=%d", got)
	}
	if got := Float("ENVUTIL_FLOAT", 0); got != 0.6 {
		t.Fatalf("Float: got=%v", got)
	}
	if !Bool("ENVUTIL_BOOL", false) {
		t.Fatalf("Bool: expected true")
	}
	if got := Duration("ENVUTIL_DUR", 0); got != 90*time.Second {
		t.Fatalf("Duration: got=%v", got)
	}
	if got := Duration("ENVUTIL_DUR_SECS", 0); got != 15*time.Second {
		t.Fatalf("Duration secs: got=%v", got)
	}
	if got := String("ENVUTIL_STR", "def"); got != "hello" {
		t.Fatalf("String: got=%q", got)
	}
	if got := String("ENVUTIL_MISSING", "def"); got != "def" {
		t.Fatalf("String default: got=%q", got)
	}
}
