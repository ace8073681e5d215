package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestContentArg(t *testing.T) {
	got, err := contentArg(strings.NewReader("ignored"), []string{"a.m4a", "hello"})
	if err != nil || got != "hello" {
		t.Errorf("expected inline content, got %q (%v)", got, err)
	}

	got, err = contentArg(strings.NewReader("from stdin\n\n"), []string{"a.m4a", "-"})
	if err != nil || got != "from stdin" {
		t.Errorf("expected stdin content, got %q (%v)", got, err)
	}

	got, _ = contentArg(strings.NewReader("piped"), []string{"a.m4a"})
	if got != "piped" {
		t.Errorf("expected stdin when content omitted, got %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := preview("first\nsecond", 60); got != "first" {
		t.Errorf("expected first line, got %q", got)
	}
	if got := preview("abcdefghij", 5); got != "abcd…" {
		t.Errorf("expected truncated line, got %q", got)
	}
}

func TestParseDuration(t *testing.T) {
	if parseDuration("", time.Second) != time.Second {
		t.Error("empty value should use default")
	}
	if parseDuration("bogus", time.Second) != time.Second {
		t.Error("malformed value should use default")
	}
	if parseDuration("250ms", time.Second) != 250*time.Millisecond {
		t.Error("valid value should be parsed")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"list", "kill", "merge", "set-content", "label", "open", "things", "copy", "import", "autolabel", "watch"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c == rootCmd {
			t.Errorf("command %q not registered", name)
		}
	}
}
