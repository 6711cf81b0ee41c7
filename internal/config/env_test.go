package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"on", true},
		{"off", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected default when unset, got %v", got)
	}
	t.Setenv("LIST_TEST", " a, ,b ,")
	if got := listEnvOrDefault("LIST_TEST", nil); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected trimmed parts, got %v", got)
	}
	t.Setenv("LIST_TEST", " , ")
	if got := listEnvOrDefault("LIST_TEST", []string{"d"}); len(got) != 1 || got[0] != "d" {
		t.Fatalf("expected default for blank list, got %v", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val  string
		want time.Duration
	}{
		{"", time.Minute},
		{"90s", 90 * time.Second},
		{"2h", 2 * time.Hour},
		{"3600", time.Hour},
		{"0", time.Minute},
		{"-5m", time.Minute},
		{"soon", time.Minute},
	}
	for _, tc := range cases {
		t.Setenv("DURATION_TEST", tc.val)
		if got := durationEnvOrDefault("DURATION_TEST", time.Minute); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.val, tc.want, got)
		}
	}
}

func TestEnvOrDefaultTrimsBlank(t *testing.T) {
	t.Setenv("STRING_TEST", "   ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
	t.Setenv("STRING_TEST", " value ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}
