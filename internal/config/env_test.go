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
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	if got := listEnvOrDefault("LIST_TEST_UNSET", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected default list when unset, got %v", got)
	}

	t.Setenv("LIST_TEST", " https://a.example , ,https://b.example")
	got := listEnvOrDefault("LIST_TEST", []string{"*"})
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("expected trimmed entries, got %v", got)
	}

	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", []string{"*"}); len(got) != 0 {
		t.Fatalf("expected empty list when set blank, got %v", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DURATION_TEST", "250ms")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", got)
	}
	t.Setenv("DURATION_TEST", "-1s")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != time.Second {
		t.Fatalf("expected fallback on negative duration, got %s", got)
	}
}
