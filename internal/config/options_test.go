package config

import (
	"testing"

	"github.com/vovakirdan/pacmen/internal/sprite"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
		ok       bool
	}{
		{"1.5", 1.5, true},
		{"2x", 2, true},
		{"0.", 0, true},
		{" 40px", 40, true},
		{"fast", 0, false},
		{"", 0, false},
		{"-1", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseNumber(tc.in)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("ParseNumber(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestParseSpawnOptions(t *testing.T) {
	opts := ParseSpawnOptions(map[string]string{
		"behavior": "follow-pointer",
		"speed":    "0.75",
		"size":     "64px",
		"color":    "yellow",
	})

	if b, ok := opts.Behavior(); !ok || b != sprite.BehaviorFollowPointer {
		t.Errorf("Behavior() = %s, %v", b, ok)
	}
	if s, ok := opts.Speed(); !ok || s != 0.75 {
		t.Errorf("Speed() = %v, %v", s, ok)
	}
	if s, ok := opts.Size(); !ok || s != 64 {
		t.Errorf("Size() = %v, %v", s, ok)
	}
}

func TestParseSpawnOptionsDropsMalformed(t *testing.T) {
	opts := ParseSpawnOptions(map[string]string{
		"behavior": "teleport",
		"speed":    "fast",
		"extra":    "1",
	})

	if _, ok := opts.Behavior(); ok {
		t.Error("unknown behavior should be dropped")
	}
	if _, ok := opts.Speed(); ok {
		t.Error("non-numeric speed should be dropped")
	}
	if _, ok := opts.Size(); ok {
		t.Error("size was never given")
	}
}
