package main

import (
	"math"
	"strings"
	"testing"

	"github.com/llehouerou/earmark/internal/keymap"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		s    float64
		want string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 59.9, "0:59"},
		{"minutes", 185, "3:05"},
		{"over an hour", 3725, "62:05"},
		{"nan", math.NaN(), "-:--"},
		{"negative", -5, "-:--"},
		{"infinite", math.Inf(1), "-:--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSeconds(tt.s); got != tt.want {
				t.Errorf("formatSeconds(%v) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestNearestSpeedIndex(t *testing.T) {
	speeds := []float64{0.5, 1, 1.5, 2}

	tests := []struct {
		rate float64
		want int
	}{
		{1.0, 1},
		{1.4, 2},
		{0.1, 0},
		{99, 3},
	}
	for _, tt := range tests {
		if got := nearestSpeedIndex(speeds, tt.rate); got != tt.want {
			t.Errorf("nearestSpeedIndex(%v) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(10, 50, 100); got != "▓▓▓▓▓░░░░░" {
		t.Errorf("half bar = %q", got)
	}
	if got := progressBar(10, math.NaN(), math.NaN()); got != "░░░░░░░░░░" {
		t.Errorf("invalid readout bar = %q, want empty fill", got)
	}
	if got := progressBar(10, 200, 100); got != "▓▓▓▓▓▓▓▓▓▓" {
		t.Errorf("overshoot bar = %q, want full", got)
	}
	if got := progressBar(1, 50, 100); got != "" {
		t.Errorf("too-narrow bar = %q, want empty string", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	if got := truncate("a longer title here", 10); got == "a longer title here" {
		t.Errorf("truncate did not shorten: %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Errorf("truncate with zero width = %q, want empty", got)
	}
}

func TestHelpView(t *testing.T) {
	m := model{width: 60, keys: keymap.NewResolver(keymap.All)}

	out := m.helpView(20)

	if !strings.Contains(out, "space") {
		t.Errorf("help does not label the space bar:\n%s", out)
	}
	if !strings.Contains(out, "Play/pause") || !strings.Contains(out, "Quit") {
		t.Errorf("help is missing bindings:\n%s", out)
	}
	if got, want := strings.Count(out, "\n"), 20; got != want {
		t.Errorf("help line count = %d, want %d (pads to the list height)", got, want)
	}
}
