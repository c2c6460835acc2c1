package config

import (
	"image/color"
	"testing"
)

func TestSanityColorThresholds(t *testing.T) {
	tests := []struct {
		sanity int
		want   string
	}{
		{100, "high"},
		{61, "high"},
		{60, "mid"},
		{31, "mid"},
		{30, "low"},
		{0, "low"},
	}
	colors := map[string]color.RGBA{
		"high": SanityHighColor,
		"mid":  SanityMidColor,
		"low":  SanityLowColor,
	}
	for _, tt := range tests {
		if got := SanityColor(tt.sanity); got != colors[tt.want] {
			t.Errorf("SanityColor(%d) = %v, want %s %v", tt.sanity, got, tt.want, colors[tt.want])
		}
	}
}
