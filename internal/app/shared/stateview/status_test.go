package stateview

import "testing"

func TestMoistureStatus(t *testing.T) {
	cases := []struct {
		moisture float64
		wantText string
		wantTone string
	}{
		{10, "Dry - Crops Stressed", "danger"},
		{29.9, "Dry - Crops Stressed", "danger"},
		{30, "Optimal Range", "good"},
		{60, "Optimal Range", "good"},
		{60.1, "Wet - Risk of Runoff", "warning"},
		{95, "Wet - Risk of Runoff", "warning"},
	}
	for _, tc := range cases {
		got := MoistureStatus(tc.moisture)
		if got.Text != tc.wantText || got.Tone != tc.wantTone {
			t.Fatalf("MoistureStatus(%v)=%+v want text=%q tone=%q", tc.moisture, got, tc.wantText, tc.wantTone)
		}
	}
}

func TestCropHealthStatus(t *testing.T) {
	cases := []struct {
		health   float64
		wantText string
	}{
		{0.8, "Excellent Health"},
		{0.7, "Good Growth"},
		{0.5, "Good Growth"},
		{0.4, "Moderate Health"},
		{0.3, "Moderate Health"},
		{0.2, "Poor Health"},
		{0.0, "Very Poor"},
		{-0.1, "Very Poor"},
		{-0.5, "Critical - No Vegetation"},
	}
	for _, tc := range cases {
		if got := CropHealthStatus(tc.health); got.Text != tc.wantText {
			t.Fatalf("CropHealthStatus(%v)=%q want %q", tc.health, got.Text, tc.wantText)
		}
	}
}
