package youtube

import (
	"testing"
	"time"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"seconds only", "PT45S", 45 * time.Second},
		{"minutes and seconds", "PT4M13S", 4*time.Minute + 13*time.Second},
		{"hours minutes seconds", "PT1H2M3S", time.Hour + 2*time.Minute + 3*time.Second},
		{"days and time", "P1DT2H", 26 * time.Hour},
		{"shorts length", "PT59S", 59 * time.Second},
		{"empty", "", 0},
		{"malformed", "not-a-duration", 0},
		{"zero", "PT0S", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseISODuration(tt.input); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
