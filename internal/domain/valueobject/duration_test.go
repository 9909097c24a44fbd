package valueobject

import "testing"

func TestParseDurationText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "hours and minutes", text: "1h 30min", want: 90},
		{name: "minutes only", text: "45min", want: 45},
		{name: "hours only", text: "2h", want: 120},
		{name: "zero", text: "0h 0min", want: 0},
		{name: "empty", text: "", want: 0},
		{name: "free text", text: "meia hora", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDurationText(tt.text); got != tt.want {
				t.Errorf("ParseDurationText(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "under an hour", minutes: 50, want: "0h 50min"},
		{name: "exact hour", minutes: 60, want: "1h 0min"},
		{name: "renormalized", minutes: 95, want: "1h 35min"},
		{name: "zero", minutes: 0, want: "0h 0min"},
		{name: "negative clamps to zero", minutes: -10, want: "0h 0min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDurationMinutes(tt.minutes); got != tt.want {
				t.Errorf("FormatDurationMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 30, 60, 90, 125} {
		text := FormatDurationMinutes(minutes)
		if got := ParseDurationText(text); got != minutes {
			t.Errorf("round trip of %d minutes through %q yielded %d", minutes, text, got)
		}
	}
}
