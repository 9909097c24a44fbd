package valueobject

import (
	"testing"
	"time"
)

func TestParseScheduleLabel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		wantZero   bool
		wantClient string
	}{
		{
			name:       "canonical label",
			label:      "15/03/2025 às 14:30 - João Silva",
			wantClient: "João Silva",
		},
		{
			name:       "client with separator-like dash",
			label:      "01/01/2025 às 09:00 - Ana - Maria",
			wantClient: "Ana - Maria",
		},
		{
			name:     "missing time component",
			label:    "15/03/2025 - João",
			wantZero: true,
		},
		{
			name:     "empty label",
			label:    "",
			wantZero: true,
		},
		{
			name:     "free text",
			label:    "amanhã de manhã",
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, client := ParseScheduleLabel(tt.label)

			if tt.wantZero {
				if !instant.IsZero() {
					t.Errorf("expected zero instant, got %v", instant)
				}
				return
			}

			if instant.IsZero() {
				t.Fatal("expected a parsed instant, got zero")
			}
			if client != tt.wantClient {
				t.Errorf("expected client %q, got %q", tt.wantClient, client)
			}
		})
	}
}

func TestScheduleLabelRoundTrip(t *testing.T) {
	instant := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)
	label := FormatScheduleLabel(instant, "João Silva")

	if label != "15/03/2025 às 14:30 - João Silva" {
		t.Fatalf("unexpected label: %q", label)
	}

	parsed, client := ParseScheduleLabel(label)
	if !parsed.Equal(instant) {
		t.Errorf("expected instant %v, got %v", instant, parsed)
	}
	if client != "João Silva" {
		t.Errorf("expected client João Silva, got %q", client)
	}
}

func TestParseDayLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		wantZero bool
	}{
		{name: "valid day", label: "15/03/2025"},
		{name: "trailing text", label: "15/03/2025 às 14:30", wantZero: true},
		{name: "wrong order", label: "2025-03-15", wantZero: true},
		{name: "empty", label: "", wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := ParseDayLabel(tt.label)
			if tt.wantZero != day.IsZero() {
				t.Errorf("label %q: expected zero=%v, got %v", tt.label, tt.wantZero, day)
			}
		})
	}
}

func TestFormatDayLabel(t *testing.T) {
	day := time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)
	if got := FormatDayLabel(day); got != "05/01/2025" {
		t.Errorf("expected 05/01/2025, got %q", got)
	}

	if got := FormatDayLabel(time.Time{}); got != "01/01/0001" {
		t.Errorf("zero value should format as 01/01/0001, got %q", got)
	}
}

func TestServiceSummary(t *testing.T) {
	summary := FormatServiceSummary([]string{"Corte", "Barba"}, "Carlos")
	if summary != "Corte, Barba com Carlos" {
		t.Fatalf("unexpected summary: %q", summary)
	}

	services, barber := ParseServiceSummary(summary)
	if services != "Corte, Barba" {
		t.Errorf("expected services 'Corte, Barba', got %q", services)
	}
	if barber != "Carlos" {
		t.Errorf("expected barber Carlos, got %q", barber)
	}
}

func TestParseServiceSummary_NoSeparator(t *testing.T) {
	services, barber := ParseServiceSummary("Corte")
	if services != "Corte" {
		t.Errorf("expected services Corte, got %q", services)
	}
	if barber != "" {
		t.Errorf("expected empty barber, got %q", barber)
	}
}
