package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "comma decimal", text: "30,00", want: "30"},
		{name: "dot decimal", text: "30.00", want: "30"},
		{name: "currency prefix", text: "R$ 45,50", want: "45.5"},
		{name: "thousands grouping", text: "R$ 1.234,56", want: "1234.56"},
		{name: "bare integer", text: "100", want: "100"},
		{name: "empty", text: "", want: "0"},
		{name: "free text", text: "trinta reais", want: "0"},
		{name: "whitespace", text: "  25,90  ", want: "25.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.text)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.text, got, want)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "simple", amount: "50", want: "R$ 50,00"},
		{name: "cents", amount: "45.5", want: "R$ 45,50"},
		{name: "thousands", amount: "1234.56", want: "R$ 1.234,56"},
		{name: "millions", amount: "1234567.89", want: "R$ 1.234.567,89"},
		{name: "zero", amount: "0", want: "R$ 0,00"},
		{name: "negative", amount: "-15.25", want: "R$ -15,25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("FormatBRL(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestParseAmountFormatRoundTrip(t *testing.T) {
	for _, text := range []string{"R$ 30,00", "R$ 1.234,56", "R$ 0,99"} {
		if got := FormatBRL(ParseAmount(text)); got != text {
			t.Errorf("round trip of %q yielded %q", text, got)
		}
	}
}
